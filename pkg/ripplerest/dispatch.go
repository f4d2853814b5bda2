package ripplerest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/ripplerest/ripplerest-go/internal/utils"
	"github.com/ripplerest/ripplerest-go/pkg/ripplerest/types"
)

const (
	errorTypeConfiguration = "configuration_error"
	errorTypeTransport     = "transport_error"
	errorTypeDecode        = "decode_error"
	errorTypeApplication   = "application_error"
)

// response is satisfied by the pointer to any struct embedding types.Envelope.
type response[T any] interface {
	*T
	ResponseEnvelope() *types.Envelope
}

// execute sends req and decodes the reply into T. Failures are classified in order: transport,
// then undecodable body, then success=false. The request body is wiped before returning.
func execute[T any, PT response[T]](ctx context.Context, c *Client, op string, req *Request) (*T, error) {
	defer req.Wipe()

	startTime := time.Now()
	c.metrics.IncOperationCalls(op)
	defer func() {
		c.metrics.ObserveOperationDuration(op, time.Since(startTime).Seconds())
	}()

	u, err := req.URL(c.BaseURL)
	if err != nil {
		c.metrics.IncOperationErrors(op, errorTypeConfiguration)
		return nil, &ConfigurationError{Op: op, Err: err}
	}

	var body io.Reader = http.NoBody
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		c.metrics.IncOperationErrors(op, errorTypeConfiguration)
		return nil, &ConfigurationError{Op: op, Err: fmt.Errorf("creating request: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	log.Ctx(ctx).Debugf("ripple-rest %s: %s %s", op, req.Method, u)
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		if resp != nil && resp.Body != nil {
			utils.DeferredClose(ctx, resp.Body, "closing response body")
		}
		c.metrics.IncOperationErrors(op, errorTypeTransport)
		log.Ctx(ctx).Debugf("ripple-rest %s: transport failure: %v", op, err)
		return nil, &TransportError{Op: op, Method: req.Method, URL: u, Err: fmt.Errorf("sending request: %w", err)}
	}
	c.metrics.IncHTTPResponses(req.Method, resp.StatusCode)

	var respBody []byte
	if resp.Body != nil {
		defer utils.DeferredClose(ctx, resp.Body, "closing response body")
		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			c.metrics.IncOperationErrors(op, errorTypeTransport)
			log.Ctx(ctx).Debugf("ripple-rest %s: reading body: %v", op, err)
			return nil, &TransportError{Op: op, Method: req.Method, URL: u, Err: fmt.Errorf("reading response body: %w", err)}
		}
	}

	var out T
	if err = json.Unmarshal(respBody, &out); err != nil {
		c.metrics.IncOperationErrors(op, errorTypeDecode)
		log.Ctx(ctx).Debugf("ripple-rest %s: status=%d, undecodable body: %v", op, resp.StatusCode, err)
		return nil, &ApplicationError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("unmarshalling response body: %w", err),
		}
	}

	envelope := PT(&out).ResponseEnvelope()
	if !envelope.Success {
		c.metrics.IncOperationErrors(op, errorTypeApplication)
		log.Ctx(ctx).Debugf("ripple-rest %s: status=%d, unsuccessful: %s", op, resp.StatusCode, envelope.Reason())
		return nil, &ApplicationError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Envelope:   *envelope,
		}
	}

	log.Ctx(ctx).Debugf("ripple-rest %s: status=%d, success", op, resp.StatusCode)
	return &out, nil
}
