package ripplerest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ripplerest/ripplerest-go/internal/metrics"
	"github.com/ripplerest/ripplerest-go/internal/utils"
	"github.com/ripplerest/ripplerest-go/internal/validators"
)

const DefaultTimeout = 30 * time.Second

// Client talks to one ripple-rest endpoint. It holds no per-call state and is safe for
// concurrent use. Create it with NewClient; the zero value is not usable.
type Client struct {
	HTTPClient utils.HTTPClient
	BaseURL    string

	metrics metrics.MetricsService
	newID   func() string
}

type clientConfig struct {
	BaseURL string `validate:"required,url"`
}

type ClientOption func(*Client)

// WithHTTPClient replaces the default *http.Client, which times out after DefaultTimeout.
func WithHTTPClient(httpClient utils.HTTPClient) ClientOption {
	return func(c *Client) {
		c.HTTPClient = httpClient
	}
}

// WithMetrics reports operation metrics to metricsService instead of a private registry.
func WithMetrics(metricsService metrics.MetricsService) ClientOption {
	return func(c *Client) {
		c.metrics = metricsService
	}
}

// WithIDGenerator replaces the uuid generator used for client_resource_id values.
func WithIDGenerator(newID func() string) ClientOption {
	return func(c *Client) {
		c.newID = newID
	}
}

// NewClient returns a client for the ripple-rest server at baseURL, e.g. "http://localhost:5990".
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if err := validators.Struct(validators.NewValidator(), &clientConfig{BaseURL: baseURL}); err != nil {
		return nil, &ConfigurationError{Op: "NewClient", Err: err}
	}

	c := &Client{
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		BaseURL:    baseURL,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = metrics.NewMetricsService(nil)
	}
	if c.HTTPClient == nil {
		return nil, &ConfigurationError{Op: "NewClient", Err: fmt.Errorf("http client cannot be nil")}
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	return c, nil
}

// Metrics returns the metrics service the client reports to.
func (c *Client) Metrics() metrics.MetricsService {
	return c.metrics
}
