package ripplerest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ripplerest/ripplerest-go/internal/metrics"
	"github.com/ripplerest/ripplerest-go/internal/utils"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func newMockedClient(t *testing.T) (*Client, *utils.MockHTTPClient, *metrics.MockMetricsService) {
	t.Helper()
	mockHTTPClient := &utils.MockHTTPClient{}
	mockMetrics := metrics.NewMockMetricsService()
	client, err := NewClient("http://ripple-rest.test", WithHTTPClient(mockHTTPClient), WithMetrics(mockMetrics))
	require.NoError(t, err)
	return client, mockHTTPClient, mockMetrics
}

func jsonResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	const op = "GetBalances"

	t.Run("success", func(t *testing.T) {
		client, mockHTTPClient, mockMetrics := newMockedClient(t)
		defer mockHTTPClient.AssertExpectations(t)
		defer mockMetrics.AssertExpectations(t)

		mockHTTPClient.
			On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == http.MethodGet &&
					req.URL.String() == "http://ripple-rest.test/v1/accounts/"+testAddress+"/balances" &&
					req.Header.Get("Accept") == "application/json"
			})).
			Return(jsonResponse(http.StatusOK, `{"success":true,"balances":[{"value":"10","currency":"XRP"}]}`), nil).
			Once()
		mockMetrics.On("IncOperationCalls", op).Once()
		mockMetrics.On("IncHTTPResponses", http.MethodGet, http.StatusOK).Once()
		mockMetrics.On("ObserveOperationDuration", op, mock.AnythingOfType("float64")).Once()

		req, err := BuildGet(balancesPath, testAddress)
		require.NoError(t, err)

		resp, err := execute[balancesResponse](ctx, client, op, req)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		require.Len(t, resp.Balances, 1)
		assert.Equal(t, "10", resp.Balances[0].Value)
	})

	t.Run("transport_error_wins_over_body", func(t *testing.T) {
		client, mockHTTPClient, mockMetrics := newMockedClient(t)
		defer mockHTTPClient.AssertExpectations(t)
		defer mockMetrics.AssertExpectations(t)

		cause := errors.New("dial tcp: connection refused")
		mockHTTPClient.
			On("Do", mock.Anything).
			Return(jsonResponse(http.StatusOK, `{"success":false,"message":"masked"}`), cause).
			Once()
		mockMetrics.On("IncOperationCalls", op).Once()
		mockMetrics.On("IncOperationErrors", op, "transport_error").Once()
		mockMetrics.On("ObserveOperationDuration", op, mock.AnythingOfType("float64")).Once()

		req, err := BuildGet(balancesPath, testAddress)
		require.NoError(t, err)

		resp, err := execute[balancesResponse](ctx, client, op, req)
		assert.Nil(t, resp)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, op, transportErr.Op)
		assert.Equal(t, http.MethodGet, transportErr.Method)
		assert.ErrorIs(t, err, cause)

		var appErr *ApplicationError
		assert.False(t, errors.As(err, &appErr))
	})

	t.Run("unreadable_body_is_transport_error", func(t *testing.T) {
		client, mockHTTPClient, mockMetrics := newMockedClient(t)
		defer mockHTTPClient.AssertExpectations(t)

		mockHTTPClient.
			On("Do", mock.Anything).
			Return(&http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(errReader{})}, nil).
			Once()
		mockMetrics.On("IncOperationCalls", op).Once()
		mockMetrics.On("IncHTTPResponses", http.MethodGet, http.StatusOK).Once()
		mockMetrics.On("IncOperationErrors", op, "transport_error").Once()
		mockMetrics.On("ObserveOperationDuration", op, mock.AnythingOfType("float64")).Once()

		req, err := BuildGet(balancesPath, testAddress)
		require.NoError(t, err)

		_, err = execute[balancesResponse](ctx, client, op, req)
		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.ErrorContains(t, err, "reading response body")
	})

	t.Run("undecodable_body_is_application_error", func(t *testing.T) {
		client, mockHTTPClient, mockMetrics := newMockedClient(t)
		defer mockHTTPClient.AssertExpectations(t)
		defer mockMetrics.AssertExpectations(t)

		mockHTTPClient.
			On("Do", mock.Anything).
			Return(jsonResponse(http.StatusBadGateway, `<html>bad gateway</html>`), nil).
			Once()
		mockMetrics.On("IncOperationCalls", op).Once()
		mockMetrics.On("IncHTTPResponses", http.MethodGet, http.StatusBadGateway).Once()
		mockMetrics.On("IncOperationErrors", op, "decode_error").Once()
		mockMetrics.On("ObserveOperationDuration", op, mock.AnythingOfType("float64")).Once()

		req, err := BuildGet(balancesPath, testAddress)
		require.NoError(t, err)

		_, err = execute[balancesResponse](ctx, client, op, req)
		var appErr *ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
		assert.Equal(t, "Bad Gateway", appErr.Message())

		var syntaxErr *json.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("unsuccessful_envelope", func(t *testing.T) {
		client, mockHTTPClient, mockMetrics := newMockedClient(t)
		defer mockHTTPClient.AssertExpectations(t)
		defer mockMetrics.AssertExpectations(t)

		mockHTTPClient.
			On("Do", mock.Anything).
			Return(jsonResponse(http.StatusNotFound, `{"success":false,"error":"restNOT_FOUND","message":"Account not found"}`), nil).
			Once()
		mockMetrics.On("IncOperationCalls", op).Once()
		mockMetrics.On("IncHTTPResponses", http.MethodGet, http.StatusNotFound).Once()
		mockMetrics.On("IncOperationErrors", op, "application_error").Once()
		mockMetrics.On("ObserveOperationDuration", op, mock.AnythingOfType("float64")).Once()

		req, err := BuildGet(balancesPath, testAddress)
		require.NoError(t, err)

		_, err = execute[balancesResponse](ctx, client, op, req)
		var appErr *ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Account not found", appErr.Message())
		assert.Equal(t, "restNOT_FOUND", appErr.Envelope.Error)
		assert.Equal(t, "ripple-rest error: Account not found", appErr.Error())
		assert.Nil(t, errors.Unwrap(appErr))
	})

	t.Run("post_body_is_wiped", func(t *testing.T) {
		client, mockHTTPClient, mockMetrics := newMockedClient(t)
		defer mockHTTPClient.AssertExpectations(t)

		var sentBody []byte
		mockHTTPClient.
			On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == http.MethodPost && req.Header.Get("Content-Type") == "application/json"
			})).
			Run(func(args mock.Arguments) {
				req := args.Get(0).(*http.Request)
				body, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				sentBody = body
			}).
			Return(jsonResponse(http.StatusOK, `{"success":true,"client_resource_id":"x"}`), nil).
			Once()
		mockMetrics.On("IncOperationCalls", mock.Anything)
		mockMetrics.On("IncHTTPResponses", mock.Anything, mock.Anything)
		mockMetrics.On("ObserveOperationDuration", mock.Anything, mock.Anything)

		req, err := BuildPost(map[string]string{"secret": testSecret}, submitPaymentPath)
		require.NoError(t, err)
		body := req.Body

		_, err = execute[submitPaymentResponse](ctx, client, "SubmitPayment", req)
		require.NoError(t, err)
		assert.Contains(t, string(sentBody), testSecret)
		assert.Equal(t, make([]byte, len(body)), body)
		assert.Nil(t, req.Body)
	})

	t.Run("context_is_forwarded", func(t *testing.T) {
		client, mockHTTPClient, mockMetrics := newMockedClient(t)
		defer mockHTTPClient.AssertExpectations(t)

		type ctxKey struct{}
		reqCtx := context.WithValue(ctx, ctxKey{}, "value")
		mockHTTPClient.
			On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Context().Value(ctxKey{}) == "value"
			})).
			Return(jsonResponse(http.StatusOK, `{"success":true,"uuid":"u"}`), nil).
			Once()
		mockMetrics.On("IncOperationCalls", mock.Anything)
		mockMetrics.On("IncHTTPResponses", mock.Anything, mock.Anything)
		mockMetrics.On("ObserveOperationDuration", mock.Anything, mock.Anything)

		req, err := BuildGet(uuidPath)
		require.NoError(t, err)

		resp, err := execute[uuidResponse](reqCtx, client, "GenerateUUID", req)
		require.NoError(t, err)
		assert.Equal(t, "u", resp.UUID)
	})
}

func TestApplicationError_Message(t *testing.T) {
	testCases := []struct {
		name     string
		err      *ApplicationError
		expected string
	}{
		{
			name:     "message_first",
			err:      &ApplicationError{Status: "400 Bad Request", Envelope: envelopeOf("msg", "err")},
			expected: "msg",
		},
		{
			name:     "then_error",
			err:      &ApplicationError{Status: "400 Bad Request", Envelope: envelopeOf("", "err")},
			expected: "err",
		},
		{
			name:     "then_status_text",
			err:      &ApplicationError{StatusCode: http.StatusBadRequest, Status: "400 Bad Request"},
			expected: "400 Bad Request",
		},
		{
			name:     "then_status_code_text",
			err:      &ApplicationError{StatusCode: http.StatusBadRequest},
			expected: "Bad Request",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Message())
		})
	}
}
