package ripplerest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripplerest/ripplerest-go/internal/metrics"
)

const (
	testAddress     = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	testDestination = "r9cZA1mLK5R5Am25ArfXFmqgNwjZgnfk59"
	testIssuer      = "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"
	testHash        = "9D591B18EDDD34F0B6CF4223A2940AEA2C3CC778925BABF289E0011CD8FA056E"
	testSecret      = "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"
)

// recordedRequest is what the test server saw.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     map[string]any
}

// mockJSONHandler records the request and answers with statusCode and the JSON encoding of response.
func mockJSONHandler(t *testing.T, recorded *recordedRequest, statusCode int, response any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if recorded != nil {
			recorded.Method = r.Method
			recorded.Path = r.URL.EscapedPath()
			recorded.RawQuery = r.URL.RawQuery
			body, err := io.ReadAll(r.Body)
			if err == nil && len(body) > 0 {
				_ = json.Unmarshal(body, &recorded.Body) //nolint:errcheck // test code
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(response) //nolint:errcheck // test code
	}
}

// mockRawHandler answers with a fixed body.
func mockRawHandler(statusCode int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body)) //nolint:errcheck // test code
	}
}

// createTestClient creates a client for testing with a mock server
func createTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	client, err := NewClient(server.URL, opts...)
	require.NoError(t, err)
	return client, server
}

func newTestAccount(t *testing.T) *Account {
	t.Helper()
	account, err := NewAccount(testAddress, []byte(testSecret))
	require.NoError(t, err)
	return account
}

func TestNewClient(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, err := NewClient("http://localhost:5990")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5990", client.BaseURL)
		assert.IsType(t, &http.Client{}, client.HTTPClient)
		assert.NotNil(t, client.Metrics())
		assert.NotEmpty(t, client.newID())
	})

	t.Run("with_options", func(t *testing.T) {
		httpClient := &http.Client{}
		metricsService := metrics.NewMetricsService(prometheus.NewRegistry())

		client, err := NewClient("http://localhost:5990",
			WithHTTPClient(httpClient),
			WithMetrics(metricsService),
			WithIDGenerator(func() string { return "fixed" }),
		)
		require.NoError(t, err)
		assert.Same(t, httpClient, client.HTTPClient)
		assert.Equal(t, metricsService, client.Metrics())
		assert.Equal(t, "fixed", client.newID())
	})

	t.Run("invalid_url", func(t *testing.T) {
		client, err := NewClient("localhost 5990")
		assert.Nil(t, client)

		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "NewClient", configErr.Op)
	})

	t.Run("empty_url", func(t *testing.T) {
		_, err := NewClient("")
		var configErr *ConfigurationError
		assert.ErrorAs(t, err, &configErr)
	})

	t.Run("nil_http_client", func(t *testing.T) {
		_, err := NewClient("http://localhost:5990", WithHTTPClient(nil))
		var configErr *ConfigurationError
		assert.ErrorAs(t, err, &configErr)
	})
}

func TestDefaultClient(t *testing.T) {
	t.Cleanup(func() { SetDefaultClient(nil) })

	SetDefaultClient(nil)
	assert.Nil(t, DefaultClient())

	_, err := resolveClient("GetBalances", nil)
	var configErr *ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.True(t, errors.Is(err, ErrNoClient))
	assert.Equal(t, "GetBalances: no client given and no default client set", err.Error())

	client, err := NewClient("http://localhost:5990")
	require.NoError(t, err)
	SetDefaultClient(client)
	assert.Same(t, client, DefaultClient())

	resolved, err := resolveClient("GetBalances", nil)
	require.NoError(t, err)
	assert.Same(t, client, resolved)

	explicit, err := NewClient("http://localhost:5991")
	require.NoError(t, err)
	resolved, err = resolveClient("GetBalances", explicit)
	require.NoError(t, err)
	assert.Same(t, explicit, resolved)
}
