package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripplerest/ripplerest-go/internal/apptracker"
	"github.com/ripplerest/ripplerest-go/internal/metrics"
)

const (
	testAddress     = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	testDestination = "r9cZA1mLK5R5Am25ArfXFmqgNwjZgnfk59"
	testIssuer      = "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"
	testHash        = "9D591B18EDDD34F0B6CF4223A2940AEA2C3CC778925BABF289E0011CD8FA056E"
	testSecret      = "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"
)

// seenRequest is a request received by the fake ripple-rest server.
type seenRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     map[string]any
}

// fakeRippleRest answers "METHOD /path" keys with the JSON documents in routes and 404 otherwise.
type fakeRippleRest struct {
	*httptest.Server

	mu       sync.Mutex
	requests []seenRequest
}

func newFakeRippleRest(t *testing.T, routes map[string]string) *fakeRippleRest {
	t.Helper()
	f := &fakeRippleRest{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen := seenRequest{Method: r.Method, Path: r.URL.EscapedPath(), RawQuery: r.URL.RawQuery}
		if body, err := io.ReadAll(r.Body); err == nil && len(body) > 0 {
			_ = json.Unmarshal(body, &seen.Body) //nolint:errcheck // test code
		}
		f.mu.Lock()
		f.requests = append(f.requests, seen)
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		response, ok := routes[r.Method+" "+seen.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"error":"Not Found","message":"no such route"}`)) //nolint:errcheck // test code
			return
		}
		_, _ = w.Write([]byte(response)) //nolint:errcheck // test code
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeRippleRest) lastRequest(t *testing.T) seenRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func (f *fakeRippleRest) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// resetFlags puts every flag of the command tree back to its default, since rootCmd is shared
// across tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue) //nolint:errcheck // defaults always parse
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// executeRoot runs rootCmd with args and returns what it printed on stdout.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	stdout := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(io.Discard)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("🟢prints_help", func(t *testing.T) {
		out, err := executeRoot(t)
		require.NoError(t, err)
		assert.Contains(t, out, "Command line client for a ripple-rest server")
		assert.Contains(t, out, "account")
		assert.Contains(t, out, "server")
	})

	t.Run("🔴invalid_log_level", func(t *testing.T) {
		_, err := executeRoot(t, "--log-level", "loud", "schema", "amount")
		assert.ErrorContains(t, err, `couldn't parse log level in log-level: not a valid logrus Level: "loud"`)
	})

	t.Run("🔴invalid_ripple_rest_url", func(t *testing.T) {
		_, err := executeRoot(t, "--ripple-rest-url", "localhost", "server", "uuid")
		assert.ErrorContains(t, err, `validating url in ripple-rest-url: "localhost" is not a valid URL`)
	})

	t.Run("🔴non_positive_timeout", func(t *testing.T) {
		_, err := executeRoot(t, "--timeout-seconds", "0", "server", "uuid")
		assert.ErrorContains(t, err, "timeout-seconds must be positive, got 0")
	})
}

func TestFinish(t *testing.T) {
	prevTracker, prevMetrics, prevOptions := appTracker, metricsService, globalOptions
	t.Cleanup(func() {
		appTracker, metricsService, globalOptions = prevTracker, prevMetrics, prevOptions
	})

	t.Run("🔴captures_the_error_and_writes_metrics", func(t *testing.T) {
		mAppTracker := &apptracker.MockAppTracker{}
		defer mAppTracker.AssertExpectations(t)
		runErr := errors.New("foo bar baz")
		mAppTracker.On("CaptureException", runErr).Once()

		appTracker = mAppTracker
		metricsService = metrics.NewMetricsService(prometheus.NewRegistry())
		metricsService.IncOperationErrors("GetBalances", "transport_error")
		globalOptions.MetricsTextfile = filepath.Join(t.TempDir(), "ripplerest.prom")

		err := finish(runErr)
		assert.Equal(t, runErr, err)

		content, err := os.ReadFile(globalOptions.MetricsTextfile)
		require.NoError(t, err)
		assert.Contains(t, string(content), `ripplerest_operation_errors_total{error_type="transport_error",operation="GetBalances"} 1`)
	})

	t.Run("🟢nothing_to_report", func(t *testing.T) {
		mAppTracker := &apptracker.MockAppTracker{}
		defer mAppTracker.AssertExpectations(t)

		appTracker = mAppTracker
		metricsService = nil
		globalOptions.MetricsTextfile = ""

		assert.NoError(t, finish(nil))
	})
}
