package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/stellar/go-stellar-sdk/support/config"

	"github.com/ripplerest/ripplerest-go/internal/apptracker"
	"github.com/ripplerest/ripplerest-go/internal/apptracker/dryrun"
	"github.com/ripplerest/ripplerest-go/internal/apptracker/sentry"
	"github.com/ripplerest/ripplerest-go/internal/metrics"
	"github.com/ripplerest/ripplerest-go/pkg/ripplerest"
)

const trackerFlushTimeoutSeconds = 5

var ErrEmptySecret = errors.New("secret cannot be empty")

func DefaultPersistentPreRunE(cfgOpts config.ConfigOptions) func(_ *cobra.Command, _ []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if err := cfgOpts.RequireE(); err != nil {
			return fmt.Errorf("requiring values of config options: %w", err)
		}
		if err := cfgOpts.SetValues(); err != nil {
			return fmt.Errorf("setting values of config options: %w", err)
		}
		return nil
	}
}

// NewRippleRestClient builds a client from the global options, reporting to metricsService.
func NewRippleRestClient(opts GlobalOptions, metricsService metrics.MetricsService) (*ripplerest.Client, error) {
	if opts.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("timeout-seconds must be positive, got %d", opts.TimeoutSeconds)
	}

	client, err := ripplerest.NewClient(opts.RippleRestURL,
		ripplerest.WithHTTPClient(&http.Client{Timeout: time.Duration(opts.TimeoutSeconds) * time.Second}),
		ripplerest.WithMetrics(metricsService),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ripple-rest client: %w", err)
	}
	return client, nil
}

// NewAppTracker returns a sentry tracker, or a dry-run tracker when no DSN is configured.
func NewAppTracker(opts GlobalOptions) (apptracker.AppTracker, error) {
	if opts.TrackerDSN == "" {
		return &dryrun.DryRunTracker{}, nil
	}

	tracker, err := sentry.NewSentryTracker(opts.TrackerDSN, opts.Environment, trackerFlushTimeoutSeconds)
	if err != nil {
		return nil, fmt.Errorf("initializing sentry tracker: %w", err)
	}
	return tracker, nil
}

// ResolveSecret returns secret when set, and otherwise asks prompter for it. The returned buffer is
// owned by the caller. A secret given as a flag or env var also stays in the config layer as a
// string that cannot be wiped; the prompt never creates one.
func ResolveSecret(secret string, prompter PasswordPrompter) ([]byte, error) {
	if secret != "" {
		return []byte(secret), nil
	}
	if prompter == nil {
		return nil, ErrEmptySecret
	}

	prompted, err := prompter.Run()
	if err != nil {
		return nil, fmt.Errorf("prompting for secret: %w", err)
	}
	if len(prompted) == 0 {
		return nil, ErrEmptySecret
	}
	return prompted, nil
}

// WriteMetricsTextfile writes the registry to path. An empty path is a no-op.
func WriteMetricsTextfile(path string, registry *prometheus.Registry) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}

// PrintJSON writes v to w as indented JSON.
func PrintJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
