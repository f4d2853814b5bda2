package sentry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ripplerest/ripplerest-go/internal/apptracker"
)

// We need these variables to be able to mock sentry.CaptureMessage and sentry.CaptureException in tests since
// package level functions cannot be mocked
var (
	captureMessageFunc   = sentry.CaptureMessage
	captureExceptionFunc = sentry.CaptureException
	InitFunc             = sentry.Init
	FlushFunc            = sentry.Flush
)

type sentryTracker struct {
	flushTimeout time.Duration
}

var _ apptracker.AppTracker = (*sentryTracker)(nil)

// CaptureMessage sends the message and waits for delivery, since a CLI process may exit right after.
func (s *sentryTracker) CaptureMessage(message string) {
	captureMessageFunc(message)
	FlushFunc(s.flushTimeout)
}

func (s *sentryTracker) CaptureException(exception error) {
	captureExceptionFunc(exception)
	FlushFunc(s.flushTimeout)
}

func NewSentryTracker(dsn string, env string, flushTimeoutSeconds int) (*sentryTracker, error) {
	if err := InitFunc(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      env,
		AttachStacktrace: true,
	}); err != nil {
		return nil, fmt.Errorf("unable to initialize sentry: %w", err)
	}
	return &sentryTracker{flushTimeout: time.Second * time.Duration(flushTimeoutSeconds)}, nil
}
