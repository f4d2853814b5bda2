package sentry

import (
	"errors"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSentryTracker_CaptureMessage(t *testing.T) {
	mockSentry := setupMockSentry(t)
	mockSentry.
		On("Init", mock.Anything).Return(nil).Once().
		On("CaptureMessage", "Test message").Return((*sentry.EventID)(nil)).Once().
		On("Flush", 5*time.Second).Return(true).Once()

	tracker, err := NewSentryTracker("dsn", "test-env", 5)
	require.NoError(t, err)
	require.NotNil(t, tracker)

	tracker.CaptureMessage("Test message")
}

func TestSentryTracker_CaptureException(t *testing.T) {
	mockSentry := setupMockSentry(t)
	testError := errors.New("Test exception")
	mockSentry.
		On("Init", mock.Anything).Return(nil).Once().
		On("CaptureException", testError).Return((*sentry.EventID)(nil)).Once().
		On("Flush", 2*time.Second).Return(true).Once()

	tracker, err := NewSentryTracker("dsn", "test-env", 2)
	require.NoError(t, err)
	require.NotNil(t, tracker)

	tracker.CaptureException(testError)
}

func TestNewSentryTracker_Success(t *testing.T) {
	mockSentry := setupMockSentry(t)
	mockSentry.
		On("Init", mock.MatchedBy(func(options sentry.ClientOptions) bool {
			return options.Dsn == "dsn" && options.Environment == "test-env"
		})).Return(nil).Once()

	tracker, err := NewSentryTracker("dsn", "test-env", 5)
	require.NoError(t, err)
	require.NotNil(t, tracker)
}

func TestNewSentryTracker_InitFailure(t *testing.T) {
	mockSentry := setupMockSentry(t)

	initError := errors.New("init error")
	mockSentry.
		On("Init", mock.Anything).Return(initError).Once()

	tracker, err := NewSentryTracker("dsn", "test-env", 5)
	require.Error(t, err)
	require.ErrorContains(t, err, "unable to initialize sentry: init error")
	require.ErrorIs(t, err, initError)
	require.Nil(t, tracker)
}
