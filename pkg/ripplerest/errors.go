package ripplerest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ripplerest/ripplerest-go/pkg/ripplerest/types"
)

var (
	ErrMissingSecret = errors.New("account has no secret")
	ErrNoClient      = errors.New("no client given and no default client set")
)

// TransportError means ripple-rest could not be reached or its response could not be read.
type TransportError struct {
	Op     string
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApplicationError means ripple-rest answered but did not report success. Err is set when the
// body could not be decoded as an envelope.
type ApplicationError struct {
	Op         string
	StatusCode int
	Status     string
	Envelope   types.Envelope
	Err        error
}

// Message returns the envelope message, then its error, then the HTTP status text.
func (e *ApplicationError) Message() string {
	if reason := e.Envelope.Reason(); reason != "" {
		return reason
	}
	if e.Status != "" {
		return e.Status
	}
	return http.StatusText(e.StatusCode)
}

func (e *ApplicationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ripple-rest error: %s: %v", e.Message(), e.Err)
	}
	return fmt.Sprintf("ripple-rest error: %s", e.Message())
}

func (e *ApplicationError) Unwrap() error {
	return e.Err
}

// ConfigurationError means the call could not be attempted with what it was given.
type ConfigurationError struct {
	Op  string
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
