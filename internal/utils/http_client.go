package utils

import (
	"net/http"
)

// HTTPClient is the transport used to reach ripple-rest. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ HTTPClient = (*http.Client)(nil)
