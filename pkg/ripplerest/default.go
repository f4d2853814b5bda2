package ripplerest

import "sync/atomic"

var defaultClient atomic.Pointer[Client]

// SetDefaultClient sets the client used when an operation is given none. Passing nil clears it.
//
// The default is process-wide. Tests that run in parallel should pass clients explicitly.
func SetDefaultClient(c *Client) {
	defaultClient.Store(c)
}

// DefaultClient returns the process-wide client, or nil when none is set.
func DefaultClient() *Client {
	return defaultClient.Load()
}

func resolveClient(op string, c *Client) (*Client, error) {
	if c != nil {
		return c, nil
	}
	if c = defaultClient.Load(); c != nil {
		return c, nil
	}
	return nil, &ConfigurationError{Op: op, Err: ErrNoClient}
}
