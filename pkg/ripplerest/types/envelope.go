package types

// Envelope is the wrapper shared by every ripple-rest response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ResponseEnvelope lets generic decoders reach the envelope embedded in any response type.
func (e *Envelope) ResponseEnvelope() *Envelope {
	return e
}

// Reason returns message, falling back to error. Empty when the server sent neither.
func (e *Envelope) Reason() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// Secret is a plaintext account secret inside a request body. Callers own the buffer and are
// expected to zero it once the body is serialised.
type Secret []byte

const hexDigits = "0123456789abcdef"

// MarshalJSON quotes s from its bytes without a string conversion. Quotes, backslashes and control
// characters are escaped, everything else is copied as is.
func (s Secret) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for _, c := range s {
		switch {
		case c == '"' || c == '\\':
			out = append(out, '\\', c)
		case c < 0x20:
			out = append(out, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			out = append(out, c)
		}
	}
	return append(out, '"'), nil
}

// String keeps secrets out of logs and %v output.
func (s Secret) String() string {
	return "[REDACTED]"
}

// RequestEnvelope is embedded in every POST body.
type RequestEnvelope struct {
	Secret           Secret `json:"secret"`
	ClientResourceID string `json:"client_resource_id,omitempty"`
}
