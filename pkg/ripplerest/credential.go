package ripplerest

import (
	"fmt"

	"github.com/ripplerest/ripplerest-go/internal/secret"
	"github.com/ripplerest/ripplerest-go/internal/utils"
)

// Credential holds an account secret sealed in memory.
type Credential struct {
	sealer secret.Sealer
	sealed []byte
}

// NewCredential seals secretKey and zeroes the caller's buffer.
func NewCredential(secretKey []byte) (*Credential, error) {
	defer utils.Wipe(secretKey)

	sealer, err := secret.ProcessSealer()
	if err != nil {
		return nil, fmt.Errorf("getting sealer: %w", err)
	}
	sealed, err := sealer.Seal(secretKey)
	if err != nil {
		return nil, fmt.Errorf("sealing secret: %w", err)
	}
	return &Credential{sealer: sealer, sealed: sealed}, nil
}

// Use opens the secret for the duration of fn. The plaintext is zeroed when fn returns, whether
// or not it fails, so fn must not retain it.
func (c *Credential) Use(fn func(secretKey []byte) error) error {
	if c == nil || c.sealed == nil {
		return ErrMissingSecret
	}
	plaintext, err := c.sealer.Open(c.sealed)
	if err != nil {
		return fmt.Errorf("opening secret: %w", err)
	}
	defer utils.Wipe(plaintext)

	return fn(plaintext)
}

func (c *Credential) String() string {
	return "[REDACTED]"
}
