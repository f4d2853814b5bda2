package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
)

const keyBytes = 32

var ErrCiphertextTooShort = errors.New("ciphertext shorter than nonce")

// Sealer keeps secrets encrypted at rest in memory. The key never leaves the process.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

type AESGCMSealer struct {
	gcm cipher.AEAD
}

var _ Sealer = (*AESGCMSealer)(nil)

// NewAESGCMSealer creates a sealer with a fresh random key.
func NewAESGCMSealer() (*AESGCMSealer, error) {
	key := make([]byte, keyBytes)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating sealing key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	gcmCipher, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating gcm cipher: %w", err)
	}

	return &AESGCMSealer{gcm: gcmCipher}, nil
}

func (s *AESGCMSealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	lenRead, err := rand.Read(nonce)
	if err != nil {
		return nil, fmt.Errorf("error while generating random nonce: %w", err)
	}
	if lenRead != s.gcm.NonceSize() {
		return nil, fmt.Errorf("length of generated nonce %d different from expected length %d", lenRead, s.gcm.NonceSize())
	}

	return s.gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open returns a new plaintext buffer. Callers own it and should zero it when done.
func (s *AESGCMSealer) Open(sealed []byte) ([]byte, error) {
	nonceSize := s.gcm.NonceSize()
	if len(sealed) < nonceSize {
		return nil, ErrCiphertextTooShort
	}
	nonce, cipheredText := sealed[:nonceSize], sealed[nonceSize:]

	plainText, err := s.gcm.Open(nil, nonce, cipheredText, nil)
	if err != nil {
		return nil, fmt.Errorf("opening sealed secret: %w", err)
	}
	return plainText, nil
}

var processSealer = sync.OnceValues(func() (Sealer, error) {
	return NewAESGCMSealer()
})

// ProcessSealer returns the sealer shared by the whole process, created on first use.
func ProcessSealer() (Sealer, error) {
	return processSealer()
}
