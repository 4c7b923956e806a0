// Package secret encrypts free-text fields at rest with Fernet tokens.
package secret

import (
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
)

// ErrInvalidToken is returned when a stored value cannot be verified with
// the configured key.
var ErrInvalidToken = errors.New("invalid or tampered token")

// Cipher seals and opens strings. A Cipher without a key passes values
// through unchanged, so an installation can run without encryption.
type Cipher struct {
	keys []*fernet.Key
}

// NewCipher builds a Cipher from a base64 encoded 32-byte Fernet key.
// An empty key returns a passthrough Cipher.
func NewCipher(encodedKey string) (*Cipher, error) {
	if encodedKey == "" {
		return &Cipher{}, nil
	}

	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption key: %w", err)
	}

	return &Cipher{keys: []*fernet.Key{key}}, nil
}

// GenerateKey returns a new random key in the encoding NewCipher expects.
func GenerateKey() (string, error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return k.Encode(), nil
}

// Enabled reports whether values are actually encrypted.
func (c *Cipher) Enabled() bool {
	return c != nil && len(c.keys) > 0
}

// Encrypt seals plain into a Fernet token.
func (c *Cipher) Encrypt(plain string) (string, error) {
	if !c.Enabled() {
		return plain, nil
	}

	tok, err := fernet.EncryptAndSign([]byte(plain), c.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to encrypt value: %w", err)
	}
	return string(tok), nil
}

// Decrypt opens a token produced by Encrypt. Tokens never expire.
func (c *Cipher) Decrypt(token string) (string, error) {
	if !c.Enabled() {
		return token, nil
	}

	msg := fernet.VerifyAndDecrypt([]byte(token), 0, c.keys)
	if msg == nil {
		return "", ErrInvalidToken
	}
	return string(msg), nil
}
