package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrMissingCryptoKey = errors.New("CRYPTO_KEY is required to read encrypted secrets")

type Cipher struct {
	aead cipher.AEAD
}

func NewCipher(key string) (*Cipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: CRYPTO_KEY must be 32 bytes", ErrInvalidConfig)
	}
	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

func (c *Cipher) Encrypt(text string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	ciphertext := c.aead.Seal(nonce, nonce, []byte(text), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (c *Cipher) Decrypt(encoded string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	nonceSize := c.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", errors.New("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

type secretReader struct {
	cipher *Cipher
}

func newSecretReader(key string) (*secretReader, error) {
	if key == "" {
		return &secretReader{}, nil
	}
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &secretReader{cipher: c}, nil
}

// read prefers the plain variable and falls back to <key>_ENC.
func (s *secretReader) read(key string) (string, error) {
	if val := os.Getenv(key); val != "" {
		return val, nil
	}
	encoded := os.Getenv(key + "_ENC")
	if encoded == "" {
		return "", nil
	}
	if s.cipher == nil {
		return "", fmt.Errorf("%w: %s_ENC", ErrMissingCryptoKey, key)
	}
	val, err := s.cipher.Decrypt(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: cannot decrypt %s_ENC: %v", ErrInvalidConfig, key, err)
	}
	return val, nil
}
