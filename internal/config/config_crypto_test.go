package config_test

import (
	"errors"
	"testing"

	"github.com/saulo-duarte/quiz-generator/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestNewCipher(t *testing.T) {
	t.Run("ShortKey", func(t *testing.T) {
		_, err := config.NewCipher("short-key")
		if !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig for short key, got %v", err)
		}
	})

	t.Run("ValidKey", func(t *testing.T) {
		if _, err := config.NewCipher(testKey); err != nil {
			t.Fatalf("NewCipher failed: %v", err)
		}
	})
}

func TestEncryptDecrypt(t *testing.T) {
	c, err := config.NewCipher(testKey)
	if err != nil {
		t.Fatalf("NewCipher failed: %v", err)
	}

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "sk-test-secret"

		ciphertext, err := c.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := c.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("decrypted text (%q) does not match original (%q)", decrypted, plaintext)
		}

		ciphertext2, _ := c.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("encryption is not randomized; ciphertexts should differ")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := c.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := c.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("empty text decrypted incorrectly: %q", decrypted)
		}
	})

	t.Run("Tampered", func(t *testing.T) {
		if _, err := c.Decrypt("bm90LXJlYWxseS1jaXBoZXJ0ZXh0"); err == nil {
			t.Error("expected error decrypting garbage")
		}
	})
}
