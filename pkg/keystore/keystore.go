package keystore

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize = 16
	keyIters = 4096
)

// Keystore persists the bearer token across sessions, sealed at rest.
// It is the durable-storage counterpart of the browser's token slot:
// one token, nothing else.
type Keystore struct {
	path   string
	secret string
}

func New(path, secret string) *Keystore {
	return &Keystore{
		path:   path,
		secret: secret,
	}
}

// Save seals the token and writes it to the configured path.
func (k *Keystore) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(k.deriveKey(salt))
	if err != nil {
		return fmt.Errorf("init cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	// File layout: salt || nonce || ciphertext
	sealed := aead.Seal(nil, nonce, []byte(token), nil)
	data := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	data = append(data, salt...)
	data = append(data, nonce...)
	data = append(data, sealed...)

	if err := os.MkdirAll(filepath.Dir(k.path), 0700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	if err := os.WriteFile(k.path, data, 0600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}

	return nil
}

// Load returns the stored token, or an empty string when none is stored.
func (k *Keystore) Load() (string, error) {
	data, err := os.ReadFile(k.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}

	if len(data) < saltSize+chacha20poly1305.NonceSizeX {
		return "", errors.New("token file corrupted")
	}

	salt := data[:saltSize]
	nonce := data[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	sealed := data[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(k.deriveKey(salt))
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}

	token, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", errors.New("token file corrupted")
	}

	return string(token), nil
}

// Clear removes the stored token. Safe to call when nothing is stored.
func (k *Keystore) Clear() error {
	if err := os.Remove(k.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

func (k *Keystore) deriveKey(salt []byte) []byte {
	return pbkdf2.Key([]byte(k.secret), salt, keyIters, chacha20poly1305.KeySize, sha256.New)
}
