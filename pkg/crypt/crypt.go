// Package crypt provides AES-GCM authenticated encryption for small values
// such as cookies.
//
// Ciphertext is base64url-encoded with the random nonce as prefix, so a
// single string can travel in a cookie:
//
//	box := crypt.New(config.AppKey())
//	enc, err := box.EncryptJSON(flash)
//	err = box.DecryptJSON(enc, &flash)
package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrDecrypt is returned when decoding, decryption or authentication fails.
var ErrDecrypt = errors.New("crypt: decryption failed")

// Box seals and opens values with one AES-256 key.
type Box struct {
	aead cipher.AEAD
}

// New derives a 256-bit key from secret with SHA-256.
func New(secret string) *Box {
	k := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(k[:])
	if err != nil {
		// unreachable: the key is always 32 bytes
		panic(fmt.Sprintf("crypt: new cipher: %v", err))
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		panic(fmt.Sprintf("crypt: new GCM: %v", err))
	}
	return &Box{aead: aead}
}

// EncryptBytes returns base64url(nonce || ciphertext || tag).
func (b *Box) EncryptBytes(data []byte) (string, error) {
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("crypt: nonce: %w", err)
	}
	sealed := b.aead.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// DecryptBytes reverses EncryptBytes.
func (b *Box) DecryptBytes(encoded string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrDecrypt
	}

	n := b.aead.NonceSize()
	if len(data) < n {
		return nil, ErrDecrypt
	}

	plain, err := b.aead.Open(nil, data[:n], data[n:], nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plain, nil
}

// EncryptJSON marshals v to JSON then encrypts it.
func (b *Box) EncryptJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("crypt: marshal: %w", err)
	}
	return b.EncryptBytes(raw)
}

// DecryptJSON decrypts encoded and unmarshals the result into dest.
func (b *Box) DecryptJSON(encoded string, dest any) error {
	raw, err := b.DecryptBytes(encoded)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("crypt: unmarshal: %w", err)
	}
	return nil
}
