// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hkdf"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
)

const sealKeyInfo = "secure-notes/totp-seal/v1"

// gcmSealer is the private implementation of [SecretSealer].
type gcmSealer struct {
	aead cipher.AEAD
}

// NewSecretSealer derives an AES-256 key from secretKey with HKDF-SHA256 and
// returns a [SecretSealer] over AES-GCM.
func NewSecretSealer(secretKey string) (SecretSealer, error) {
	if secretKey == "" {
		return nil, ErrInvalidSealKey
	}

	key, err := hkdf.Key(sha256.New, []byte(secretKey), nil, sealKeyInfo, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSealKey, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSealKey, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSealKey, err)
	}

	return &gcmSealer{aead: gcm}, nil
}

// Seal implements [SecretSealer]. A random nonce is prepended to the
// ciphertext: blob = nonce || ciphertext.
func (s *gcmSealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [SecretSealer].
func (s *gcmSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnseal, err)
	}

	n := s.aead.NonceSize()
	if len(blob) < n+s.aead.Overhead() {
		return "", ErrSealedTooShort
	}

	plaintext, err := s.aead.Open(nil, blob[:n], blob[n:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnseal, err)
	}

	return string(plaintext), nil
}
