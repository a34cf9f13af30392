// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// Payload field names used by the gateway signature scheme.
const (
	FieldSignedFieldNames = "signed_field_names"
	FieldSignature        = "signature"
)

// hmacSigner is the private implementation of [PaymentSigner]. The message
// is "name=value" for each signed field in the given order, joined by
// commas, and the signature is base64(HMAC-SHA256(secret, message)).
type hmacSigner struct {
	secret []byte
}

// NewPaymentSigner returns a [PaymentSigner] keyed with the pre-shared
// gateway secret.
func NewPaymentSigner(secret string) PaymentSigner {
	return &hmacSigner{secret: []byte(secret)}
}

// Sign implements [PaymentSigner].
func (s *hmacSigner) Sign(fields map[string]string, signedFieldNames string) (string, error) {
	mac, err := s.compute(fields, signedFieldNames)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(mac), nil
}

// Verify implements [PaymentSigner].
func (s *hmacSigner) Verify(fields map[string]string) bool {
	names, ok := fields[FieldSignedFieldNames]
	if !ok || strings.TrimSpace(names) == "" {
		return false
	}

	received, err := base64.StdEncoding.DecodeString(fields[FieldSignature])
	if err != nil || len(received) == 0 {
		return false
	}

	expected, err := s.compute(fields, names)
	if err != nil {
		return false
	}

	return hmac.Equal(expected, received)
}

func (s *hmacSigner) compute(fields map[string]string, signedFieldNames string) ([]byte, error) {
	names := strings.Split(signedFieldNames, ",")
	parts := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		value, ok := fields[name]
		if name == "" || !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingSignedField, name)
		}
		parts = append(parts, name+"="+value)
	}

	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(strings.Join(parts, ",")))
	return h.Sum(nil), nil
}
