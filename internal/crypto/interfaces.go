// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher derives and checks one-way credential hashes.
type PasswordHasher interface {
	// Hash returns the PHC-encoded Argon2id hash of password with a fresh
	// random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. The comparison
	// is constant-time. A malformed hash returns an error.
	Verify(password, encodedHash string) (bool, error)
}

// SecretSealer encrypts small secrets (TOTP seeds) for storage.
type SecretSealer interface {
	// Seal returns base64(nonce || AES-GCM ciphertext) of plaintext.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. Tampered or foreign input returns an error.
	Open(sealed string) (string, error)
}

// OTP generates and checks RFC 6238 one-time codes.
type OTP interface {
	// GenerateSecret returns a fresh 160-bit secret, base32 without padding.
	GenerateSecret() (string, error)

	// ProvisioningURI returns the otpauth:// enrollment URI for secret.
	ProvisioningURI(secret, accountLabel string) (string, error)

	// Verify checks token against secret at the given instant within the
	// configured drift window. On success it returns the time-step counter
	// the token was generated for.
	Verify(secret, token string, at time.Time) (step int64, ok bool)
}

// PaymentSigner computes and checks gateway HMAC signatures.
type PaymentSigner interface {
	// Sign signs the comma-separated signedFieldNames taken from fields.
	Sign(fields map[string]string, signedFieldNames string) (string, error)

	// Verify recomputes the signature over fields["signed_field_names"] and
	// compares it to fields["signature"]. It never returns true for a
	// payload with missing fields or a malformed signature.
	Verify(fields map[string]string) bool
}
