// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"encoding/base32"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	totpPeriod     = 30
	totpSecretSize = 20
	totpDigits     = otp.DigitsSix
)

var b32NoPadding = base32.StdEncoding.WithPadding(base32.NoPadding)

// totpService is the private implementation of [OTP] on top of
// github.com/pquerna/otp. Codes are SHA1, six digits, 30 second steps.
type totpService struct {
	issuer string
	window uint
}

// NewTOTP returns an [OTP] that labels enrollments with issuer and accepts
// codes up to window steps away from the current one.
func NewTOTP(issuer string, window uint) OTP {
	return &totpService{issuer: issuer, window: window}
}

// GenerateSecret implements [OTP].
func (s *totpService) GenerateSecret() (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: s.issuer,
		SecretSize:  totpSecretSize,
		Period:      totpPeriod,
		Digits:      totpDigits,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("generate totp secret: %w", err)
	}
	return key.Secret(), nil
}

// ProvisioningURI implements [OTP].
func (s *totpService) ProvisioningURI(secret, accountLabel string) (string, error) {
	raw, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: accountLabel,
		Secret:      raw,
		Period:      totpPeriod,
		Digits:      totpDigits,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("build provisioning uri: %w", err)
	}
	return key.URL(), nil
}

// Verify implements [OTP]. Every counter in [T-window, T+window] is tried
// and compared in constant time; the first match wins.
func (s *totpService) Verify(secret, token string, at time.Time) (int64, bool) {
	if len(token) != totpDigits.Length() || strings.Trim(token, "0123456789") != "" {
		return 0, false
	}
	if _, err := decodeSecret(secret); err != nil {
		return 0, false
	}

	current := at.Unix() / totpPeriod
	w := int64(s.window)
	opts := totp.ValidateOpts{
		Period:    totpPeriod,
		Digits:    totpDigits,
		Algorithm: otp.AlgorithmSHA1,
	}

	for step := current - w; step <= current+w; step++ {
		if step < 0 {
			continue
		}
		code, err := totp.GenerateCodeCustom(secret, time.Unix(step*totpPeriod, 0).UTC(), opts)
		if err != nil {
			return 0, false
		}
		if subtle.ConstantTimeCompare([]byte(code), []byte(token)) == 1 {
			return step, true
		}
	}
	return 0, false
}

func decodeSecret(secret string) ([]byte, error) {
	raw, err := b32NoPadding.DecodeString(strings.ToUpper(strings.TrimRight(strings.TrimSpace(secret), "=")))
	if err != nil || len(raw) == 0 {
		return nil, ErrInvalidOTPSecret
	}
	return raw, nil
}
