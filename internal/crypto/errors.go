// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrInvalidHash        = errors.New("invalid password hash")
	ErrInvalidArgonParams = errors.New("invalid argon2 parameters")
	ErrInvalidSealKey     = errors.New("invalid sealing key")
	ErrSealedTooShort     = errors.New("sealed value too short")
	ErrUnseal             = errors.New("unable to open sealed value")
	ErrInvalidOTPSecret   = errors.New("invalid otp secret")
	ErrMissingSignedField = errors.New("signed field is missing")
)
