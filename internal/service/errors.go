// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Error kinds returned by the services. Callers match them with errors.Is;
// the detail types below unwrap to their kind.
var (
	ErrValidation            = errors.New("validation failed")
	ErrAuthenticationFailure = errors.New("invalid credentials")
	ErrTwoFactorRequired     = errors.New("two-factor token required")
	ErrInvalidTwoFactorToken = errors.New("invalid two-factor token")
	ErrPasswordExpired       = errors.New("password expired")
	ErrLocked                = errors.New("account is locked")
	ErrPolicyViolation       = errors.New("policy violation")
	ErrAccessDenied          = errors.New("access denied")
	ErrNotFound              = errors.New("not found")
	ErrInvalidToken          = errors.New("token is expired or invalid")

	ErrSignatureInvalid    = errors.New("invalid payment signature")
	ErrAlreadyApplied      = errors.New("payment already applied")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrGateway             = errors.New("payment gateway error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

var (
	ErrTwoFactorAlreadyEnabled = fmt.Errorf("%w: two-factor authentication is already enabled", ErrPolicyViolation)
	ErrTwoFactorNotPending     = fmt.Errorf("%w: no two-factor setup is pending", ErrPolicyViolation)
)

// ValidationError reports malformed input per field.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// PolicyViolationError lists every rule a request broke.
type PolicyViolationError struct {
	Reasons []string
}

func (e *PolicyViolationError) Error() string {
	return ErrPolicyViolation.Error() + ": " + strings.Join(e.Reasons, "; ")
}

func (e *PolicyViolationError) Unwrap() error { return ErrPolicyViolation }

// LockedError carries the end of the cooloff window.
type LockedError struct {
	Until time.Time
}

func (e *LockedError) Error() string {
	return ErrLocked.Error() + " until " + e.Until.UTC().Format(time.RFC3339)
}

func (e *LockedError) Unwrap() error { return ErrLocked }

// AccessDeniedError carries the reason of the denying guard.
type AccessDeniedError struct {
	Reason string
}

func (e *AccessDeniedError) Error() string {
	return ErrAccessDenied.Error() + ": " + e.Reason
}

func (e *AccessDeniedError) Unwrap() error { return ErrAccessDenied }
