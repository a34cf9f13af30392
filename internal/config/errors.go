// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token or sealing keys.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSecurityConfigs indicates a non-positive policy value.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidPaymentConfigs indicates missing gateway settings.
	ErrInvalidPaymentConfigs = errors.New("invalid payment configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or unknown driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no listener is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a zero worker interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
