// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of incoming requests before they
// reach the service layer.
//
// Structural rules (required fields, lengths, formats) live in the
// `validate` struct tags of the request models and are evaluated with
// go-playground/validator. Business rules such as password complexity are
// not checked here; they belong to the services.
//
// A failed validation returns [FieldErrors], keyed by the JSON name of each
// offending field.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates obj. When fields are given, only those struct
	// fields (Go names) are checked.
	Validate(ctx context.Context, obj any, fields ...string) error
}
