// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("gateway rejected request")
	ErrUnauthorized        = errors.New("gateway unauthorized")
	ErrNotFound            = errors.New("gateway transaction not found")
	ErrBadGateway          = errors.New("gateway unavailable")
	ErrInternalServerError = errors.New("gateway internal error")
	ErrUnexpectedResponse  = errors.New("unexpected gateway response")
	ErrRequestFailed       = errors.New("gateway request failed")
)
