// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the transport and service layers:
// typed context keys, JWT issuance and parsing, JSON response writing,
// client metadata extraction, the outbound HTTP client and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/secure-notes/models"
)

// contextKey is a private type for context keys so that values stored by
// this package never collide with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// AccountIDCtxKey holds the authenticated account id (int64).
	AccountIDCtxKey = contextKey("accountID")

	// SessionKeyCtxKey holds the session key of the access token (string).
	SessionKeyCtxKey = contextKey("sessionKey")

	// ClientMetaCtxKey holds the request origin ([models.ClientMeta]).
	ClientMetaCtxKey = contextKey("clientMeta")
)

// WithAccount stores the authenticated account id and session key in ctx.
func WithAccount(ctx context.Context, accountID int64, sessionKey string) context.Context {
	ctx = context.WithValue(ctx, AccountIDCtxKey, accountID)
	return context.WithValue(ctx, SessionKeyCtxKey, sessionKey)
}

// GetAccountIDFromContext returns the account id stored by [WithAccount].
// ok is false when the value is missing or has an unexpected type.
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// GetSessionKeyFromContext returns the session key stored by [WithAccount].
func GetSessionKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(SessionKeyCtxKey).(string)
	return key, ok && key != ""
}

// WithClientMeta stores the request origin in ctx.
func WithClientMeta(ctx context.Context, meta models.ClientMeta) context.Context {
	return context.WithValue(ctx, ClientMetaCtxKey, meta)
}

// GetClientMetaFromContext returns the request origin, or the zero value
// when none was stored.
func GetClientMetaFromContext(ctx context.Context) models.ClientMeta {
	meta, _ := ctx.Value(ClientMetaCtxKey).(models.ClientMeta)
	return meta
}
