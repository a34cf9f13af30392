// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionType describes the client kind that opened a session.
type SessionType string

const (
	SessionWeb    SessionType = "web"
	SessionMobile SessionType = "mobile"
	SessionAPI    SessionType = "api"
)

// Session is a login session. Sessions are soft-deleted by clearing
// IsActive and are never removed.
type Session struct {
	ID        int64 `json:"id"`
	AccountID int64 `json:"-"`

	// Key is the opaque session identifier embedded into issued tokens.
	Key string `json:"-"`

	Type         SessionType `json:"session_type"`
	IP           string      `json:"ip_address"`
	UserAgent    string      `json:"user_agent"`
	DeviceName   string      `json:"device_name"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    time.Time   `json:"created_at"`
	LastActivity time.Time   `json:"last_activity"`
	ExpiresAt    time.Time   `json:"expires_at"`

	// Current is set in listings for the session that made the request.
	Current bool `json:"current"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
