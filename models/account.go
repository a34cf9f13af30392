// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Tier is the subscription level that gates quotas and features.
type Tier string

const (
	TierFree       Tier = "FREE"
	TierPro        Tier = "PRO"
	TierEnterprise Tier = "ENTERPRISE"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierPro, TierEnterprise:
		return true
	}
	return false
}

// Rank orders tiers so that callers can compare them. Unknown tiers rank
// below FREE.
func (t Tier) Rank() int {
	switch t {
	case TierFree:
		return 1
	case TierPro:
		return 2
	case TierEnterprise:
		return 3
	}
	return 0
}

// Account is the identity record of a note-store user.
//
// PasswordHash holds an encoded Argon2id hash and is never serialized.
type Account struct {
	// ID is the internal identifier assigned by the database.
	ID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the unique contact address; it is also the TOTP account label.
	Email string `json:"email"`

	// PasswordHash is the PHC-encoded credential hash.
	PasswordHash string `json:"-"`

	// IsStaff grants administrative capabilities independent of tier.
	IsStaff bool `json:"is_staff"`

	// CreatedAt is the registration instant.
	CreatedAt time.Time `json:"created_at"`
}

// SecurityProfile is the per-account security state. Exactly one profile
// exists for every account.
//
// TOTPSecret may be non-empty while TOTPEnabled is false only between the
// two phases of 2FA enrollment.
type SecurityProfile struct {
	AccountID int64 `json:"-"`

	FailedAttempts int        `json:"failed_attempts"`
	LastFailedAt   *time.Time `json:"last_failed_at,omitempty"`
	LockedUntil    *time.Time `json:"locked_until,omitempty"`

	PasswordChangedAt   time.Time `json:"password_changed_at"`
	ForcePasswordChange bool      `json:"force_password_change"`

	// TOTPSecret is the sealed (encrypted) base32 secret. Empty when 2FA is
	// not configured.
	TOTPSecret  string `json:"-"`
	TOTPEnabled bool   `json:"totp_enabled"`

	// TOTPLastStep is the time-step counter of the last accepted code and
	// guards against reuse of a code inside its own window.
	TOTPLastStep *int64 `json:"-"`

	Tier Tier `json:"tier"`

	LastLoginIP        string `json:"last_login_ip,omitempty"`
	LastLoginUserAgent string `json:"last_login_user_agent,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// LockState is the outcome of a failed-attempt increment.
type LockState struct {
	FailedAttempts int
	LockedUntil    *time.Time
}

// PasswordHistoryEntry is a previously used credential hash.
type PasswordHistoryEntry struct {
	ID        int64     `json:"-"`
	AccountID int64     `json:"-"`
	Hash      string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAccount carries everything persisted at registration.
type NewAccount struct {
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PasswordChange carries a credential rotation that the store applies in
// one transaction.
type PasswordChange struct {
	AccountID    int64
	NewHash      string
	ChangedAt    time.Time
	HistoryLimit int
}

// ClientMeta identifies the origin of a request for sessions and audit.
type ClientMeta struct {
	IP        string
	UserAgent string
}
