// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginResult is returned by a successful login.
type LoginResult struct {
	Account Account   `json:"user"`
	Tier    Tier      `json:"tier"`
	Tokens  TokenPair `json:"tokens"`
}

// Profile is the current account with its security summary.
type Profile struct {
	Account             Account    `json:"user"`
	Tier                Tier       `json:"tier"`
	TOTPEnabled         bool       `json:"totp_enabled"`
	PasswordChangedAt   time.Time  `json:"password_changed_at"`
	PasswordExpiresAt   time.Time  `json:"password_expires_at"`
	ForcePasswordChange bool       `json:"force_password_change"`
	LastLoginIP         string     `json:"last_login_ip,omitempty"`
	LockedUntil         *time.Time `json:"locked_until,omitempty"`
}

// TwoFactorSetup is returned when enrollment starts.
type TwoFactorSetup struct {
	Secret          string `json:"secret,omitempty"`
	ProvisioningURI string `json:"provisioning_uri,omitempty"`
	Enabled         bool   `json:"enabled"`
}

// PasswordStrength is the advisory strength report of a candidate
// password. Valid tells whether the complexity policy would accept it;
// Errors lists the violated rules.
type PasswordStrength struct {
	Valid    bool     `json:"valid"`
	Strength string   `json:"strength"`
	Score    int      `json:"score"`
	Feedback []string `json:"feedback"`
	Errors   []string `json:"errors,omitempty"`
}

// NoteLimit is the result of a note quota check.
type NoteLimit struct {
	Allowed bool   `json:"allowed"`
	Current int64  `json:"current"`
	Limit   int64  `json:"limit"`
	Tier    Tier   `json:"tier"`
	Message string `json:"message,omitempty"`
}

// UploadCheck is the result of an upload size check.
type UploadCheck struct {
	Allowed bool    `json:"allowed"`
	SizeMB  float64 `json:"size_mb"`
	LimitMB int64   `json:"limit_mb"`
	Tier    Tier    `json:"tier"`
	Message string  `json:"message,omitempty"`
}

// TierLimits is the static quota row of a tier.
type TierLimits struct {
	MaxNotes    int64    `json:"max_notes"`
	MaxUploadMB int64    `json:"max_upload_mb"`
	APIAccess   bool     `json:"api_access"`
	Features    []string `json:"features"`
}

// TierInfo summarizes the tier, its limits and current usage.
type TierInfo struct {
	Tier       Tier       `json:"tier"`
	Limits     TierLimits `json:"limits"`
	NotesUsed  int64      `json:"notes_used"`
	IsStaff    bool       `json:"is_staff"`
	CanUseAPI  bool       `json:"can_use_api"`
	CanUpgrade bool       `json:"can_upgrade"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error             string            `json:"error"`
	Fields            map[string]string `json:"fields,omitempty"`
	Reasons           []string          `json:"reasons,omitempty"`
	LockedUntil       *time.Time        `json:"locked_until,omitempty"`
	TwoFactorRequired bool              `json:"two_factor_required,omitempty"`
}
