// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/secure-notes/internal/policy"
	"github.com/MKhiriev/secure-notes/models"
)

// AuthService implements the account entry points: registration, login
// with lockout and 2FA, token refresh, logout and account deletion.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest, meta models.ClientMeta) (models.Account, error)
	Login(ctx context.Context, req models.LoginRequest, meta models.ClientMeta) (models.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string, meta models.ClientMeta) (models.TokenPair, error)
	Logout(ctx context.Context, accountID int64, sessionKey string, meta models.ClientMeta) error
	Me(ctx context.Context, accountID int64) (models.Profile, error)
	DeleteAccount(ctx context.Context, accountID int64, password string, meta models.ClientMeta) error

	// ParseAccessToken validates an access token and checks that its
	// session is still active.
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountSecurityService tracks failed logins and lockout.
type AccountSecurityService interface {
	// IsLocked lazily clears a lapsed lock. When locked, until is the end of
	// the cooloff window.
	IsLocked(ctx context.Context, accountID int64) (locked bool, until time.Time, err error)

	// RecordFailedAttempt increments the counter atomically and locks the
	// account once the threshold is reached.
	RecordFailedAttempt(ctx context.Context, accountID int64) (models.LockState, error)

	// RecordSuccess resets the counter and stores the login origin.
	RecordSuccess(ctx context.Context, accountID int64, meta models.ClientMeta) error
}

// CredentialService hashes and verifies passwords and enforces the
// complexity, history and expiry rules.
type CredentialService interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
	ValidateComplexity(password, username string) error
	CheckStrength(password string) models.PasswordStrength
	IsExpired(profile models.SecurityProfile) bool
	ExpiresAt(profile models.SecurityProfile) time.Time
	ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string, meta models.ClientMeta) error
}

// TwoFactorService manages TOTP enrollment and verification.
type TwoFactorService interface {
	// Setup starts enrollment when enable is true and disables 2FA otherwise.
	Setup(ctx context.Context, accountID int64, enable bool, meta models.ClientMeta) (models.TwoFactorSetup, error)

	// Verify confirms a pending enrollment with a current code.
	Verify(ctx context.Context, accountID int64, token string, meta models.ClientMeta) error

	// VerifyLogin checks a login code and consumes its time step so the same
	// code cannot be used twice.
	VerifyLogin(ctx context.Context, profile models.SecurityProfile, token string) (bool, error)
}

// RBACService evaluates tier and role checks for an account.
type RBACService interface {
	// Subject loads what guards judge. A missing profile yields FREE.
	Subject(ctx context.Context, accountID int64) (policy.Subject, error)

	// Authorize runs guards in order. A denial is audited and returned as
	// *AccessDeniedError.
	Authorize(ctx context.Context, subject policy.Subject, meta models.ClientMeta, guards ...policy.Guard) error

	CheckNoteLimit(ctx context.Context, subject policy.Subject) (models.NoteLimit, error)
	CheckUploadSize(ctx context.Context, subject policy.Subject, sizeMB float64) models.UploadCheck
	TierInfo(ctx context.Context, subject policy.Subject) (models.TierInfo, error)
}

// AuditService is the append-only security ledger.
type AuditService interface {
	Record(ctx context.Context, actorID *int64, action models.AuditAction, meta models.ClientMeta, details string) error
	ListForActor(ctx context.Context, accountID int64, limit int) ([]models.AuditEvent, error)
	List(ctx context.Context, limit int) ([]models.AuditEvent, error)
}

// SessionService tracks login sessions.
type SessionService interface {
	Create(ctx context.Context, accountID int64, meta models.ClientMeta) (models.Session, error)

	// Validate returns the active, unexpired session of accountID with key
	// and records activity on it. Anything else is ErrInvalidToken.
	Validate(ctx context.Context, accountID int64, key string) (models.Session, error)

	List(ctx context.Context, accountID int64, currentKey string) ([]models.Session, error)

	// Revoke deactivates a session of accountID. Foreign and missing ids
	// both return ErrNotFound.
	Revoke(ctx context.Context, accountID, sessionID int64, meta models.ClientMeta) error

	// End deactivates the session with key, as on logout.
	End(ctx context.Context, accountID int64, key string) error

	SweepExpired(ctx context.Context) (int64, error)
}

// SubscriptionService is the ledger that mirrors paid tiers onto accounts.
type SubscriptionService interface {
	Plans() []models.Plan
	Status(ctx context.Context, accountID int64) (models.PaymentStatus, error)
	Transactions(ctx context.Context, accountID int64, limit int) ([]models.PaymentTransaction, error)

	// Apply completes a PENDING transaction and upgrades the tier in one
	// atomic unit. A second call for the same transaction returns
	// ErrAlreadyApplied.
	Apply(ctx context.Context, tx models.PaymentTransaction, gatewayRefID string, meta models.ClientMeta) error

	MarkFailed(ctx context.Context, tx models.PaymentTransaction, reason string, meta models.ClientMeta) error
	Cancel(ctx context.Context, accountID int64, transactionID string, meta models.ClientMeta) error

	// ExpirePending cancels PENDING transactions older than the pending TTL.
	ExpirePending(ctx context.Context) (int, error)
}

// PaymentService starts gateway payments and handles their callbacks.
type PaymentService interface {
	Initiate(ctx context.Context, accountID int64, req models.InitiatePaymentRequest, meta models.ClientMeta) (models.PaymentForm, error)
	HandleCallback(ctx context.Context, req models.CallbackRequest, meta models.ClientMeta) (models.CallbackResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
