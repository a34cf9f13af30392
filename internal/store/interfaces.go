// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/secure-notes/models"
)

// AccountRepository persists account identities.
type AccountRepository interface {
	// CreateAccount inserts the account, its security profile (tier FREE)
	// and the initial password history entry in one transaction.
	CreateAccount(ctx context.Context, account models.NewAccount) (models.Account, error)
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	FindByID(ctx context.Context, id int64) (models.Account, error)
	// DeleteAccount removes the account. Dependent rows cascade; audit
	// events keep their rows with a NULL actor.
	DeleteAccount(ctx context.Context, id int64) error
}

// SecurityRepository persists the per-account security profile and the
// password history.
type SecurityRepository interface {
	GetProfile(ctx context.Context, accountID int64) (models.SecurityProfile, error)

	// IncrementFailedAttempts atomically increments the failure counter and
	// sets locked_until to lockUntil when the new count reaches threshold.
	IncrementFailedAttempts(ctx context.Context, accountID int64, threshold int, now, lockUntil time.Time) (models.LockState, error)
	// ClearExpiredLock resets counter and lock if locked_until <= now. It
	// reports whether a lapsed lock was cleared.
	ClearExpiredLock(ctx context.Context, accountID int64, now time.Time) (bool, error)
	// RecordLogin resets the failure state and stores the login origin.
	RecordLogin(ctx context.Context, accountID int64, meta models.ClientMeta, now time.Time) error

	// PasswordHistory returns up to limit entries, newest first.
	PasswordHistory(ctx context.Context, accountID int64, limit int) ([]models.PasswordHistoryEntry, error)
	// ChangePassword stores the new hash, appends and prunes history, and
	// resets the password age in one transaction.
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	// SetPendingTOTP stores a sealed secret with 2FA still disabled.
	SetPendingTOTP(ctx context.Context, accountID int64, sealedSecret string, now time.Time) error
	// EnableTOTP flips 2FA on for a pending enrollment and records step as
	// the last accepted counter.
	EnableTOTP(ctx context.Context, accountID int64, step int64, now time.Time) error
	// DisableTOTP clears secret, flag and last step in one statement.
	DisableTOTP(ctx context.Context, accountID int64, now time.Time) error
	// ConsumeTOTPStep stores step as the last accepted counter if it is
	// strictly greater than the stored one. It reports whether it was.
	ConsumeTOTPStep(ctx context.Context, accountID int64, step int64, now time.Time) (bool, error)
}

// SessionRepository persists login sessions. Sessions are never deleted.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	FindByKey(ctx context.Context, key string) (models.Session, error)
	// ListActive returns active sessions with expires_at > now, newest
	// activity first.
	ListActive(ctx context.Context, accountID int64, now time.Time) ([]models.Session, error)
	// Deactivate marks the owner's session inactive. It reports whether a
	// row of that owner was affected.
	Deactivate(ctx context.Context, accountID, sessionID int64) (bool, error)
	// DeactivateByKey marks the owner's session with key inactive.
	DeactivateByKey(ctx context.Context, accountID int64, key string) (bool, error)
	Touch(ctx context.Context, key string, now time.Time) error
	// DeactivateExpired marks every session with expires_at <= now
	// inactive and returns the number of affected rows.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// AuditRepository is append-only: there is no update or delete.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event models.AuditEvent) (models.AuditEvent, error)
	ListByActor(ctx context.Context, actorID int64, limit int) ([]models.AuditEvent, error)
	ListEvents(ctx context.Context, limit int) ([]models.AuditEvent, error)
}

// PaymentRepository persists payment transactions and subscriptions.
type PaymentRepository interface {
	CreateTransaction(ctx context.Context, tx models.PaymentTransaction) (models.PaymentTransaction, error)
	FindTransaction(ctx context.Context, id string) (models.PaymentTransaction, error)
	ListTransactions(ctx context.Context, accountID int64, limit int) ([]models.PaymentTransaction, error)

	// ApplyPayment completes a PENDING transaction, upgrades the profile
	// tier and upserts the subscription in one SQL transaction.
	ApplyPayment(ctx context.Context, payment models.AppliedPayment) error
	// MarkFailed moves a PENDING transaction through PROCESSING to FAILED.
	MarkFailed(ctx context.Context, id, reason string, now time.Time) error
	// CancelTransaction moves the owner's PENDING transaction to CANCELLED.
	CancelTransaction(ctx context.Context, accountID int64, id string, now time.Time) error
	// ExpirePending cancels PENDING transactions created before cutoff
	// and returns them.
	ExpirePending(ctx context.Context, cutoff, now time.Time) ([]models.PaymentTransaction, error)

	GetSubscription(ctx context.Context, accountID int64) (models.Subscription, error)
}

// NoteRepository exposes the note counts needed for quota checks.
type NoteRepository interface {
	CountNotes(ctx context.Context, ownerID int64) (int64, error)
}
