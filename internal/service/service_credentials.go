// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/secure-notes/internal/config"
	"github.com/MKhiriev/secure-notes/internal/crypto"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/policy"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/models"
)

const msgPasswordReused = "password was used recently"

// credentialService is the concrete implementation of CredentialService.
type credentialService struct {
	accountRepository  store.AccountRepository
	securityRepository store.SecurityRepository

	hasher   crypto.PasswordHasher
	password policy.Password
	audit    AuditService

	now    Clock
	logger *logger.Logger
}

func NewCredentialService(
	storages *store.Storages,
	hasher crypto.PasswordHasher,
	audit AuditService,
	cfg config.Security,
	now Clock,
	logger *logger.Logger,
) CredentialService {
	return &credentialService{
		accountRepository:  storages.Accounts,
		securityRepository: storages.Security,
		hasher:             hasher,
		password: policy.Password{
			MinLength:    cfg.PasswordMinLength,
			HistoryCount: cfg.PasswordHistoryCount,
			ExpiryDays:   cfg.PasswordExpiryDays,
		},
		audit:  audit,
		now:    now,
		logger: logger,
	}
}

func (c *credentialService) Hash(password string) (string, error) {
	hash, err := c.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}

// Verify reports whether password matches encodedHash. A malformed hash
// never verifies.
func (c *credentialService) Verify(password, encodedHash string) bool {
	ok, err := c.hasher.Verify(password, encodedHash)
	if err != nil {
		c.logger.Err(err).Str("func", "*credentialService.Verify").Msg("stored hash could not be parsed")
		return false
	}
	return ok
}

// ValidateComplexity returns a *PolicyViolationError listing every rule
// password breaks, or nil.
func (c *credentialService) ValidateComplexity(password, username string) error {
	if violations := c.password.Validate(password, username); len(violations) > 0 {
		return &PolicyViolationError{Reasons: violations}
	}
	return nil
}

func (c *credentialService) CheckStrength(password string) models.PasswordStrength {
	return c.password.Strength(password)
}

func (c *credentialService) IsExpired(profile models.SecurityProfile) bool {
	return c.password.IsExpired(profile, c.now())
}

func (c *credentialService) ExpiresAt(profile models.SecurityProfile) time.Time {
	return c.password.ExpiresAt(profile)
}

// ChangePassword rotates the credential of accountID.
//
// A wrong old password is ErrAuthenticationFailure and is audited as a
// failed login. A new password that breaks a complexity rule or matches one
// of the last HistoryCount hashes is a *PolicyViolationError. The rotation
// itself is applied by the store in one transaction.
func (c *credentialService) ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string, meta models.ClientMeta) error {
	log := logger.FromContext(ctx)

	account, err := c.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return fmt.Errorf("error loading account: %w", err)
	}

	if !c.Verify(oldPassword, account.PasswordHash) {
		record(ctx, c.audit, accountID, models.ActionFailedLogin, meta, "Wrong current password on password change")
		return ErrAuthenticationFailure
	}

	violations := c.password.Validate(newPassword, account.Username)

	history, err := c.securityRepository.PasswordHistory(ctx, accountID, c.password.HistoryCount)
	if err != nil {
		return fmt.Errorf("error loading password history: %w", err)
	}
	// every entry is checked so the duration does not reveal which one matched
	reused := false
	for _, entry := range history {
		if c.Verify(newPassword, entry.Hash) {
			reused = true
		}
	}
	if reused {
		violations = append(violations, msgPasswordReused)
	}
	if len(violations) > 0 {
		return &PolicyViolationError{Reasons: violations}
	}

	hash, err := c.Hash(newPassword)
	if err != nil {
		return err
	}

	err = c.securityRepository.ChangePassword(ctx, models.PasswordChange{
		AccountID:    accountID,
		NewHash:      hash,
		ChangedAt:    c.now(),
		HistoryLimit: c.password.HistoryCount,
	})
	if err != nil {
		log.Err(err).Str("func", "*credentialService.ChangePassword").Int64("account_id", accountID).Msg("password change failed")
		return fmt.Errorf("error changing password: %w", err)
	}

	record(ctx, c.audit, accountID, models.ActionPasswordChanged, meta, "Password changed")
	log.Info().Int64("account_id", accountID).Msg("password changed")
	return nil
}
