// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/secure-notes/internal/crypto"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/models"
)

// twoFactorService implements two-phase TOTP enrollment. The secret is
// stored sealed; 2FA is only enabled after a valid code was presented.
type twoFactorService struct {
	accountRepository  store.AccountRepository
	securityRepository store.SecurityRepository

	otp    crypto.OTP
	sealer crypto.SecretSealer
	audit  AuditService

	now    Clock
	logger *logger.Logger
}

func NewTwoFactorService(
	storages *store.Storages,
	otp crypto.OTP,
	sealer crypto.SecretSealer,
	audit AuditService,
	now Clock,
	logger *logger.Logger,
) TwoFactorService {
	return &twoFactorService{
		accountRepository:  storages.Accounts,
		securityRepository: storages.Security,
		otp:                otp,
		sealer:             sealer,
		audit:              audit,
		now:                now,
		logger:             logger,
	}
}

func (t *twoFactorService) Setup(ctx context.Context, accountID int64, enable bool, meta models.ClientMeta) (models.TwoFactorSetup, error) {
	if !enable {
		return t.disable(ctx, accountID, meta)
	}

	log := logger.FromContext(ctx)

	account, err := t.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return models.TwoFactorSetup{}, notFoundOr(err, "error loading account")
	}
	profile, err := t.securityRepository.GetProfile(ctx, accountID)
	if err != nil {
		return models.TwoFactorSetup{}, notFoundOr(err, "error loading security profile")
	}
	if profile.TOTPEnabled {
		return models.TwoFactorSetup{}, ErrTwoFactorAlreadyEnabled
	}

	secret, err := t.otp.GenerateSecret()
	if err != nil {
		return models.TwoFactorSetup{}, fmt.Errorf("error generating totp secret: %w", err)
	}
	uri, err := t.otp.ProvisioningURI(secret, account.Email)
	if err != nil {
		return models.TwoFactorSetup{}, fmt.Errorf("error building provisioning uri: %w", err)
	}
	sealed, err := t.sealer.Seal(secret)
	if err != nil {
		return models.TwoFactorSetup{}, fmt.Errorf("error sealing totp secret: %w", err)
	}

	if err = t.securityRepository.SetPendingTOTP(ctx, accountID, sealed, t.now()); err != nil {
		log.Err(err).Str("func", "*twoFactorService.Setup").Int64("account_id", accountID).Msg("failed to store pending secret")
		return models.TwoFactorSetup{}, fmt.Errorf("error storing totp secret: %w", err)
	}

	record(ctx, t.audit, accountID, models.ActionTwoFactorSetup, meta, "Two-factor enrollment started")
	return models.TwoFactorSetup{Secret: secret, ProvisioningURI: uri, Enabled: false}, nil
}

func (t *twoFactorService) disable(ctx context.Context, accountID int64, meta models.ClientMeta) (models.TwoFactorSetup, error) {
	if err := t.securityRepository.DisableTOTP(ctx, accountID, t.now()); err != nil {
		return models.TwoFactorSetup{}, notFoundOr(err, "error disabling totp")
	}

	record(ctx, t.audit, accountID, models.ActionTwoFactorDisabled, meta, "Two-factor authentication disabled")
	return models.TwoFactorSetup{Enabled: false}, nil
}

// Verify completes enrollment. A wrong code is ErrInvalidTwoFactorToken and
// is audited as a failed login.
func (t *twoFactorService) Verify(ctx context.Context, accountID int64, token string, meta models.ClientMeta) error {
	log := logger.FromContext(ctx)

	profile, err := t.securityRepository.GetProfile(ctx, accountID)
	if err != nil {
		return notFoundOr(err, "error loading security profile")
	}
	if profile.TOTPEnabled || profile.TOTPSecret == "" {
		return ErrTwoFactorNotPending
	}

	secret, err := t.sealer.Open(profile.TOTPSecret)
	if err != nil {
		log.Err(err).Str("func", "*twoFactorService.Verify").Int64("account_id", accountID).Msg("sealed secret cannot be opened")
		return fmt.Errorf("error opening totp secret: %w", err)
	}

	step, ok := t.otp.Verify(secret, token, t.now())
	if !ok {
		record(ctx, t.audit, accountID, models.ActionFailedLogin, meta, "Invalid 2FA token during enrollment")
		return ErrInvalidTwoFactorToken
	}

	if err = t.securityRepository.EnableTOTP(ctx, accountID, step, t.now()); err != nil {
		if errors.Is(err, store.ErrTOTPNotPending) {
			return ErrTwoFactorNotPending
		}
		return fmt.Errorf("error enabling totp: %w", err)
	}

	record(ctx, t.audit, accountID, models.ActionTwoFactorEnabled, meta, "Two-factor authentication enabled")
	log.Info().Int64("account_id", accountID).Msg("two-factor authentication enabled")
	return nil
}

// VerifyLogin accepts token only if it is valid for the profile's secret
// and its time step is newer than the last accepted one.
func (t *twoFactorService) VerifyLogin(ctx context.Context, profile models.SecurityProfile, token string) (bool, error) {
	log := logger.FromContext(ctx)

	if !profile.TOTPEnabled || profile.TOTPSecret == "" {
		return false, nil
	}

	secret, err := t.sealer.Open(profile.TOTPSecret)
	if err != nil {
		log.Err(err).Str("func", "*twoFactorService.VerifyLogin").Int64("account_id", profile.AccountID).Msg("sealed secret cannot be opened")
		return false, fmt.Errorf("error opening totp secret: %w", err)
	}

	step, ok := t.otp.Verify(secret, token, t.now())
	if !ok {
		return false, nil
	}

	fresh, err := t.securityRepository.ConsumeTOTPStep(ctx, profile.AccountID, step, t.now())
	if err != nil {
		return false, fmt.Errorf("error consuming totp step: %w", err)
	}
	if !fresh {
		log.Warn().Int64("account_id", profile.AccountID).Int64("step", step).Msg("totp code replayed")
	}
	return fresh, nil
}

// notFoundOr maps missing accounts and profiles to ErrNotFound and wraps
// everything else with msg.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, store.ErrAccountNotFound) || errors.Is(err, store.ErrProfileNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
