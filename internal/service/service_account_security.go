// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/secure-notes/internal/config"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/policy"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/models"
)

// accountSecurityService keeps the lockout state. The policy decides, the
// repository applies the outcome with single conditional statements.
type accountSecurityService struct {
	securityRepository store.SecurityRepository
	lockout            policy.Lockout
	now                Clock
	logger             *logger.Logger
}

func NewAccountSecurityService(securityRepository store.SecurityRepository, cfg config.Security, now Clock, logger *logger.Logger) AccountSecurityService {
	return &accountSecurityService{
		securityRepository: securityRepository,
		lockout:            policy.Lockout{Threshold: cfg.LockoutThreshold, Cooloff: cfg.LockoutCooloff},
		now:                now,
		logger:             logger,
	}
}

func (s *accountSecurityService) IsLocked(ctx context.Context, accountID int64) (bool, time.Time, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	profile, err := s.securityRepository.GetProfile(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return false, time.Time{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return false, time.Time{}, fmt.Errorf("error loading security profile: %w", err)
	}

	switch s.lockout.Check(profile, now) {
	case policy.Locked:
		return true, *profile.LockedUntil, nil
	case policy.LockLapsed:
		cleared, err := s.securityRepository.ClearExpiredLock(ctx, accountID, now)
		if err != nil {
			return false, time.Time{}, fmt.Errorf("error clearing expired lock: %w", err)
		}
		if cleared {
			log.Info().Int64("account_id", accountID).Msg("lapsed account lock cleared")
		}
	}

	return false, time.Time{}, nil
}

func (s *accountSecurityService) RecordFailedAttempt(ctx context.Context, accountID int64) (models.LockState, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	state, err := s.securityRepository.IncrementFailedAttempts(ctx, accountID, s.lockout.Threshold, now, s.lockout.Deadline(now))
	if err != nil {
		log.Err(err).Str("func", "*accountSecurityService.RecordFailedAttempt").Int64("account_id", accountID).Msg("failed to record failed attempt")
		return models.LockState{}, fmt.Errorf("error recording failed attempt: %w", err)
	}

	if s.lockout.ReachesThreshold(state.FailedAttempts) {
		log.Warn().Int64("account_id", accountID).Int("failed_attempts", state.FailedAttempts).Msg("account locked")
	}

	return state, nil
}

func (s *accountSecurityService) RecordSuccess(ctx context.Context, accountID int64, meta models.ClientMeta) error {
	if err := s.securityRepository.RecordLogin(ctx, accountID, meta, s.now()); err != nil {
		return fmt.Errorf("error recording login: %w", err)
	}
	return nil
}
