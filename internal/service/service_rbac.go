// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/policy"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/models"
)

type rbacService struct {
	accountRepository  store.AccountRepository
	securityRepository store.SecurityRepository
	noteRepository     store.NoteRepository

	audit  AuditService
	logger *logger.Logger
}

func NewRBACService(storages *store.Storages, audit AuditService, logger *logger.Logger) RBACService {
	return &rbacService{
		accountRepository:  storages.Accounts,
		securityRepository: storages.Security,
		noteRepository:     storages.Notes,
		audit:              audit,
		logger:             logger,
	}
}

func (r *rbacService) Subject(ctx context.Context, accountID int64) (policy.Subject, error) {
	account, err := r.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return policy.Subject{}, notFoundOr(err, "error loading account")
	}

	tier := models.TierFree
	profile, err := r.securityRepository.GetProfile(ctx, accountID)
	switch {
	case err == nil:
		tier = policy.EffectiveTier(profile.Tier)
	case errors.Is(err, store.ErrProfileNotFound):
		logger.FromContext(ctx).Warn().Int64("account_id", accountID).Msg("account has no security profile, treating as FREE")
	default:
		return policy.Subject{}, fmt.Errorf("error loading security profile: %w", err)
	}

	return policy.Subject{AccountID: account.ID, Tier: tier, IsStaff: account.IsStaff}, nil
}

func (r *rbacService) Authorize(ctx context.Context, subject policy.Subject, meta models.ClientMeta, guards ...policy.Guard) error {
	decision := policy.Evaluate(subject, guards...)
	if decision.Allowed {
		return nil
	}

	logger.FromContext(ctx).Info().
		Int64("account_id", subject.AccountID).
		Str("tier", string(subject.Tier)).
		Str("reason", decision.Reason).
		Msg("access denied")
	record(ctx, r.audit, subject.AccountID, models.ActionAccessDenied, meta, decision.Reason)

	return &AccessDeniedError{Reason: decision.Reason}
}

func (r *rbacService) CheckNoteLimit(ctx context.Context, subject policy.Subject) (models.NoteLimit, error) {
	count, err := r.noteRepository.CountNotes(ctx, subject.AccountID)
	if err != nil {
		return models.NoteLimit{}, fmt.Errorf("error counting notes: %w", err)
	}
	return policy.NoteLimit(subject.Tier, count), nil
}

func (r *rbacService) CheckUploadSize(_ context.Context, subject policy.Subject, sizeMB float64) models.UploadCheck {
	return policy.UploadSize(subject.Tier, sizeMB)
}

func (r *rbacService) TierInfo(ctx context.Context, subject policy.Subject) (models.TierInfo, error) {
	count, err := r.noteRepository.CountNotes(ctx, subject.AccountID)
	if err != nil {
		return models.TierInfo{}, fmt.Errorf("error counting notes: %w", err)
	}

	tier := policy.EffectiveTier(subject.Tier)
	return models.TierInfo{
		Tier:       tier,
		Limits:     policy.LimitsFor(tier),
		NotesUsed:  count,
		IsStaff:    subject.IsStaff,
		CanUseAPI:  policy.CanUseAPI(tier, subject.IsStaff),
		CanUpgrade: tier != models.TierEnterprise,
	}, nil
}
