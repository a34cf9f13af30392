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

const defaultTransactionLimit = 20

// subscriptionService keeps transactions and the subscription row. Every
// tier change goes through store.PaymentRepository.ApplyPayment.
type subscriptionService struct {
	paymentRepository  store.PaymentRepository
	securityRepository store.SecurityRepository

	audit        AuditService
	billingCycle time.Duration
	pendingTTL   time.Duration

	now    Clock
	logger *logger.Logger
}

func NewSubscriptionService(storages *store.Storages, audit AuditService, cfg config.Payment, now Clock, logger *logger.Logger) SubscriptionService {
	return &subscriptionService{
		paymentRepository:  storages.Payments,
		securityRepository: storages.Security,
		audit:              audit,
		billingCycle:       cfg.BillingCycle,
		pendingTTL:         cfg.PendingTTL,
		now:                now,
		logger:             logger,
	}
}

func (s *subscriptionService) Plans() []models.Plan {
	return policy.Plans()
}

func (s *subscriptionService) Status(ctx context.Context, accountID int64) (models.PaymentStatus, error) {
	status := models.PaymentStatus{Tier: models.TierFree}

	profile, err := s.securityRepository.GetProfile(ctx, accountID)
	switch {
	case err == nil:
		status.Tier = policy.EffectiveTier(profile.Tier)
	case !errors.Is(err, store.ErrProfileNotFound):
		return models.PaymentStatus{}, fmt.Errorf("error loading security profile: %w", err)
	}

	subscription, err := s.paymentRepository.GetSubscription(ctx, accountID)
	switch {
	case err == nil:
		status.Subscription = &subscription
	case !errors.Is(err, store.ErrSubscriptionNotFound):
		return models.PaymentStatus{}, fmt.Errorf("error loading subscription: %w", err)
	}

	latest, err := s.paymentRepository.ListTransactions(ctx, accountID, 1)
	if err != nil {
		return models.PaymentStatus{}, fmt.Errorf("error loading transactions: %w", err)
	}
	if len(latest) > 0 {
		status.LatestTransaction = &latest[0]
	}

	return status, nil
}

func (s *subscriptionService) Transactions(ctx context.Context, accountID int64, limit int) ([]models.PaymentTransaction, error) {
	txs, err := s.paymentRepository.ListTransactions(ctx, accountID, clampLimit(limit, defaultTransactionLimit, maxAuditLimit))
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	return txs, nil
}

func (s *subscriptionService) Apply(ctx context.Context, tx models.PaymentTransaction, gatewayRefID string, meta models.ClientMeta) error {
	log := logger.FromContext(ctx)
	now := s.now()

	err := s.paymentRepository.ApplyPayment(ctx, models.AppliedPayment{
		TransactionID:     tx.ID,
		AccountID:         tx.AccountID,
		GatewayRefID:      gatewayRefID,
		Tier:              tx.Tier,
		CompletedAt:       now,
		BillingCycleStart: now,
		BillingCycleEnd:   now.Add(s.billingCycle),
	})
	if err != nil {
		if errors.Is(err, store.ErrTransactionNotPending) || errors.Is(err, store.ErrDuplicateGatewayRef) {
			log.Warn().Str("transaction_id", tx.ID).Msg("payment was already applied")
			return fmt.Errorf("%w: %w", ErrAlreadyApplied, err)
		}
		log.Err(err).Str("func", "*subscriptionService.Apply").Str("transaction_id", tx.ID).Msg("failed to apply payment")
		return fmt.Errorf("error applying payment: %w", err)
	}

	record(ctx, s.audit, tx.AccountID, models.ActionPaymentCompleted, meta,
		fmt.Sprintf("Payment %s completed, tier upgraded to %s", tx.ID, tx.Tier))
	log.Info().Str("transaction_id", tx.ID).Int64("account_id", tx.AccountID).Str("tier", string(tx.Tier)).Msg("payment applied")
	return nil
}

func (s *subscriptionService) MarkFailed(ctx context.Context, tx models.PaymentTransaction, reason string, meta models.ClientMeta) error {
	if err := s.paymentRepository.MarkFailed(ctx, tx.ID, reason, s.now()); err != nil {
		if errors.Is(err, store.ErrTransactionNotPending) {
			return fmt.Errorf("%w: %w", ErrAlreadyApplied, err)
		}
		return fmt.Errorf("error marking transaction failed: %w", err)
	}

	record(ctx, s.audit, tx.AccountID, models.ActionPaymentFailed, meta,
		fmt.Sprintf("Payment %s failed: %s", tx.ID, reason))
	return nil
}

func (s *subscriptionService) Cancel(ctx context.Context, accountID int64, transactionID string, meta models.ClientMeta) error {
	err := s.paymentRepository.CancelTransaction(ctx, accountID, transactionID, s.now())
	switch {
	case errors.Is(err, store.ErrTransactionNotFound):
		return fmt.Errorf("%w: %w", ErrTransactionNotFound, err)
	case errors.Is(err, store.ErrTransactionNotPending):
		return &PolicyViolationError{Reasons: []string{"only pending transactions can be cancelled"}}
	case err != nil:
		return fmt.Errorf("error cancelling transaction: %w", err)
	}

	record(ctx, s.audit, accountID, models.ActionPaymentCancelled, meta,
		fmt.Sprintf("Payment %s cancelled by user", transactionID))
	return nil
}

func (s *subscriptionService) ExpirePending(ctx context.Context) (int, error) {
	now := s.now()

	expired, err := s.paymentRepository.ExpirePending(ctx, now.Add(-s.pendingTTL), now)
	if err != nil {
		return 0, fmt.Errorf("error expiring pending transactions: %w", err)
	}

	for _, tx := range expired {
		record(ctx, s.audit, tx.AccountID, models.ActionPaymentCancelled, models.ClientMeta{},
			fmt.Sprintf("Payment %s expired without callback", tx.ID))
	}
	if len(expired) > 0 {
		logger.FromContext(ctx).Info().Int("count", len(expired)).Msg("stale pending transactions cancelled")
	}
	return len(expired), nil
}
