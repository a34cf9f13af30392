// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
	maxAuditDetails   = 1000
)

// auditService is the concrete implementation of AuditService. It only
// ever inserts and reads events.
type auditService struct {
	auditRepository store.AuditRepository
	now             Clock
	logger          *logger.Logger
}

func NewAuditService(auditRepository store.AuditRepository, now Clock, logger *logger.Logger) AuditService {
	return &auditService{
		auditRepository: auditRepository,
		now:             now,
		logger:          logger,
	}
}

// Record appends one event. Unknown actions are rejected with
// ErrValidation; details are cut to 1000 bytes.
func (a *auditService) Record(ctx context.Context, actorID *int64, action models.AuditAction, meta models.ClientMeta, details string) error {
	log := logger.FromContext(ctx)

	if !action.Valid() {
		return fmt.Errorf("%w: unknown audit action %q", ErrValidation, action)
	}
	if len(details) > maxAuditDetails {
		details = details[:maxAuditDetails]
	}

	_, err := a.auditRepository.InsertEvent(ctx, models.AuditEvent{
		ActorID:   actorID,
		Action:    action,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		Details:   details,
		CreatedAt: a.now(),
	})
	if err != nil {
		log.Err(err).Str("func", "*auditService.Record").Str("action", string(action)).Msg("failed to record audit event")
		return fmt.Errorf("failed to record audit event: %w", err)
	}

	return nil
}

func (a *auditService) ListForActor(ctx context.Context, accountID int64, limit int) ([]models.AuditEvent, error) {
	events, err := a.auditRepository.ListByActor(ctx, accountID, clampLimit(limit, defaultAuditLimit, maxAuditLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	return events, nil
}

func (a *auditService) List(ctx context.Context, limit int) ([]models.AuditEvent, error) {
	events, err := a.auditRepository.ListEvents(ctx, clampLimit(limit, defaultAuditLimit, maxAuditLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	return events, nil
}

// record writes an event on behalf of another service. A ledger failure is
// logged and does not change the outcome of the operation being audited.
func record(ctx context.Context, audit AuditService, actorID int64, action models.AuditAction, meta models.ClientMeta, details string) {
	var actor *int64
	if actorID > 0 {
		actor = &actorID
	}
	if err := audit.Record(ctx, actor, action, meta, details); err != nil {
		logger.FromContext(ctx).Err(err).Str("action", string(action)).Int64("actor_id", actorID).Msg("audit event lost")
	}
}

func clampLimit(limit, fallback, upper int) int {
	switch {
	case limit <= 0:
		return fallback
	case limit > upper:
		return upper
	}
	return limit
}
