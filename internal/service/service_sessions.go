// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/internal/utils"
	"github.com/MKhiriev/secure-notes/models"
)

// sessionService is the concrete implementation of SessionService.
type sessionService struct {
	sessionRepository store.SessionRepository

	ids   utils.IDGenerator
	ttl   time.Duration
	audit AuditService

	now    Clock
	logger *logger.Logger
}

func NewSessionService(
	sessionRepository store.SessionRepository,
	ids utils.IDGenerator,
	ttl time.Duration,
	audit AuditService,
	now Clock,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		ids:               ids,
		ttl:               ttl,
		audit:             audit,
		now:               now,
		logger:            logger,
	}
}

func (s *sessionService) Create(ctx context.Context, accountID int64, meta models.ClientMeta) (models.Session, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	sessionType, device := utils.DescribeClient(meta.UserAgent)
	session, err := s.sessionRepository.CreateSession(ctx, models.Session{
		AccountID:    accountID,
		Key:          s.ids.Generate(),
		Type:         sessionType,
		IP:           meta.IP,
		UserAgent:    meta.UserAgent,
		DeviceName:   device,
		IsActive:     true,
		CreatedAt:    now,
		LastActivity: now,
		ExpiresAt:    now.Add(s.ttl),
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionService.Create").Int64("account_id", accountID).Msg("failed to create session")
		return models.Session{}, fmt.Errorf("error creating session: %w", err)
	}

	log.Debug().Int64("account_id", accountID).Int64("session_id", session.ID).Str("device", device).Msg("session created")
	return session, nil
}

func (s *sessionService) Validate(ctx context.Context, accountID int64, key string) (models.Session, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	session, err := s.sessionRepository.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrInvalidToken
		}
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	if session.AccountID != accountID || !session.IsActive || session.Expired(now) {
		return models.Session{}, ErrInvalidToken
	}

	if err = s.sessionRepository.Touch(ctx, key, now); err != nil {
		log.Err(err).Str("func", "*sessionService.Validate").Int64("session_id", session.ID).Msg("failed to record session activity")
	} else {
		session.LastActivity = now
	}

	return session, nil
}

func (s *sessionService) List(ctx context.Context, accountID int64, currentKey string) ([]models.Session, error) {
	sessions, err := s.sessionRepository.ListActive(ctx, accountID, s.now())
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}
	for i := range sessions {
		sessions[i].Current = currentKey != "" && sessions[i].Key == currentKey
	}
	return sessions, nil
}

func (s *sessionService) Revoke(ctx context.Context, accountID, sessionID int64, meta models.ClientMeta) error {
	revoked, err := s.sessionRepository.Deactivate(ctx, accountID, sessionID)
	if err != nil {
		return fmt.Errorf("error revoking session: %w", err)
	}
	if !revoked {
		return fmt.Errorf("%w: session %d", ErrNotFound, sessionID)
	}

	record(ctx, s.audit, accountID, models.ActionSessionRevoked, meta, fmt.Sprintf("Session %d revoked", sessionID))
	return nil
}

// End is idempotent: ending an already inactive session is not an error.
func (s *sessionService) End(ctx context.Context, accountID int64, key string) error {
	if _, err := s.sessionRepository.DeactivateByKey(ctx, accountID, key); err != nil {
		return fmt.Errorf("error ending session: %w", err)
	}
	return nil
}

func (s *sessionService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.sessionRepository.DeactivateExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error deactivating expired sessions: %w", err)
	}
	if n > 0 {
		logger.FromContext(ctx).Info().Int64("count", n).Msg("expired sessions deactivated")
	}
	return n, nil
}
