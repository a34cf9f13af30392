// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/models"
)

var sessionColumns = []string{
	"id", "account_id", "session_key", "session_type", "ip_address", "user_agent",
	"device_name", "is_active", "created_at", "last_activity", "expires_at",
}

// sessionRepository implements [SessionRepository] over the "sessions"
// table. Rows are soft-deleted through is_active.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, s models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	s.CreatedAt = utc(s.CreatedAt)
	s.LastActivity = utc(s.LastActivity)
	s.ExpiresAt = utc(s.ExpiresAt)
	s.IsActive = true

	query, args, err := r.db.builder.
		Insert("sessions").
		Columns(sessionColumns[1:]...).
		Values(s.AccountID, s.Key, string(s.Type), s.IP, s.UserAgent,
			s.DeviceName, s.IsActive, s.CreatedAt, s.LastActivity, s.ExpiresAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Int64("account_id", s.AccountID).Msg("error creating session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return s, nil
}

func (r *sessionRepository) FindByKey(ctx context.Context, key string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"session_key": key}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	s, err := scanSession(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindByKey").Msg("error finding session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}

func (r *sessionRepository) ListActive(ctx context.Context, accountID int64, now time.Time) ([]models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"account_id": accountID, "is_active": true}).
		Where(sq.Gt{"expires_at": utc(now)}).
		OrderBy("last_activity DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ListActive").Int64("account_id", accountID).Msg("error listing sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sessions = append(sessions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

// Deactivate is scoped to the owner, so a foreign id affects zero rows.
func (r *sessionRepository) Deactivate(ctx context.Context, accountID, sessionID int64) (bool, error) {
	return r.deactivate(ctx, "*sessionRepository.Deactivate", sq.Eq{"id": sessionID, "account_id": accountID, "is_active": true})
}

func (r *sessionRepository) DeactivateByKey(ctx context.Context, accountID int64, key string) (bool, error) {
	return r.deactivate(ctx, "*sessionRepository.DeactivateByKey", sq.Eq{"session_key": key, "account_id": accountID, "is_active": true})
}

func (r *sessionRepository) deactivate(ctx context.Context, fn string, where sq.Eq) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Update("sessions").Set("is_active", false).Where(where).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error deactivating session")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *sessionRepository) Touch(ctx context.Context, key string, now time.Time) error {
	query, args, err := r.db.builder.
		Update("sessions").
		Set("last_activity", utc(now)).
		Where(sq.Eq{"session_key": key, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.Touch").Msg("error updating session activity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *sessionRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update("sessions").
		Set("is_active", false).
		Where(sq.Eq{"is_active": true}).
		Where(sq.LtOrEq{"expires_at": utc(now)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.db.withRetry(ctx, func() error {
		res, err = r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeactivateExpired").Msg("error deactivating expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (models.Session, error) {
	var (
		s           models.Session
		sessionType string
	)
	err := row.Scan(&s.ID, &s.AccountID, &s.Key, &sessionType, &s.IP, &s.UserAgent,
		&s.DeviceName, &s.IsActive, &s.CreatedAt, &s.LastActivity, &s.ExpiresAt)
	if err != nil {
		return models.Session{}, err
	}

	s.Type = models.SessionType(sessionType)
	s.CreatedAt = s.CreatedAt.UTC()
	s.LastActivity = s.LastActivity.UTC()
	s.ExpiresAt = s.ExpiresAt.UTC()
	return s, nil
}
