// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/models"
)

var auditColumns = []string{"id", "actor_id", "action", "ip_address", "user_agent", "details", "created_at"}

// auditRepository implements [AuditRepository]. It only ever inserts into
// and reads from "audit_events".
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

func (r *auditRepository) InsertEvent(ctx context.Context, e models.AuditEvent) (models.AuditEvent, error) {
	log := logger.FromContext(ctx)
	e.CreatedAt = utc(e.CreatedAt)

	var actor sql.NullInt64
	if e.ActorID != nil {
		actor = sql.NullInt64{Int64: *e.ActorID, Valid: true}
	}

	query, args, err := r.db.builder.
		Insert("audit_events").
		Columns(auditColumns[1:]...).
		Values(actor, string(e.Action), e.IP, e.UserAgent, e.Details, e.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.AuditEvent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&e.ID)
	})
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.InsertEvent").Str("action", string(e.Action)).Msg("error inserting audit event")
		return models.AuditEvent{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return e, nil
}

func (r *auditRepository) ListByActor(ctx context.Context, actorID int64, limit int) ([]models.AuditEvent, error) {
	return r.list(ctx, "*auditRepository.ListByActor", sq.Eq{"actor_id": actorID}, limit)
}

func (r *auditRepository) ListEvents(ctx context.Context, limit int) ([]models.AuditEvent, error) {
	return r.list(ctx, "*auditRepository.ListEvents", nil, limit)
}

func (r *auditRepository) list(ctx context.Context, fn string, where sq.Sqlizer, limit int) ([]models.AuditEvent, error) {
	log := logger.FromContext(ctx)

	b := r.db.builder.
		Select(auditColumns...).
		From("audit_events").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(max(limit, 0)))
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error listing audit events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.AuditEvent, 0)
	for rows.Next() {
		var (
			e      models.AuditEvent
			actor  sql.NullInt64
			action string
		)
		if err = rows.Scan(&e.ID, &actor, &action, &e.IP, &e.UserAgent, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.ActorID = int64Ptr(actor)
		e.Action = models.AuditAction(action)
		e.CreatedAt = e.CreatedAt.UTC()
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}
