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

var profileColumns = []string{
	"account_id", "failed_attempts", "last_failed_at", "locked_until",
	"password_changed_at", "force_password_change",
	"totp_secret", "totp_enabled", "totp_last_step",
	"tier", "last_login_ip", "last_login_user_agent", "updated_at",
}

type securityRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSecurityRepository(db *DB, logger *logger.Logger) SecurityRepository {
	logger.Debug().Msg("creating security profile repository")
	return &securityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *securityRepository) GetProfile(ctx context.Context, accountID int64) (models.SecurityProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(profileColumns...).
		From("security_profiles").
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return models.SecurityProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		p           models.SecurityProfile
		lastFailed  sql.NullTime
		lockedUntil sql.NullTime
		lastStep    sql.NullInt64
		tier        string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.AccountID, &p.FailedAttempts, &lastFailed, &lockedUntil,
		&p.PasswordChangedAt, &p.ForcePasswordChange,
		&p.TOTPSecret, &p.TOTPEnabled, &lastStep,
		&tier, &p.LastLoginIP, &p.LastLoginUserAgent, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SecurityProfile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*securityRepository.GetProfile").Int64("account_id", accountID).Msg("error reading security profile")
		return models.SecurityProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	p.LastFailedAt = timePtr(lastFailed)
	p.LockedUntil = timePtr(lockedUntil)
	p.TOTPLastStep = int64Ptr(lastStep)
	p.Tier = models.Tier(tier)
	p.PasswordChangedAt = p.PasswordChangedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()

	return p, nil
}

// IncrementFailedAttempts runs a single UPDATE ... RETURNING so concurrent
// failures never lose an increment. Both dialects evaluate the CASE against
// the pre-update row.
func (r *securityRepository) IncrementFailedAttempts(ctx context.Context, accountID int64, threshold int, now, lockUntil time.Time) (models.LockState, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update("security_profiles").
		Set("failed_attempts", sq.Expr("failed_attempts + 1")).
		Set("last_failed_at", utc(now)).
		Set("locked_until", sq.Expr("CASE WHEN failed_attempts + 1 >= ? THEN ? ELSE locked_until END", threshold, utc(lockUntil))).
		Set("updated_at", utc(now)).
		Where(sq.Eq{"account_id": accountID}).
		Suffix("RETURNING failed_attempts, locked_until").
		ToSql()
	if err != nil {
		return models.LockState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		state  models.LockState
		locked returnedTime
	)
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&state.FailedAttempts, &locked)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.LockState{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*securityRepository.IncrementFailedAttempts").Int64("account_id", accountID).Msg("error recording failed attempt")
		return models.LockState{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	state.LockedUntil = timePtr(locked.NullTime)
	return state, nil
}

func (r *securityRepository) ClearExpiredLock(ctx context.Context, accountID int64, now time.Time) (bool, error) {
	query, args, err := r.db.builder.
		Update("security_profiles").
		Set("failed_attempts", 0).
		Set("last_failed_at", nil).
		Set("locked_until", nil).
		Set("updated_at", utc(now)).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.NotEq{"locked_until": nil}).
		Where(sq.LtOrEq{"locked_until": utc(now)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffected(ctx, "*securityRepository.ClearExpiredLock", accountID, query, args)
}

func (r *securityRepository) RecordLogin(ctx context.Context, accountID int64, meta models.ClientMeta, now time.Time) error {
	query, args, err := r.db.builder.
		Update("security_profiles").
		Set("failed_attempts", 0).
		Set("last_failed_at", nil).
		Set("locked_until", nil).
		Set("last_login_ip", meta.IP).
		Set("last_login_user_agent", meta.UserAgent).
		Set("updated_at", utc(now)).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ok, err := r.execAffected(ctx, "*securityRepository.RecordLogin", accountID, query, args)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProfileNotFound
	}
	return nil
}

func (r *securityRepository) PasswordHistory(ctx context.Context, accountID int64, limit int) ([]models.PasswordHistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "account_id", "password_hash", "created_at").
		From("password_history").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("id DESC").
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*securityRepository.PasswordHistory").Int64("account_id", accountID).Msg("error reading password history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.PasswordHistoryEntry
	for rows.Next() {
		var e models.PasswordHistoryEntry
		if err = rows.Scan(&e.ID, &e.AccountID, &e.Hash, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// ChangePassword updates the credential, appends it to the history and
// keeps only the newest HistoryLimit entries.
func (r *securityRepository) ChangePassword(ctx context.Context, c models.PasswordChange) error {
	log := logger.FromContext(ctx)
	changedAt := utc(c.ChangedAt)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.builder.
			Update("accounts").
			Set("password_hash", c.NewHash).
			Where(sq.Eq{"id": c.AccountID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		n, err := rowsAffected(res)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrAccountNotFound
		}

		query, args, err = r.db.builder.
			Update("security_profiles").
			Set("password_changed_at", changedAt).
			Set("force_password_change", false).
			Set("updated_at", changedAt).
			Where(sq.Eq{"account_id": c.AccountID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = r.db.builder.
			Insert("password_history").
			Columns("account_id", "password_hash", "created_at").
			Values(c.AccountID, c.NewHash, changedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		keep := r.db.builder.
			Select("id").
			From("password_history").
			Where(sq.Eq{"account_id": c.AccountID}).
			OrderBy("id DESC").
			Limit(uint64(max(c.HistoryLimit, 1)))
		keepSQL, keepArgs, err := keep.PlaceholderFormat(sq.Question).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		query, args, err = r.db.builder.
			Delete("password_history").
			Where(sq.Eq{"account_id": c.AccountID}).
			Where(sq.Expr("id NOT IN ("+keepSQL+")", keepArgs...)).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*securityRepository.ChangePassword").Int64("account_id", c.AccountID).Msg("error changing password")
		return err
	}

	return nil
}

func (r *securityRepository) SetPendingTOTP(ctx context.Context, accountID int64, sealedSecret string, now time.Time) error {
	query, args, err := r.db.builder.
		Update("security_profiles").
		Set("totp_secret", sealedSecret).
		Set("totp_enabled", false).
		Set("totp_last_step", nil).
		Set("updated_at", utc(now)).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ok, err := r.execAffected(ctx, "*securityRepository.SetPendingTOTP", accountID, query, args)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProfileNotFound
	}
	return nil
}

// EnableTOTP only touches a profile that has a pending secret and 2FA
// disabled.
func (r *securityRepository) EnableTOTP(ctx context.Context, accountID int64, step int64, now time.Time) error {
	query, args, err := r.db.builder.
		Update("security_profiles").
		Set("totp_enabled", true).
		Set("totp_last_step", step).
		Set("updated_at", utc(now)).
		Where(sq.Eq{"account_id": accountID, "totp_enabled": false}).
		Where(sq.NotEq{"totp_secret": ""}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ok, err := r.execAffected(ctx, "*securityRepository.EnableTOTP", accountID, query, args)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTOTPNotPending
	}
	return nil
}

func (r *securityRepository) DisableTOTP(ctx context.Context, accountID int64, now time.Time) error {
	query, args, err := r.db.builder.
		Update("security_profiles").
		Set("totp_secret", "").
		Set("totp_enabled", false).
		Set("totp_last_step", nil).
		Set("updated_at", utc(now)).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ok, err := r.execAffected(ctx, "*securityRepository.DisableTOTP", accountID, query, args)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProfileNotFound
	}
	return nil
}

// ConsumeTOTPStep is the replay guard: the conditional UPDATE succeeds only
// for a counter above the last accepted one.
func (r *securityRepository) ConsumeTOTPStep(ctx context.Context, accountID int64, step int64, now time.Time) (bool, error) {
	query, args, err := r.db.builder.
		Update("security_profiles").
		Set("totp_last_step", step).
		Set("updated_at", utc(now)).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Or{sq.Eq{"totp_last_step": nil}, sq.Lt{"totp_last_step": step}}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffected(ctx, "*securityRepository.ConsumeTOTPStep", accountID, query, args)
}

func (r *securityRepository) execAffected(ctx context.Context, fn string, accountID int64, query string, args []any) (bool, error) {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := r.db.withRetry(ctx, func() error {
		var err error
		res, err = r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", fn).Int64("account_id", accountID).Msg("error updating security profile")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n > 0, nil
}
