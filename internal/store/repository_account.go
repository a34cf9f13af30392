// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/models"
)

var accountColumns = []string{"id", "username", "email", "password_hash", "is_staff", "created_at"}

// accountRepository is the database/sql implementation of
// [AccountRepository] over the "accounts" table.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account with its security profile and the
// first password history entry.
//
// Error handling:
//   - unique violation on username → [ErrUsernameTaken].
//   - unique violation on email → [ErrEmailTaken].
//   - anything else is wrapped with the low-level sentinel of the failed step.
func (r *accountRepository) CreateAccount(ctx context.Context, in models.NewAccount) (models.Account, error) {
	log := logger.FromContext(ctx)
	createdAt := utc(in.CreatedAt)

	account := models.Account{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		CreatedAt:    createdAt,
	}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.builder.
			Insert("accounts").
			Columns("username", "email", "password_hash", "is_staff", "created_at").
			Values(in.Username, in.Email, in.PasswordHash, false, createdAt).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = tx.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
			switch {
			case violatesConstraintOn(err, "username"):
				return ErrUsernameTaken
			case violatesConstraintOn(err, "email"):
				return ErrEmailTaken
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = r.db.builder.
			Insert("security_profiles").
			Columns("account_id", "failed_attempts", "password_changed_at", "force_password_change",
				"totp_secret", "totp_enabled", "tier", "last_login_ip", "last_login_user_agent", "updated_at").
			Values(account.ID, 0, createdAt, false, "", false, string(models.TierFree), "", "", createdAt).
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
			Values(account.ID, in.PasswordHash, createdAt).
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
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Str("username", in.Username).Msg("error creating account")
		return models.Account{}, err
	}

	return account, nil
}

// FindByUsername returns the account with the given username or
// [ErrAccountNotFound].
func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByUsername", sq.Eq{"username": username})
}

// FindByID returns the account with the given id or [ErrAccountNotFound].
func (r *accountRepository) FindByID(ctx context.Context, id int64) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByID", sq.Eq{"id": id})
}

func (r *accountRepository) findOne(ctx context.Context, fn string, where sq.Eq) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(accountColumns...).From("accounts").Where(where).ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var a models.Account
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.IsStaff, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}

// DeleteAccount removes the account row; zero affected rows yields
// [ErrAccountNotFound].
func (r *accountRepository) DeleteAccount(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Delete("accounts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Int64("account_id", id).Msg("error deleting account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAccountNotFound
	}
	return nil
}
