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
	"github.com/MKhiriev/secure-notes/internal/policy"
	"github.com/MKhiriev/secure-notes/models"
)

var transactionColumns = []string{
	"id", "account_id", "order_id", "gateway_ref_id", "plan_id", "tier", "amount", "currency",
	"status", "product_code", "ip_address", "user_agent", "failure_reason",
	"created_at", "updated_at", "completed_at",
}

var subscriptionColumns = []string{
	"account_id", "tier", "status", "billing_cycle_start", "billing_cycle_end", "updated_at",
}

// paymentRepository implements [PaymentRepository] over
// "payment_transactions" and "subscriptions".
//
// Every status change is a conditional UPDATE on the expected current
// status, so two callers racing on the same transaction cannot both win.
type paymentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPaymentRepository(db *DB, logger *logger.Logger) PaymentRepository {
	logger.Debug().Msg("creating payment repository")
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *paymentRepository) CreateTransaction(ctx context.Context, t models.PaymentTransaction) (models.PaymentTransaction, error) {
	log := logger.FromContext(ctx)

	t.CreatedAt = utc(t.CreatedAt)
	t.UpdatedAt = t.CreatedAt
	t.Status = models.TransactionPending

	query, args, err := r.db.builder.
		Insert("payment_transactions").
		Columns(transactionColumns...).
		Values(t.ID, t.AccountID, t.OrderID, nil, t.PlanID, string(t.Tier), t.Amount, t.Currency,
			string(t.Status), t.ProductCode, t.IP, t.UserAgent, "",
			t.CreatedAt, t.UpdatedAt, nil).
		ToSql()
	if err != nil {
		return models.PaymentTransaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if violatesConstraintOn(err, "order_id") {
			return models.PaymentTransaction{}, ErrDuplicateOrder
		}
		log.Err(err).Str("func", "*paymentRepository.CreateTransaction").Int64("account_id", t.AccountID).Msg("error creating transaction")
		return models.PaymentTransaction{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return t, nil
}

func (r *paymentRepository) FindTransaction(ctx context.Context, id string) (models.PaymentTransaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(transactionColumns...).
		From("payment_transactions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.PaymentTransaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PaymentTransaction{}, ErrTransactionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.FindTransaction").Str("transaction_id", id).Msg("error finding transaction")
		return models.PaymentTransaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return t, nil
}

func (r *paymentRepository) ListTransactions(ctx context.Context, accountID int64, limit int) ([]models.PaymentTransaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(transactionColumns...).
		From("payment_transactions").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.ListTransactions").Int64("account_id", accountID).Msg("error listing transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ApplyPayment performs the whole upgrade or nothing:
//  1. PENDING -> PROCESSING
//  2. PROCESSING -> COMPLETED with the gateway reference
//  3. profile tier := paid tier
//  4. subscription upsert to ACTIVE with the billing window
func (r *paymentRepository) ApplyPayment(ctx context.Context, p models.AppliedPayment) error {
	log := logger.FromContext(ctx).With().
		Str("func", "*paymentRepository.ApplyPayment").
		Str("transaction_id", p.TransactionID).
		Int64("account_id", p.AccountID).
		Logger()
	now := utc(p.CompletedAt)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.transition(ctx, tx, p.TransactionID, models.TransactionPending, models.TransactionProcessing, now, nil); err != nil {
			return err
		}

		err := r.transition(ctx, tx, p.TransactionID, models.TransactionProcessing, models.TransactionCompleted, now, map[string]any{
			"gateway_ref_id": p.GatewayRefID,
			"completed_at":   now,
		})
		if err != nil {
			return err
		}

		query, args, err := r.db.builder.
			Update("security_profiles").
			Set("tier", string(p.Tier)).
			Set("updated_at", now).
			Where(sq.Eq{"account_id": p.AccountID}).
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
			return ErrProfileNotFound
		}

		query, args, err = r.db.builder.
			Insert("subscriptions").
			Columns(subscriptionColumns...).
			Values(p.AccountID, string(p.Tier), string(models.SubscriptionActive),
				utc(p.BillingCycleStart), utc(p.BillingCycleEnd), now).
			Suffix("ON CONFLICT (account_id) DO UPDATE SET " +
				"tier = EXCLUDED.tier, status = EXCLUDED.status, " +
				"billing_cycle_start = EXCLUDED.billing_cycle_start, " +
				"billing_cycle_end = EXCLUDED.billing_cycle_end, " +
				"updated_at = EXCLUDED.updated_at").
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
		log.Err(err).Msg("payment was not applied")
		return err
	}

	log.Info().Str("tier", string(p.Tier)).Msg("payment applied")
	return nil
}

func (r *paymentRepository) MarkFailed(ctx context.Context, id, reason string, now time.Time) error {
	now = utc(now)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.transition(ctx, tx, id, models.TransactionPending, models.TransactionProcessing, now, nil); err != nil {
			return err
		}
		return r.transition(ctx, tx, id, models.TransactionProcessing, models.TransactionFailed, now, map[string]any{
			"failure_reason": reason,
		})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*paymentRepository.MarkFailed").Str("transaction_id", id).Msg("error marking transaction failed")
		return err
	}
	return nil
}

func (r *paymentRepository) CancelTransaction(ctx context.Context, accountID int64, id string, now time.Time) error {
	now = utc(now)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		// scope to owner first so foreign ids look missing
		query, args, err := r.db.builder.
			Select("status").
			From("payment_transactions").
			Where(sq.Eq{"id": id, "account_id": accountID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var status string
		err = tx.QueryRowContext(ctx, query, args...).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTransactionNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return r.transition(ctx, tx, id, models.TransactionPending, models.TransactionCancelled, now, nil)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*paymentRepository.CancelTransaction").Str("transaction_id", id).Msg("error cancelling transaction")
		return err
	}
	return nil
}

func (r *paymentRepository) ExpirePending(ctx context.Context, cutoff, now time.Time) ([]models.PaymentTransaction, error) {
	now = utc(now)
	var expired []models.PaymentTransaction

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.builder.
			Select(transactionColumns...).
			From("payment_transactions").
			Where(sq.Eq{"status": string(models.TransactionPending)}).
			Where(sq.Lt{"created_at": utc(cutoff)}).
			OrderBy("created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		stale, err := collectTransactions(rows)
		rows.Close()
		if err != nil {
			return err
		}

		for _, t := range stale {
			err = r.transition(ctx, tx, t.ID, models.TransactionPending, models.TransactionCancelled, now, nil)
			if errors.Is(err, ErrTransactionNotPending) {
				continue
			}
			if err != nil {
				return err
			}
			t.Status = models.TransactionCancelled
			t.UpdatedAt = now
			expired = append(expired, t)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*paymentRepository.ExpirePending").Msg("error expiring pending transactions")
		return nil, err
	}

	return expired, nil
}

func (r *paymentRepository) GetSubscription(ctx context.Context, accountID int64) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(subscriptionColumns...).
		From("subscriptions").
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		s            models.Subscription
		tier, status string
		start, end   sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.AccountID, &tier, &status, &start, &end, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Subscription{}, ErrSubscriptionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.GetSubscription").Int64("account_id", accountID).Msg("error reading subscription")
		return models.Subscription{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	s.Tier = models.Tier(tier)
	s.Status = models.SubscriptionStatus(status)
	s.BillingCycleStart = timePtr(start)
	s.BillingCycleEnd = timePtr(end)
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}

// transition moves transaction id from one status to another inside tx.
// Zero affected rows means the row left the expected status already.
func (r *paymentRepository) transition(ctx context.Context, tx *sql.Tx, id string, from, to models.TransactionStatus, now time.Time, extra map[string]any) error {
	if err := policy.ValidateTransition(from, to); err != nil {
		return err
	}

	b := r.db.builder.
		Update("payment_transactions").
		Set("status", string(to)).
		Set("updated_at", now)
	if len(extra) > 0 {
		b = b.SetMap(extra)
	}

	query, args, err := b.Where(sq.Eq{"id": id, "status": string(from)}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if violatesConstraintOn(err, "gateway_ref_id") {
			return ErrDuplicateGatewayRef
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrTransactionNotPending
	}
	return nil
}

func collectTransactions(rows *sql.Rows) ([]models.PaymentTransaction, error) {
	list := make([]models.PaymentTransaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return list, nil
}

func scanTransaction(row rowScanner) (models.PaymentTransaction, error) {
	var (
		t            models.PaymentTransaction
		ref          sql.NullString
		tier, status string
		completed    sql.NullTime
	)
	err := row.Scan(&t.ID, &t.AccountID, &t.OrderID, &ref, &t.PlanID, &tier, &t.Amount, &t.Currency,
		&status, &t.ProductCode, &t.IP, &t.UserAgent, &t.FailureReason,
		&t.CreatedAt, &t.UpdatedAt, &completed)
	if err != nil {
		return models.PaymentTransaction{}, err
	}

	t.GatewayRefID = stringPtr(ref)
	t.Tier = models.Tier(tier)
	t.Status = models.TransactionStatus(status)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	t.CompletedAt = timePtr(completed)
	return t, nil
}
