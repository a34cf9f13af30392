// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when registering an account whose
	// username is already in use.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when registering an account whose email is
	// already in use.
	ErrEmailTaken = errors.New("email already exists")

	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrProfileNotFound is returned when an account has no security
	// profile row.
	ErrProfileNotFound = errors.New("security profile was not found")

	// ErrTOTPNotPending is returned when enabling 2FA for a profile that has
	// no pending secret or is already enabled.
	ErrTOTPNotPending = errors.New("no pending two-factor enrollment")

	// ErrSessionNotFound is returned when no session matches the lookup.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrDuplicateOrder is returned when a transaction is created with an
	// order ID that already exists.
	ErrDuplicateOrder = errors.New("order id already exists")

	// ErrTransactionNotFound is returned when no payment transaction matches
	// the lookup.
	ErrTransactionNotFound = errors.New("payment transaction was not found")

	// ErrTransactionNotPending is returned when a conditional status change
	// finds the transaction outside PENDING, i.e. another caller already
	// moved it.
	ErrTransactionNotPending = errors.New("payment transaction is not pending")

	// ErrDuplicateGatewayRef is returned when a gateway reference is already
	// attached to another transaction.
	ErrDuplicateGatewayRef = errors.New("gateway reference already used")

	// ErrSubscriptionNotFound is returned when an account has no
	// subscription record yet.
	ErrSubscriptionNotFound = errors.New("subscription was not found")

	// ErrUnsupportedDriver is returned by [NewDB] for unknown drivers.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
