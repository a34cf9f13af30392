// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/secure-notes/internal/logger"

// Storages groups every repository built on one [DB].
type Storages struct {
	Accounts AccountRepository
	Security SecurityRepository
	Sessions SessionRepository
	Audit    AuditRepository
	Payments PaymentRepository
	Notes    NoteRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Accounts: NewAccountRepository(db, logger),
		Security: NewSecurityRepository(db, logger),
		Sessions: NewSessionRepository(db, logger),
		Audit:    NewAuditRepository(db, logger),
		Payments: NewPaymentRepository(db, logger),
		Notes:    NewNoteRepository(db, logger),
	}
}
