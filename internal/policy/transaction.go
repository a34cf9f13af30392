// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/secure-notes/models"
)

// ErrInvalidTransition is returned for a status change the payment state
// machine does not allow.
var ErrInvalidTransition = errors.New("invalid transaction status transition")

var transitions = map[models.TransactionStatus][]models.TransactionStatus{
	models.TransactionPending:    {models.TransactionProcessing, models.TransactionCancelled},
	models.TransactionProcessing: {models.TransactionCompleted, models.TransactionFailed},
	models.TransactionCompleted:  {models.TransactionRefunded},
}

// ValidateTransition checks that a transaction may move from one status to
// another. Statuses never repeat, so a transition to the current status is
// rejected as well.
func ValidateTransition(from, to models.TransactionStatus) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// IsTerminal reports whether no further transition except a refund is
// possible from status.
func IsTerminal(status models.TransactionStatus) bool {
	switch status {
	case models.TransactionPending, models.TransactionProcessing:
		return false
	}
	return true
}
