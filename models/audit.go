// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditAction is the closed set of security events.
type AuditAction string

const (
	ActionLogin             AuditAction = "LOGIN"
	ActionLogout            AuditAction = "LOGOUT"
	ActionRegister          AuditAction = "REGISTER"
	ActionFailedLogin       AuditAction = "FAILED_LOGIN"
	ActionAccessDenied      AuditAction = "ACCESS_DENIED"
	ActionCreateNote        AuditAction = "CREATE_NOTE"
	ActionUpdateNote        AuditAction = "UPDATE_NOTE"
	ActionDeleteNote        AuditAction = "DELETE_NOTE"
	ActionTwoFactorSetup    AuditAction = "TWO_FACTOR_SETUP"
	ActionTwoFactorEnabled  AuditAction = "TWO_FACTOR_ENABLED"
	ActionTwoFactorDisabled AuditAction = "TWO_FACTOR_DISABLED"
	ActionPasswordChanged   AuditAction = "PASSWORD_CHANGED"
	ActionSessionRevoked    AuditAction = "SESSION_REVOKED"
	ActionTokenRefreshed    AuditAction = "TOKEN_REFRESHED"
	ActionAccountDeleted    AuditAction = "ACCOUNT_DELETED"
	ActionPaymentInitiated  AuditAction = "PAYMENT_INITIATED"
	ActionPaymentCompleted  AuditAction = "PAYMENT_COMPLETED"
	ActionPaymentFailed     AuditAction = "PAYMENT_FAILED"
	ActionPaymentCancelled  AuditAction = "PAYMENT_CANCELLED"
)

var auditActions = map[AuditAction]struct{}{
	ActionLogin:             {},
	ActionLogout:            {},
	ActionRegister:          {},
	ActionFailedLogin:       {},
	ActionAccessDenied:      {},
	ActionCreateNote:        {},
	ActionUpdateNote:        {},
	ActionDeleteNote:        {},
	ActionTwoFactorSetup:    {},
	ActionTwoFactorEnabled:  {},
	ActionTwoFactorDisabled: {},
	ActionPasswordChanged:   {},
	ActionSessionRevoked:    {},
	ActionTokenRefreshed:    {},
	ActionAccountDeleted:    {},
	ActionPaymentInitiated:  {},
	ActionPaymentCompleted:  {},
	ActionPaymentFailed:     {},
	ActionPaymentCancelled:  {},
}

// Valid reports whether a belongs to the closed action set.
func (a AuditAction) Valid() bool {
	_, ok := auditActions[a]
	return ok
}

// AuditEvent is one immutable entry of the security ledger. ActorID is nil
// for anonymous actions and for events of deleted accounts.
type AuditEvent struct {
	ID        int64       `json:"id"`
	ActorID   *int64      `json:"actor_id,omitempty"`
	Action    AuditAction `json:"action"`
	IP        string      `json:"ip_address"`
	UserAgent string      `json:"user_agent"`
	Details   string      `json:"details"`
	CreatedAt time.Time   `json:"timestamp"`
}
