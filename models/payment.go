// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TransactionStatus is the lifecycle state of a payment transaction.
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "PENDING"
	TransactionProcessing TransactionStatus = "PROCESSING"
	TransactionCompleted  TransactionStatus = "COMPLETED"
	TransactionFailed     TransactionStatus = "FAILED"
	TransactionRefunded   TransactionStatus = "REFUNDED"
	TransactionCancelled  TransactionStatus = "CANCELLED"
)

// SubscriptionStatus is the state of the subscription record.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionInactive  SubscriptionStatus = "INACTIVE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionSuspended SubscriptionStatus = "SUSPENDED"
)

// Plan is a purchasable tier upgrade. Price is in minor units (paisa).
type Plan struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Tier     Tier   `json:"tier"`
	Price    int64  `json:"price"`
	Currency string `json:"currency"`
}

// PaymentTransaction is a gateway payment for a tier upgrade.
type PaymentTransaction struct {
	// ID is the opaque transaction uuid sent to the gateway.
	ID        string `json:"transaction_uuid"`
	AccountID int64  `json:"-"`

	// OrderID is the merchant-side order identifier, unique.
	OrderID string `json:"order_id"`

	// GatewayRefID is the gateway reference set on completion, unique.
	GatewayRefID *string `json:"gateway_ref_id,omitempty"`

	PlanID      string            `json:"plan_id"`
	Tier        Tier              `json:"tier"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Status      TransactionStatus `json:"status"`
	ProductCode string            `json:"product_code"`

	IP        string `json:"-"`
	UserAgent string `json:"-"`

	FailureReason string `json:"failure_reason,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Subscription is the subscription record that mirrors the profile tier.
type Subscription struct {
	AccountID         int64              `json:"-"`
	Tier              Tier               `json:"tier"`
	Status            SubscriptionStatus `json:"status"`
	BillingCycleStart *time.Time         `json:"billing_cycle_start,omitempty"`
	BillingCycleEnd   *time.Time         `json:"billing_cycle_end,omitempty"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// AppliedPayment describes the atomic tier upgrade performed for a verified
// transaction.
type AppliedPayment struct {
	TransactionID     string
	AccountID         int64
	GatewayRefID      string
	Tier              Tier
	CompletedAt       time.Time
	BillingCycleStart time.Time
	BillingCycleEnd   time.Time
}

// PaymentForm is what the client posts to the gateway's form endpoint.
type PaymentForm struct {
	TransactionID string            `json:"transaction_uuid"`
	GatewayURL    string            `json:"gateway_url"`
	Fields        map[string]string `json:"form_fields"`
	Signature     string            `json:"signature"`
}

// CallbackResult is returned after a callback was verified and applied.
type CallbackResult struct {
	TransactionID string            `json:"transaction_uuid"`
	Status        TransactionStatus `json:"status"`
	Tier          Tier              `json:"tier"`
}

// PaymentStatus summarizes the billing state of an account.
type PaymentStatus struct {
	Tier              Tier                `json:"tier"`
	Subscription      *Subscription       `json:"subscription,omitempty"`
	LatestTransaction *PaymentTransaction `json:"latest_transaction,omitempty"`
}

// GatewayStatusQuery identifies a transaction at the gateway status API.
type GatewayStatusQuery struct {
	ProductCode   string
	TotalAmount   string
	TransactionID string
}

// GatewayStatus is the gateway's view of a transaction. Status is the
// gateway vocabulary ("COMPLETE", "PENDING", "NOT_FOUND", ...), not a
// [TransactionStatus].
type GatewayStatus struct {
	ProductCode   string `json:"product_code"`
	TransactionID string `json:"transaction_uuid"`
	TotalAmount   string `json:"total_amount"`
	Status        string `json:"status"`
	RefID         string `json:"ref_id"`
}

// GatewayStatusComplete is the gateway status of a settled payment.
const GatewayStatusComplete = "COMPLETE"
