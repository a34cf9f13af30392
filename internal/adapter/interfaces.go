// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to third-party services on behalf of the service
// layer.
//
// The only outbound dependency is the payment gateway's transaction status
// API ([GatewayClient]), used to confirm a signed callback before a payment
// is applied. HTTP status codes are mapped to the sentinel errors in
// errors.go by mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/secure-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GatewayClient looks up transactions at the payment gateway.
type GatewayClient interface {
	// TransactionStatus asks the gateway for the state of the transaction
	// identified by q. The call is bounded by the client timeout and by ctx.
	TransactionStatus(ctx context.Context, q models.GatewayStatusQuery) (models.GatewayStatus, error)
}
