// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/secure-notes/internal/adapter"
	"github.com/MKhiriev/secure-notes/internal/config"
	"github.com/MKhiriev/secure-notes/internal/crypto"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/mock"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/models"
)

const testGatewaySecret = "8gBm/:&EnhH.1/q"

type paymentMocks struct {
	payments      *mock.MockPaymentRepository
	security      *mock.MockSecurityRepository
	subscriptions *mock.MockSubscriptionService
	gateway       *mock.MockGatewayClient
	audit         *mock.MockAuditService
	signer        crypto.PaymentSigner
}

func testPaymentConfig() config.Payment {
	return config.Payment{
		SecretKey:      testGatewaySecret,
		ProductCode:    "EPAYTEST",
		FormURL:        "https://gateway.test/form",
		SuccessURL:     "https://notes.test/payment/success",
		FailureURL:     "https://notes.test/payment/failure",
		GatewayTimeout: time.Second,
		BillingCycle:   30 * 24 * time.Hour,
		PendingTTL:     time.Hour,
	}
}

func newTestPaymentSvc(t *testing.T, ctrl *gomock.Controller, cfg config.Payment) (PaymentService, paymentMocks) {
	t.Helper()
	m := paymentMocks{
		payments:      mock.NewMockPaymentRepository(ctrl),
		security:      mock.NewMockSecurityRepository(ctrl),
		subscriptions: mock.NewMockSubscriptionService(ctrl),
		gateway:       mock.NewMockGatewayClient(ctrl),
		audit:         mock.NewMockAuditService(ctrl),
		signer:        crypto.NewPaymentSigner(cfg.SecretKey),
	}
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var gateway adapter.GatewayClient
	if cfg.ConfirmWithGateway {
		gateway = m.gateway
	}

	storages := &store.Storages{Payments: m.payments, Security: m.security}
	svc := NewPaymentService(storages, m.subscriptions, m.signer, gateway, m.audit,
		&sequenceIDs{prefix: "tx"}, cfg, fixedClock(testNow), logger.Nop())
	return svc, m
}

func pendingTx() models.PaymentTransaction {
	return models.PaymentTransaction{
		ID: "tx-1", AccountID: alice.ID, OrderID: "order-1", PlanID: "pro", Tier: models.TierPro,
		Amount: 59900, Currency: "NPR", Status: models.TransactionPending, ProductCode: "EPAYTEST",
	}
}

// signedCallback builds a callback payload signed with secret.
func signedCallback(t *testing.T, secret string, fields map[string]string) map[string]string {
	t.Helper()
	out := map[string]string{
		"transaction_code":   "000AWEO",
		"status":             "COMPLETE",
		"total_amount":       "599.00",
		"transaction_uuid":   "tx-1",
		"product_code":       "EPAYTEST",
		"signed_field_names": "transaction_code,status,total_amount,transaction_uuid,product_code,signed_field_names",
	}
	for k, v := range fields {
		out[k] = v
	}
	sig, err := crypto.NewPaymentSigner(secret).Sign(out, out["signed_field_names"])
	require.NoError(t, err)
	out["signature"] = sig
	return out
}

func TestPaymentService_Initiate(t *testing.T) {
	ctx := context.Background()

	t.Run("signs the form for an upgrade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestPaymentSvc(t, ctrl, testPaymentConfig())

		m.security.EXPECT().GetProfile(gomock.Any(), alice.ID).Return(aliceProfile(), nil)
		m.payments.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx models.PaymentTransaction) (models.PaymentTransaction, error) {
				assert.Equal(t, "tx-1", tx.ID)
				assert.Equal(t, models.TransactionPending, tx.Status)
				assert.Equal(t, models.TierPro, tx.Tier)
				assert.Equal(t, int64(59900), tx.Amount)
				assert.Equal(t, "EPAYTEST", tx.ProductCode)
				return tx, nil
			})

		form, err := svc.Initiate(ctx, alice.ID, models.InitiatePaymentRequest{PlanID: "pro", Amount: 59900, OrderID: "order-1"}, testMeta)
		require.NoError(t, err)

		assert.Equal(t, "tx-1", form.TransactionID)
		assert.Equal(t, "https://gateway.test/form", form.GatewayURL)
		assert.Equal(t, "599.00", form.Fields["total_amount"])
		assert.Equal(t, "total_amount,transaction_uuid,product_code", form.Fields["signed_field_names"])
		assert.Equal(t, form.Signature, form.Fields["signature"])
		assert.True(t, m.signer.Verify(form.Fields), "form must verify with the shared secret")
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			req   models.InitiatePaymentRequest
			field string
		}{
			{name: "unknown plan", req: models.InitiatePaymentRequest{PlanID: "gold", Amount: 1, OrderID: "o"}, field: "plan_id"},
			{name: "amount mismatch", req: models.InitiatePaymentRequest{PlanID: "pro", Amount: 100, OrderID: "o"}, field: "amount"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				svc, _ := newTestPaymentSvc(t, ctrl, testPaymentConfig())

				_, err := svc.Initiate(ctx, alice.ID, tt.req, testMeta)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, tt.field)
			})
		}
	})

	t.Run("no downgrade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestPaymentSvc(t, ctrl, testPaymentConfig())

		profile := aliceProfile()
		profile.Tier = models.TierEnterprise
		m.security.EXPECT().GetProfile(gomock.Any(), alice.ID).Return(profile, nil)

		_, err := svc.Initiate(ctx, alice.ID, models.InitiatePaymentRequest{PlanID: "pro", Amount: 59900, OrderID: "o"}, testMeta)
		assert.ErrorIs(t, err, ErrPolicyViolation)
	})

	t.Run("duplicate order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestPaymentSvc(t, ctrl, testPaymentConfig())

		m.security.EXPECT().GetProfile(gomock.Any(), alice.ID).Return(aliceProfile(), nil)
		m.payments.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(models.PaymentTransaction{}, store.ErrDuplicateOrder)

		_, err := svc.Initiate(ctx, alice.ID, models.InitiatePaymentRequest{PlanID: "pro", Amount: 59900, OrderID: "o"}, testMeta)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "order_id")
	})
}

func TestPaymentService_HandleCallback_Completes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPaymentSvc(t, ctrl, testPaymentConfig())
	tx := pendingTx()

	m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(tx, nil)
	m.subscriptions.EXPECT().Apply(gomock.Any(), tx, "000AWEO", testMeta).Return(nil)

	res, err := svc.HandleCallback(context.Background(), models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, nil)}, testMeta)
	require.NoError(t, err)
	assert.Equal(t, models.CallbackResult{TransactionID: "tx-1", Status: models.TransactionCompleted, Tier: models.TierPro}, res)
}

func TestPaymentService_HandleCallback_Base64Data(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPaymentSvc(t, ctrl, testPaymentConfig())
	tx := pendingTx()

	raw, err := json.Marshal(signedCallback(t, testGatewaySecret, nil))
	require.NoError(t, err)

	m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(tx, nil)
	m.subscriptions.EXPECT().Apply(gomock.Any(), tx, "000AWEO", testMeta).Return(nil)

	res, err := svc.HandleCallback(context.Background(), models.CallbackRequest{
		Data:  base64.StdEncoding.EncodeToString(raw),
		RefID: "000AWEO",
	}, testMeta)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, res.Status)
}

func TestPaymentService_HandleCallback_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     func(t *testing.T) models.CallbackRequest
		setup   func(m paymentMocks)
		wantErr error
	}{
		{
			name: "signed with another secret",
			req: func(t *testing.T) models.CallbackRequest {
				return models.CallbackRequest{Fields: signedCallback(t, "other-secret", nil)}
			},
			wantErr: ErrSignatureInvalid,
		},
		{
			name: "amount changed after signing",
			req: func(t *testing.T) models.CallbackRequest {
				f := signedCallback(t, testGatewaySecret, nil)
				f["total_amount"] = "1.00"
				return models.CallbackRequest{Fields: f}
			},
			wantErr: ErrSignatureInvalid,
		},
		{
			name: "signature does not cover the amount",
			req: func(t *testing.T) models.CallbackRequest {
				return models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, map[string]string{
					"signed_field_names": "transaction_uuid,product_code",
				})}
			},
			wantErr: ErrSignatureInvalid,
		},
		{
			name: "status is not signed",
			req: func(t *testing.T) models.CallbackRequest {
				f := signedCallback(t, testGatewaySecret, map[string]string{
					"signed_field_names": "transaction_code,total_amount,transaction_uuid,product_code,signed_field_names",
				})
				f["status"] = "COMPLETE"
				return models.CallbackRequest{Fields: f}
			},
			wantErr: ErrSignatureInvalid,
		},
		{
			name: "transaction code is not signed",
			req: func(t *testing.T) models.CallbackRequest {
				return models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, map[string]string{
					"signed_field_names": "status,total_amount,transaction_uuid,product_code,signed_field_names",
				})}
			},
			wantErr: ErrSignatureInvalid,
		},
		{
			name: "outgoing form replayed with a status",
			req: func(t *testing.T) models.CallbackRequest {
				f := signedCallback(t, testGatewaySecret, map[string]string{
					"signed_field_names": "total_amount,transaction_uuid,product_code",
				})
				f["status"] = "COMPLETE"
				return models.CallbackRequest{Fields: f, RefID: "FAKE"}
			},
			wantErr: ErrSignatureInvalid,
		},
		{
			name: "unsigned ref id differs from signed code",
			req: func(t *testing.T) models.CallbackRequest {
				return models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, nil), RefID: "FAKE"}
			},
			setup: func(m paymentMocks) {
				m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(pendingTx(), nil)
			},
			wantErr: ErrSignatureInvalid,
		},
		{
			name: "malformed data",
			req: func(t *testing.T) models.CallbackRequest {
				return models.CallbackRequest{Data: "%%%"}
			},
			wantErr: ErrSignatureInvalid,
		},
		{
			name: "empty payload",
			req: func(t *testing.T) models.CallbackRequest {
				return models.CallbackRequest{}
			},
			wantErr: ErrSignatureInvalid,
		},
		{
			name: "unknown transaction",
			req: func(t *testing.T) models.CallbackRequest {
				return models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, nil)}
			},
			setup: func(m paymentMocks) {
				m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(models.PaymentTransaction{}, store.ErrTransactionNotFound)
			},
			wantErr: ErrTransactionNotFound,
		},
		{
			name: "signed amount differs from stored",
			req: func(t *testing.T) models.CallbackRequest {
				return models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, map[string]string{"total_amount": "1999.00"})}
			},
			setup: func(m paymentMocks) {
				m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(pendingTx(), nil)
			},
			wantErr: ErrSignatureInvalid,
		},
		{
			name: "order id mismatch",
			req: func(t *testing.T) models.CallbackRequest {
				return models.CallbackRequest{OrderID: "order-2", Fields: signedCallback(t, testGatewaySecret, nil)}
			},
			setup: func(m paymentMocks) {
				m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(pendingTx(), nil)
			},
			wantErr: ErrTransactionNotFound,
		},
		{
			name: "already completed",
			req: func(t *testing.T) models.CallbackRequest {
				return models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, nil)}
			},
			setup: func(m paymentMocks) {
				tx := pendingTx()
				tx.Status = models.TransactionCompleted
				m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(tx, nil)
			},
			wantErr: ErrAlreadyApplied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestPaymentSvc(t, ctrl, testPaymentConfig())
			if tt.setup != nil {
				tt.setup(m)
			}
			m.subscriptions.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.HandleCallback(context.Background(), tt.req(t), testMeta)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentService_HandleCallback_GatewayReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPaymentSvc(t, ctrl, testPaymentConfig())
	tx := pendingTx()

	m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(tx, nil)
	m.subscriptions.EXPECT().MarkFailed(gomock.Any(), tx, gomock.Any(), testMeta).Return(nil)

	res, err := svc.HandleCallback(context.Background(), models.CallbackRequest{
		Fields: signedCallback(t, testGatewaySecret, map[string]string{"status": "CANCELED"}),
	}, testMeta)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionFailed, res.Status)
}

func TestPaymentService_HandleCallback_MissingRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPaymentSvc(t, ctrl, testPaymentConfig())

	f := signedCallback(t, testGatewaySecret, map[string]string{"transaction_code": ""})

	m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(pendingTx(), nil)

	_, err := svc.HandleCallback(context.Background(), models.CallbackRequest{Fields: f}, testMeta)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "ref_id")
}

func TestPaymentService_HandleCallback_GatewayConfirmation(t *testing.T) {
	cfg := testPaymentConfig()
	cfg.ConfirmWithGateway = true
	query := models.GatewayStatusQuery{ProductCode: "EPAYTEST", TotalAmount: "599.00", TransactionID: "tx-1"}

	t.Run("complete prefers gateway ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestPaymentSvc(t, ctrl, cfg)
		tx := pendingTx()

		m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(tx, nil)
		m.gateway.EXPECT().TransactionStatus(gomock.Any(), query).Return(models.GatewayStatus{Status: "COMPLETE", RefID: "GW-REF"}, nil)
		m.subscriptions.EXPECT().Apply(gomock.Any(), tx, "GW-REF", testMeta).Return(nil)

		_, err := svc.HandleCallback(context.Background(), models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, nil)}, testMeta)
		require.NoError(t, err)
	})

	t.Run("lookup error leaves transaction pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestPaymentSvc(t, ctrl, cfg)

		m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(pendingTx(), nil)
		m.gateway.EXPECT().TransactionStatus(gomock.Any(), query).Return(models.GatewayStatus{}, adapter.ErrBadGateway)
		m.subscriptions.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.HandleCallback(context.Background(), models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, nil)}, testMeta)
		assert.ErrorIs(t, err, ErrGateway)
		assert.ErrorIs(t, err, adapter.ErrBadGateway)
	})

	t.Run("gateway still pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestPaymentSvc(t, ctrl, cfg)

		m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(pendingTx(), nil)
		m.gateway.EXPECT().TransactionStatus(gomock.Any(), query).Return(models.GatewayStatus{Status: "PENDING"}, nil)

		_, err := svc.HandleCallback(context.Background(), models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, nil)}, testMeta)
		assert.ErrorIs(t, err, ErrGateway)
	})

	t.Run("gateway not found marks failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestPaymentSvc(t, ctrl, cfg)
		tx := pendingTx()

		m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(tx, nil)
		m.gateway.EXPECT().TransactionStatus(gomock.Any(), query).Return(models.GatewayStatus{Status: "NOT_FOUND"}, nil)
		m.subscriptions.EXPECT().MarkFailed(gomock.Any(), tx, gomock.Any(), testMeta).Return(nil)

		res, err := svc.HandleCallback(context.Background(), models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, nil)}, testMeta)
		require.NoError(t, err)
		assert.Equal(t, models.TransactionFailed, res.Status)
	})
}

func TestPaymentService_HandleCallback_ApplyRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPaymentSvc(t, ctrl, testPaymentConfig())

	m.payments.EXPECT().FindTransaction(gomock.Any(), "tx-1").Return(pendingTx(), nil)
	m.subscriptions.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.Join(ErrAlreadyApplied, store.ErrTransactionNotPending))

	_, err := svc.HandleCallback(context.Background(), models.CallbackRequest{Fields: signedCallback(t, testGatewaySecret, nil)}, testMeta)
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestPaymentService_InitiatedFormIsNotACallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPaymentSvc(t, ctrl, testPaymentConfig())

	m.security.EXPECT().GetProfile(gomock.Any(), alice.ID).Return(aliceProfile(), nil)
	m.payments.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx models.PaymentTransaction) (models.PaymentTransaction, error) { return tx, nil })
	m.payments.EXPECT().FindTransaction(gomock.Any(), gomock.Any()).Return(pendingTx(), nil).AnyTimes()
	m.subscriptions.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	form, err := svc.Initiate(context.Background(), alice.ID, models.InitiatePaymentRequest{PlanID: "pro", Amount: 59900, OrderID: "order-1"}, testMeta)
	require.NoError(t, err)

	forged := make(map[string]string, len(form.Fields)+1)
	for k, v := range form.Fields {
		forged[k] = v
	}
	forged["status"] = "COMPLETE"

	_, err = svc.HandleCallback(context.Background(), models.CallbackRequest{Fields: forged, RefID: "FAKE"}, testMeta)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestAmountHelpers(t *testing.T) {
	assert.Equal(t, "599.00", formatAmount(59900))
	assert.Equal(t, "0.05", formatAmount(5))
	assert.True(t, amountMatches("599", 59900))
	assert.True(t, amountMatches("599.0", 59900))
	assert.True(t, amountMatches("1,999.00", 199900))
	assert.False(t, amountMatches("599.01", 59900))
	assert.False(t, amountMatches("abc", 59900))
}
