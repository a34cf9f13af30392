// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/secure-notes/internal/service"
	"github.com/MKhiriev/secure-notes/models"
)

func TestPlans(t *testing.T) {
	h, m := newTestHandler(t)
	m.subscriptions.EXPECT().Plans().Return([]models.Plan{{ID: "pro", Tier: models.TierPro, Price: 59900, Currency: "NPR"}})

	rec := serve(t, h, request{method: http.MethodGet, path: "/api/payments/plans"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":59900`)
}

func TestInitiatePayment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()
		want := models.InitiatePaymentRequest{PlanID: "pro", Amount: 59900, OrderID: "order-1"}
		m.payments.EXPECT().Initiate(gomock.Any(), testAccountID, want, testMeta).Return(models.PaymentForm{
			TransactionID: "tx-1",
			GatewayURL:    "https://rc-epay.esewa.com.np/api/epay/main/v2/form",
			Fields:        map[string]string{"total_amount": "599.00"},
			Signature:     "sig",
		}, nil)

		rec := serve(t, h, request{
			method: http.MethodPost, path: "/api/payments/initiate", token: testToken,
			body: `{"plan_id":"pro","amount":59900,"order_id":"order-1"}`,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var got models.PaymentForm
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "tx-1", got.TransactionID)
		assert.Equal(t, "599.00", got.Fields["total_amount"])
	})

	t.Run("unknown plan is rejected before the service", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()

		rec := serve(t, h, request{
			method: http.MethodPost, path: "/api/payments/initiate", token: testToken,
			body: `{"plan_id":"gold","amount":1,"order_id":"order-1"}`,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Fields, "plan_id")
	})

	t.Run("amount mismatch", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()
		m.payments.EXPECT().Initiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.PaymentForm{}, service.NewValidationError("amount", "does not match the plan price"))

		rec := serve(t, h, request{
			method: http.MethodPost, path: "/api/payments/initiate", token: testToken,
			body: `{"plan_id":"pro","amount":100,"order_id":"order-1"}`,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("requires auth", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(t, h, request{method: http.MethodPost, path: "/api/payments/initiate", body: `{}`})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPaymentCallback(t *testing.T) {
	t.Run("redirect with data envelope", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.payments.EXPECT().HandleCallback(gomock.Any(), models.CallbackRequest{
			Data: "eyJzdGF0dXMiOiJDT01QTEVURSJ9", RefID: "REF-1", OrderID: "order-1",
		}, testMeta).Return(models.CallbackResult{TransactionID: "tx-1", Status: models.TransactionCompleted, Tier: models.TierPro}, nil)

		rec := serve(t, h, request{
			method: http.MethodGet,
			path:   "/api/payments/callback?data=eyJzdGF0dXMiOiJDT01QTEVURSJ9&refId=REF-1&oid=order-1",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.CallbackResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, models.TierPro, got.Tier)
	})

	t.Run("form post without envelope", func(t *testing.T) {
		h, m := newTestHandler(t)
		form := url.Values{
			"transaction_uuid":   {"tx-1"},
			"total_amount":       {"599.00"},
			"signed_field_names": {"transaction_uuid,total_amount"},
			"signature":          {"sig"},
			"ref_id":             {"REF-9"},
		}
		m.payments.EXPECT().HandleCallback(gomock.Any(), models.CallbackRequest{
			RefID: "REF-9",
			Fields: map[string]string{
				"transaction_uuid":   "tx-1",
				"total_amount":       "599.00",
				"signed_field_names": "transaction_uuid,total_amount",
				"signature":          "sig",
			},
		}, testMeta).Return(models.CallbackResult{TransactionID: "tx-1", Status: models.TransactionCompleted}, nil)

		rec := serve(t, h, request{
			method: http.MethodPost, path: "/api/payments/callback",
			body:   form.Encode(),
			header: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("json post", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.payments.EXPECT().HandleCallback(gomock.Any(), models.CallbackRequest{Data: "abc", OrderID: "order-1"}, testMeta).
			Return(models.CallbackResult{}, service.ErrSignatureInvalid)

		rec := serve(t, h, request{method: http.MethodPost, path: "/api/payments/callback", body: `{"data":"abc","order_id":"order-1"}`})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown transaction", err: service.ErrTransactionNotFound, wantStatus: http.StatusNotFound},
		{name: "replayed callback", err: service.ErrAlreadyApplied, wantStatus: http.StatusConflict},
		{name: "gateway unreachable", err: service.ErrGateway, wantStatus: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.payments.EXPECT().HandleCallback(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.CallbackResult{}, tt.err)

			rec := serve(t, h, request{method: http.MethodGet, path: "/api/payments/callback?data=abc"})

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPaymentStatusAndHistory(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()
		m.subscriptions.EXPECT().Status(gomock.Any(), testAccountID).Return(models.PaymentStatus{Tier: models.TierFree}, nil)

		rec := serve(t, h, request{method: http.MethodGet, path: "/api/payments/status", token: testToken})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"tier":"FREE"}`, rec.Body.String())
	})

	t.Run("transactions", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()
		m.subscriptions.EXPECT().Transactions(gomock.Any(), testAccountID, defaultTransactionLimit).
			Return([]models.PaymentTransaction{{ID: "tx-1", Status: models.TransactionPending}}, nil)

		rec := serve(t, h, request{method: http.MethodGet, path: "/api/payments/transactions", token: testToken})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"transaction_uuid":"tx-1"`)
	})
}

func TestCancelPayment(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "cancelled", wantStatus: http.StatusOK},
		{name: "not owned", err: service.ErrTransactionNotFound, wantStatus: http.StatusNotFound},
		{name: "already settled", err: &service.PolicyViolationError{Reasons: []string{"only pending payments can be cancelled"}}, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.authorized()
			m.subscriptions.EXPECT().Cancel(gomock.Any(), testAccountID, "tx-1", testMeta).Return(tt.err)

			rec := serve(t, h, request{method: http.MethodPost, path: "/api/payments/tx-1/cancel", token: testToken})

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
