// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/secure-notes/internal/config"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/models"
)

func newTestClient(t *testing.T, serverURL string, timeout time.Duration) GatewayClient {
	t.Helper()

	c, err := NewEsewaClient(config.Payment{StatusURL: serverURL + "/api/epay/transaction/status/", GatewayTimeout: timeout}, logger.Nop())
	require.NoError(t, err)
	return c
}

var query = models.GatewayStatusQuery{
	ProductCode:   "EPAYTEST",
	TotalAmount:   "599.00",
	TransactionID: "0195a7c0-tx",
}

func TestNewEsewaClient_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "rc.esewa.com.np/status", "://bad"} {
		_, err := NewEsewaClient(config.Payment{StatusURL: raw}, logger.Nop())
		assert.Error(t, err, raw)
	}
}

func TestTransactionStatus_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/epay/transaction/status/", r.URL.Path)
		assert.Equal(t, "EPAYTEST", r.URL.Query().Get("product_code"))
		assert.Equal(t, "599.00", r.URL.Query().Get("total_amount"))
		assert.Equal(t, "0195a7c0-tx", r.URL.Query().Get("transaction_uuid"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"product_code":"EPAYTEST","transaction_uuid":"0195a7c0-tx","total_amount":599.0,"status":"COMPLETE","ref_id":"0007G36"}`))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL, time.Second).TransactionStatus(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, models.GatewayStatus{
		ProductCode:   "EPAYTEST",
		TransactionID: "0195a7c0-tx",
		TotalAmount:   "599.00",
		Status:        models.GatewayStatusComplete,
		RefID:         "0007G36",
	}, got)
}

func TestTransactionStatus_PendingWithoutRef(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"product_code":"EPAYTEST","transaction_uuid":"0195a7c0-tx","total_amount":"599","status":"PENDING","ref_id":null}`))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL, time.Second).TransactionStatus(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, "PENDING", got.Status)
	assert.Equal(t, "599.00", got.TotalAmount)
	assert.Empty(t, got.RefID)
}

func TestTransactionStatus_MismatchedTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"transaction_uuid":"someone-else","total_amount":599,"status":"COMPLETE"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, time.Second).TransactionStatus(context.Background(), query)

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestTransactionStatus_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, time.Second).TransactionStatus(context.Background(), query)

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestTransactionStatus_HTTPErrors(t *testing.T) {
	tests := []struct {
		status int
		target error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrBadGateway},
		{http.StatusTeapot, ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error_message":"nope"}`))
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL, time.Second).TransactionStatus(context.Background(), query)

			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestTransactionStatus_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := newTestClient(t, srv.URL, 50*time.Millisecond).TransactionStatus(context.Background(), query)

	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestTransactionStatus_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, srv.URL, time.Second).TransactionStatus(ctx, query)

	assert.ErrorIs(t, err, ErrRequestFailed)
}
