// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/mock"
	"github.com/MKhiriev/secure-notes/internal/service"
	"github.com/MKhiriev/secure-notes/internal/validators"
	"github.com/MKhiriev/secure-notes/models"
)

const (
	testToken      = "good-token"
	testAccountID  = int64(7)
	testSessionKey = "sess-1"
	testRemoteIP   = "192.0.2.10"
)

var testMeta = models.ClientMeta{IP: testRemoteIP, UserAgent: "handler-test"}

type handlerMocks struct {
	auth          *mock.MockAuthService
	credentials   *mock.MockCredentialService
	twoFactor     *mock.MockTwoFactorService
	rbac          *mock.MockRBACService
	audit         *mock.MockAuditService
	sessions      *mock.MockSessionService
	subscriptions *mock.MockSubscriptionService
	payments      *mock.MockPaymentService
	appInfo       *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		auth:          mock.NewMockAuthService(ctrl),
		credentials:   mock.NewMockCredentialService(ctrl),
		twoFactor:     mock.NewMockTwoFactorService(ctrl),
		rbac:          mock.NewMockRBACService(ctrl),
		audit:         mock.NewMockAuditService(ctrl),
		sessions:      mock.NewMockSessionService(ctrl),
		subscriptions: mock.NewMockSubscriptionService(ctrl),
		payments:      mock.NewMockPaymentService(ctrl),
		appInfo:       mock.NewMockAppInfoService(ctrl),
	}
	svcs := &service.Services{
		AuthService:         m.auth,
		CredentialService:   m.credentials,
		TwoFactorService:    m.twoFactor,
		RBACService:         m.rbac,
		AuditService:        m.audit,
		SessionService:      m.sessions,
		SubscriptionService: m.subscriptions,
		PaymentService:      m.payments,
		AppInfoService:      m.appInfo,
	}
	return NewHandler(svcs, validators.NewRequestValidator(), logger.Nop()), m
}

// authorized makes the auth middleware accept testToken.
func (m handlerMocks) authorized() {
	m.auth.EXPECT().ParseAccessToken(gomock.Any(), testToken).
		Return(models.Token{AccountID: testAccountID, SessionKey: testSessionKey}, nil)
}

type request struct {
	method string
	path   string
	body   string
	token  string
	header map[string]string
}

func serve(t *testing.T, h *Handler, req request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if req.body != "" {
		body = strings.NewReader(req.body)
	}
	r := httptest.NewRequest(req.method, req.path, body)
	r.RemoteAddr = testRemoteIP + ":40000"
	r.Header.Set("User-Agent", testMeta.UserAgent)
	if req.body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		r.Header.Set("Authorization", "Bearer "+req.token)
	}
	for k, v := range req.header {
		r.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, r)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	v := validators.NewRequestValidator()
	log := logger.Nop()

	h := NewHandler(svcs, v, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, v, h.validator)
	assert.Same(t, log, h.logger)
}

func TestVersion(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rec := serve(t, h, request{method: http.MethodGet, path: "/api/version"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.4.0", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}
