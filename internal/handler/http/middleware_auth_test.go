// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/secure-notes/internal/policy"
	"github.com/MKhiriev/secure-notes/internal/service"
	"github.com/MKhiriev/secure-notes/internal/utils"
	"github.com/MKhiriev/secure-notes/models"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "revoked session", header: "Bearer " + testToken, parseErr: service.ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{name: "accepted", header: "Bearer " + testToken, wantStatus: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.header == "Bearer "+testToken {
				m.auth.EXPECT().ParseAccessToken(gomock.Any(), testToken).
					Return(models.Token{AccountID: testAccountID, SessionKey: testSessionKey}, tt.parseErr)
			}

			var gotID int64
			var gotKey string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, _ = utils.GetAccountIDFromContext(r.Context())
				gotKey, _ = utils.GetSessionKeyFromContext(r.Context())
				w.WriteHeader(http.StatusTeapot)
			})

			r := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, r)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusTeapot {
				assert.Equal(t, testAccountID, gotID)
				assert.Equal(t, testSessionKey, gotKey)
			}
		})
	}
}

func TestGuardMiddleware(t *testing.T) {
	subject := policy.Subject{AccountID: testAccountID, Tier: models.TierFree}

	t.Run("denied with reason", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()
		m.rbac.EXPECT().Subject(gomock.Any(), testAccountID).Return(subject, nil)
		m.rbac.EXPECT().Authorize(gomock.Any(), subject, testMeta, gomock.Any()).
			Return(&service.AccessDeniedError{Reason: "API access requires PRO or ENTERPRISE subscription"})

		rec := serve(t, h, request{method: http.MethodGet, path: "/api/rbac/api-access", token: testToken})

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "API access requires PRO or ENTERPRISE subscription", decodeError(t, rec).Error)
	})

	t.Run("allowed", func(t *testing.T) {
		h, m := newTestHandler(t)
		pro := policy.Subject{AccountID: testAccountID, Tier: models.TierPro}
		m.authorized()
		m.rbac.EXPECT().Subject(gomock.Any(), testAccountID).Return(pro, nil).Times(2)
		m.rbac.EXPECT().Authorize(gomock.Any(), pro, testMeta, gomock.Any()).Return(nil)

		rec := serve(t, h, request{method: http.MethodGet, path: "/api/rbac/api-access", token: testToken})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"api_access":true,"tier":"PRO"}`, rec.Body.String())
	})

	t.Run("without auth context", func(t *testing.T) {
		h, _ := newTestHandler(t)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next must not run")
		})

		rec := httptest.NewRecorder()
		h.guard(policy.RequireAdmin())(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
