// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/secure-notes/internal/policy"
	"github.com/MKhiriev/secure-notes/internal/service"
	"github.com/MKhiriev/secure-notes/models"
)

var freeSubject = policy.Subject{AccountID: testAccountID, Tier: models.TierFree}

func TestNoteLimit(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorized()
	m.rbac.EXPECT().Subject(gomock.Any(), testAccountID).Return(freeSubject, nil)
	m.rbac.EXPECT().CheckNoteLimit(gomock.Any(), freeSubject).
		Return(models.NoteLimit{Allowed: false, Current: 50, Limit: 50, Tier: models.TierFree}, nil)

	rec := serve(t, h, request{method: http.MethodGet, path: "/api/rbac/notes/limit", token: testToken})

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.NoteLimit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Allowed)
	assert.EqualValues(t, 50, got.Limit)
}

func TestUploadCheck(t *testing.T) {
	t.Run("reported", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()
		m.rbac.EXPECT().Subject(gomock.Any(), testAccountID).Return(freeSubject, nil)
		m.rbac.EXPECT().CheckUploadSize(gomock.Any(), freeSubject, 10.0).
			Return(models.UploadCheck{Allowed: false, SizeMB: 10, LimitMB: 5, Tier: models.TierFree})

		rec := serve(t, h, request{method: http.MethodPost, path: "/api/rbac/uploads/check", token: testToken, body: `{"size_mb":10}`})

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.UploadCheck
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.False(t, got.Allowed)
	})

	t.Run("negative size", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()
		m.rbac.EXPECT().Subject(gomock.Any(), testAccountID).Return(freeSubject, nil)

		rec := serve(t, h, request{method: http.MethodPost, path: "/api/rbac/uploads/check", token: testToken, body: `{"size_mb":-1}`})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTierInfo(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorized()
	m.rbac.EXPECT().Subject(gomock.Any(), testAccountID).Return(freeSubject, nil)
	m.rbac.EXPECT().TierInfo(gomock.Any(), freeSubject).Return(models.TierInfo{Tier: models.TierFree, CanUpgrade: true}, nil)

	rec := serve(t, h, request{method: http.MethodGet, path: "/api/rbac/tier", token: testToken})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"can_upgrade":true`)
}

func TestAudit(t *testing.T) {
	t.Run("own events", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()
		m.audit.EXPECT().ListForActor(gomock.Any(), testAccountID, 10).
			Return([]models.AuditEvent{{ID: 1, Action: models.ActionLogin}}, nil)

		rec := serve(t, h, request{method: http.MethodGet, path: "/api/audit/me?limit=10", token: testToken})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), string(models.ActionLogin))
	})

	t.Run("limit is capped", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()
		m.audit.EXPECT().ListForActor(gomock.Any(), testAccountID, maxAuditLimit).Return(nil, nil)

		rec := serve(t, h, request{method: http.MethodGet, path: "/api/audit/me?limit=100000", token: testToken})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()

		rec := serve(t, h, request{method: http.MethodGet, path: "/api/audit/me?limit=-3", token: testToken})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Fields, "limit")
	})

	t.Run("all events need staff", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.authorized()
		m.rbac.EXPECT().Subject(gomock.Any(), testAccountID).Return(freeSubject, nil)
		m.rbac.EXPECT().Authorize(gomock.Any(), freeSubject, gomock.Any(), gomock.Any()).
			Return(&service.AccessDeniedError{Reason: "Administrator access required"})

		rec := serve(t, h, request{method: http.MethodGet, path: "/api/audit", token: testToken})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("staff lists all", func(t *testing.T) {
		h, m := newTestHandler(t)
		staff := policy.Subject{AccountID: testAccountID, Tier: models.TierFree, IsStaff: true}
		m.authorized()
		m.rbac.EXPECT().Subject(gomock.Any(), testAccountID).Return(staff, nil)
		m.rbac.EXPECT().Authorize(gomock.Any(), staff, gomock.Any(), gomock.Any()).Return(nil)
		m.audit.EXPECT().List(gomock.Any(), defaultAuditLimit).Return([]models.AuditEvent{}, nil)

		rec := serve(t, h, request{method: http.MethodGet, path: "/api/audit", token: testToken})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
