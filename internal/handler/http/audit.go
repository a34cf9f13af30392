// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/secure-notes/internal/service"
	"github.com/MKhiriev/secure-notes/internal/utils"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// limitParam reads the "limit" query parameter.
func limitParam(r *http.Request, def, upper int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, service.NewValidationError("limit", "must be a positive integer")
	}
	return min(n, upper), nil
}

func (h *Handler) myAudit(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.myAudit")
		return
	}

	limit, err := limitParam(r, defaultAuditLimit, maxAuditLimit)
	if err != nil {
		writeError(w, r, err, "*Handler.myAudit")
		return
	}

	events, err := h.services.AuditService.ListForActor(r.Context(), accountID, limit)
	if err != nil {
		writeError(w, r, err, "*Handler.myAudit")
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

// allAudit lists every event; mounted behind the admin guard.
func (h *Handler) allAudit(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, defaultAuditLimit, maxAuditLimit)
	if err != nil {
		writeError(w, r, err, "*Handler.allAudit")
		return
	}

	events, err := h.services.AuditService.List(r.Context(), limit)
	if err != nil {
		writeError(w, r, err, "*Handler.allAudit")
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}
