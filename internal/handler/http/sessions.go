// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/secure-notes/internal/utils"
)

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	accountID, key, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listSessions")
		return
	}

	sessions, err := h.services.SessionService.List(r.Context(), accountID, key)
	if err != nil {
		writeError(w, r, err, "*Handler.listSessions")
		return
	}

	utils.WriteJSON(w, sessions, http.StatusOK)
}

func (h *Handler) revokeSession(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.revokeSession")
		return
	}

	sessionID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || sessionID <= 0 {
		writeError(w, r, ErrInvalidPathParam, "*Handler.revokeSession")
		return
	}

	if err = h.services.SessionService.Revoke(r.Context(), accountID, sessionID, utils.GetClientMetaFromContext(r.Context())); err != nil {
		writeError(w, r, err, "*Handler.revokeSession")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
