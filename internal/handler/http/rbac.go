// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/secure-notes/internal/policy"
	"github.com/MKhiriev/secure-notes/internal/utils"
	"github.com/MKhiriev/secure-notes/models"
)

func (h *Handler) subject(w http.ResponseWriter, r *http.Request, funcName string) (policy.Subject, bool) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, funcName)
		return policy.Subject{}, false
	}

	subject, err := h.services.RBACService.Subject(r.Context(), accountID)
	if err != nil {
		writeError(w, r, err, funcName)
		return policy.Subject{}, false
	}
	return subject, true
}

func (h *Handler) noteLimit(w http.ResponseWriter, r *http.Request) {
	subject, ok := h.subject(w, r, "*Handler.noteLimit")
	if !ok {
		return
	}

	limit, err := h.services.RBACService.CheckNoteLimit(r.Context(), subject)
	if err != nil {
		writeError(w, r, err, "*Handler.noteLimit")
		return
	}

	utils.WriteJSON(w, limit, http.StatusOK)
}

func (h *Handler) uploadCheck(w http.ResponseWriter, r *http.Request) {
	subject, ok := h.subject(w, r, "*Handler.uploadCheck")
	if !ok {
		return
	}

	var req models.UploadCheckRequest
	if !h.decode(w, r, &req, "*Handler.uploadCheck") {
		return
	}

	utils.WriteJSON(w, h.services.RBACService.CheckUploadSize(r.Context(), subject, req.SizeMB), http.StatusOK)
}

func (h *Handler) tierInfo(w http.ResponseWriter, r *http.Request) {
	subject, ok := h.subject(w, r, "*Handler.tierInfo")
	if !ok {
		return
	}

	info, err := h.services.RBACService.TierInfo(r.Context(), subject)
	if err != nil {
		writeError(w, r, err, "*Handler.tierInfo")
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

// apiAccess is mounted behind the API access guard; reaching it means the
// caller may use the API.
func (h *Handler) apiAccess(w http.ResponseWriter, r *http.Request) {
	subject, ok := h.subject(w, r, "*Handler.apiAccess")
	if !ok {
		return
	}

	utils.WriteJSON(w, struct {
		APIAccess bool        `json:"api_access"`
		Tier      models.Tier `json:"tier"`
	}{true, subject.Tier}, http.StatusOK)
}
