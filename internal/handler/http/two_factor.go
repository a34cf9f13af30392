// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/secure-notes/internal/utils"
	"github.com/MKhiriev/secure-notes/models"
)

// setupTwoFactor starts enrollment for {"enable": true} and disables 2FA
// for {"enable": false}.
func (h *Handler) setupTwoFactor(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.setupTwoFactor")
		return
	}

	var req models.TwoFactorSetupRequest
	if !h.decode(w, r, &req, "*Handler.setupTwoFactor") {
		return
	}

	setup, err := h.services.TwoFactorService.Setup(r.Context(), accountID, *req.Enable, utils.GetClientMetaFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "*Handler.setupTwoFactor")
		return
	}

	utils.WriteJSON(w, setup, http.StatusOK)
}

func (h *Handler) verifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.verifyTwoFactor")
		return
	}

	var req models.TwoFactorVerifyRequest
	if !h.decode(w, r, &req, "*Handler.verifyTwoFactor") {
		return
	}

	if err = h.services.TwoFactorService.Verify(r.Context(), accountID, req.Token, utils.GetClientMetaFromContext(r.Context())); err != nil {
		writeError(w, r, err, "*Handler.verifyTwoFactor")
		return
	}

	utils.WriteJSON(w, models.TwoFactorSetup{Enabled: true}, http.StatusOK)
}
