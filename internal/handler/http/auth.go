// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/secure-notes/internal/utils"
	"github.com/MKhiriev/secure-notes/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decode(w, r, &req, "*Handler.register") {
		return
	}

	account, err := h.services.AuthService.Register(r.Context(), req, utils.GetClientMetaFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	utils.WriteJSON(w, account, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decode(w, r, &req, "*Handler.login") {
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req, utils.GetClientMetaFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	w.Header().Set("Authorization", "Bearer "+result.Tokens.Access)
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if !h.decode(w, r, &req, "*Handler.refresh") {
		return
	}

	tokens, err := h.services.AuthService.Refresh(r.Context(), req.Refresh, utils.GetClientMetaFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "*Handler.refresh")
		return
	}

	utils.WriteJSON(w, tokens, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	accountID, key, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.logout")
		return
	}

	if err = h.services.AuthService.Logout(r.Context(), accountID, key, utils.GetClientMetaFromContext(r.Context())); err != nil {
		writeError(w, r, err, "*Handler.logout")
		return
	}

	utils.WriteJSON(w, message{"Logged out successfully"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.me")
		return
	}

	profile, err := h.services.AuthService.Me(r.Context(), accountID)
	if err != nil {
		writeError(w, r, err, "*Handler.me")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.changePassword")
		return
	}

	var req models.ChangePasswordRequest
	if !h.decode(w, r, &req, "*Handler.changePassword") {
		return
	}

	err = h.services.CredentialService.ChangePassword(r.Context(), accountID, req.OldPassword, req.NewPassword,
		utils.GetClientMetaFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "*Handler.changePassword")
		return
	}

	utils.WriteJSON(w, message{"Password changed successfully"}, http.StatusOK)
}

func (h *Handler) passwordStrength(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordStrengthRequest
	if !h.decode(w, r, &req, "*Handler.passwordStrength") {
		return
	}

	utils.WriteJSON(w, h.services.CredentialService.CheckStrength(req.Password), http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteAccount")
		return
	}

	var req models.DeleteAccountRequest
	if !h.decode(w, r, &req, "*Handler.deleteAccount") {
		return
	}

	err = h.services.AuthService.DeleteAccount(r.Context(), accountID, req.Password, utils.GetClientMetaFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "*Handler.deleteAccount")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
