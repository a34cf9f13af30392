// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/service"
	"github.com/MKhiriev/secure-notes/internal/utils"
	"github.com/MKhiriev/secure-notes/internal/validators"
	"github.com/MKhiriev/secure-notes/models"
)

// errorStatusMap is matched top to bottom, so wrapped kinds must come
// before the kind they wrap.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrTwoFactorAlreadyEnabled, http.StatusConflict},

	{service.ErrValidation, http.StatusBadRequest},
	{validators.ErrInvalidRequest, http.StatusBadRequest},
	{validators.ErrUnsupportedType, http.StatusBadRequest},
	{utils.ErrEmptyBody, http.StatusBadRequest},
	{ErrInvalidPathParam, http.StatusBadRequest},

	{service.ErrAuthenticationFailure, http.StatusUnauthorized},
	{service.ErrTwoFactorRequired, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoAccountInContext, http.StatusUnauthorized},
	{service.ErrInvalidTwoFactorToken, http.StatusBadRequest},

	{service.ErrPasswordExpired, http.StatusForbidden},
	{service.ErrLocked, http.StatusLocked},
	{service.ErrPolicyViolation, http.StatusUnprocessableEntity},
	{service.ErrAccessDenied, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},

	{service.ErrSignatureInvalid, http.StatusBadRequest},
	{service.ErrAlreadyApplied, http.StatusConflict},
	{service.ErrTransactionNotFound, http.StatusNotFound},
	{service.ErrGateway, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the JSON body for err. Internal errors are reported
// without detail.
func errorResponse(err error, status int) models.ErrorResponse {
	if status == http.StatusInternalServerError {
		return models.ErrorResponse{Error: http.StatusText(status)}
	}

	resp := models.ErrorResponse{Error: err.Error()}

	var (
		validationErr *service.ValidationError
		fieldErrs     validators.FieldErrors
		policyErr     *service.PolicyViolationError
		lockedErr     *service.LockedError
		deniedErr     *service.AccessDeniedError
	)
	switch {
	case errors.As(err, &validationErr):
		resp.Error = service.ErrValidation.Error()
		resp.Fields = validationErr.Fields
	case errors.As(err, &fieldErrs):
		resp.Error = service.ErrValidation.Error()
		resp.Fields = fieldErrs
	case errors.As(err, &policyErr):
		resp.Error = service.ErrPolicyViolation.Error()
		resp.Reasons = policyErr.Reasons
	case errors.As(err, &lockedErr):
		until := lockedErr.Until.UTC()
		resp.Error = service.ErrLocked.Error()
		resp.LockedUntil = &until
	case errors.As(err, &deniedErr):
		resp.Error = deniedErr.Reason
	case errors.Is(err, service.ErrTwoFactorRequired):
		resp.Error = service.ErrTwoFactorRequired.Error()
		resp.TwoFactorRequired = true
	case errors.Is(err, service.ErrAuthenticationFailure):
		resp.Error = service.ErrAuthenticationFailure.Error()
	}
	return resp
}

// writeError logs err and writes its status and JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, errorResponse(err, status), status)
}

// decode reads the JSON body into dst and validates it. On failure the
// error response is already written and false is returned.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, funcName string) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		if !errors.Is(err, utils.ErrEmptyBody) {
			err = service.NewValidationError("body", "invalid JSON was passed")
		}
		writeError(w, r, err, funcName)
		return false
	}
	if err := h.validator.Validate(r.Context(), dst); err != nil {
		writeError(w, r, err, funcName)
		return false
	}
	return true
}

// message is the body of successful requests that return nothing else.
type message struct {
	Message string `json:"message"`
}
