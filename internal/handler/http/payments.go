// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/secure-notes/internal/service"
	"github.com/MKhiriev/secure-notes/internal/utils"
	"github.com/MKhiriev/secure-notes/models"
)

const defaultTransactionLimit = 20

func (h *Handler) plans(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.SubscriptionService.Plans(), http.StatusOK)
}

func (h *Handler) initiatePayment(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.initiatePayment")
		return
	}

	var req models.InitiatePaymentRequest
	if !h.decode(w, r, &req, "*Handler.initiatePayment") {
		return
	}

	form, err := h.services.PaymentService.Initiate(r.Context(), accountID, req, utils.GetClientMetaFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "*Handler.initiatePayment")
		return
	}

	utils.WriteJSON(w, form, http.StatusCreated)
}

// paymentCallback is the public return URL of the gateway. The gateway
// redirects with ?data=<base64 json>; JSON and form posts are accepted as
// well.
func (h *Handler) paymentCallback(w http.ResponseWriter, r *http.Request) {
	req, err := callbackRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.paymentCallback")
		return
	}

	result, err := h.services.PaymentService.HandleCallback(r.Context(), req, utils.GetClientMetaFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "*Handler.paymentCallback")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func callbackRequest(r *http.Request) (models.CallbackRequest, error) {
	if r.Method == http.MethodGet {
		return callbackFromValues(r.URL.Query()), nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req models.CallbackRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			return models.CallbackRequest{}, service.NewValidationError("body", "invalid JSON was passed")
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return models.CallbackRequest{}, service.NewValidationError("body", "invalid form was passed")
	}
	return callbackFromValues(r.Form), nil
}

// callbackFromValues maps redirect parameters. Without a data envelope the
// remaining parameters are treated as the signed fields.
func callbackFromValues(v url.Values) models.CallbackRequest {
	req := models.CallbackRequest{
		Data:    v.Get("data"),
		RefID:   firstValue(v, "refId", "ref_id"),
		OrderID: firstValue(v, "oid", "order_id"),
	}
	if req.Data != "" {
		return req
	}

	req.Fields = make(map[string]string, len(v))
	for k := range v {
		switch k {
		case "refId", "ref_id", "oid", "order_id":
			continue
		}
		req.Fields[k] = v.Get(k)
	}
	return req
}

func firstValue(v url.Values, keys ...string) string {
	for _, k := range keys {
		if s := v.Get(k); s != "" {
			return s
		}
	}
	return ""
}

func (h *Handler) paymentStatus(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.paymentStatus")
		return
	}

	status, err := h.services.SubscriptionService.Status(r.Context(), accountID)
	if err != nil {
		writeError(w, r, err, "*Handler.paymentStatus")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.transactions")
		return
	}

	limit, err := limitParam(r, defaultTransactionLimit, maxAuditLimit)
	if err != nil {
		writeError(w, r, err, "*Handler.transactions")
		return
	}

	txs, err := h.services.SubscriptionService.Transactions(r.Context(), accountID, limit)
	if err != nil {
		writeError(w, r, err, "*Handler.transactions")
		return
	}

	utils.WriteJSON(w, txs, http.StatusOK)
}

func (h *Handler) cancelPayment(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := account(r)
	if err != nil {
		writeError(w, r, err, "*Handler.cancelPayment")
		return
	}

	transactionID := chi.URLParam(r, "id")
	if transactionID == "" {
		writeError(w, r, ErrInvalidPathParam, "*Handler.cancelPayment")
		return
	}

	err = h.services.SubscriptionService.Cancel(r.Context(), accountID, transactionID, utils.GetClientMetaFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "*Handler.cancelPayment")
		return
	}

	utils.WriteJSON(w, message{"Payment cancelled"}, http.StatusOK)
}
