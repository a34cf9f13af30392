// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/secure-notes/internal/policy"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP, middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withClientMeta)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
		r.Post("/api/auth/password/strength", h.passwordStrength)

		r.Get("/api/payments/plans", h.plans)
		r.Get("/api/payments/callback", h.paymentCallback)
		r.Post("/api/payments/callback", h.paymentCallback)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.me)
		r.Post("/api/auth/password", h.changePassword)
		r.Delete("/api/auth/account", h.deleteAccount)
		r.Post("/api/auth/2fa/setup", h.setupTwoFactor)
		r.Post("/api/auth/2fa/verify", h.verifyTwoFactor)

		r.Get("/api/sessions", h.listSessions)
		r.Delete("/api/sessions/{id}", h.revokeSession)

		r.Get("/api/rbac/notes/limit", h.noteLimit)
		r.Post("/api/rbac/uploads/check", h.uploadCheck)
		r.Get("/api/rbac/tier", h.tierInfo)
		r.With(h.guard(policy.RequireAPIAccess())).Get("/api/rbac/api-access", h.apiAccess)

		r.Get("/api/audit/me", h.myAudit)
		r.With(h.guard(policy.RequireAdmin())).Get("/api/audit", h.allAudit)

		r.Post("/api/payments/initiate", h.initiatePayment)
		r.Get("/api/payments/status", h.paymentStatus)
		r.Get("/api/payments/transactions", h.transactions)
		r.Post("/api/payments/{id}/cancel", h.cancelPayment)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
