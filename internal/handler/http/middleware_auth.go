// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/policy"
	"github.com/MKhiriev/secure-notes/internal/utils"
)

// auth requires a valid bearer access token whose session is still active.
// The account id and session key are stored in the request context and
// added to the request logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "*Handler.auth")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader, "*Handler.auth")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx = utils.WithAccount(ctx, token.AccountID, token.SessionKey)

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("account_id", token.AccountID)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// guard runs RBAC guards for the authenticated account. It must be mounted
// after auth.
func (h *Handler) guard(guards ...policy.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			accountID, _, err := account(r)
			if err != nil {
				writeError(w, r, err, "*Handler.guard")
				return
			}

			subject, err := h.services.RBACService.Subject(ctx, accountID)
			if err != nil {
				writeError(w, r, err, "*Handler.guard")
				return
			}

			if err = h.services.RBACService.Authorize(ctx, subject, utils.GetClientMetaFromContext(ctx), guards...); err != nil {
				writeError(w, r, err, "*Handler.guard")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// account returns the authenticated account id and session key.
func account(r *http.Request) (int64, string, error) {
	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		return 0, "", ErrNoAccountInContext
	}
	key, _ := utils.GetSessionKeyFromContext(r.Context())
	return accountID, key, nil
}
