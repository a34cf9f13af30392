// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/secure-notes/internal/utils"
)

// withClientMeta stores the request origin used by sessions and audit.
func (h *Handler) withClientMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.WithClientMeta(r.Context(), utils.ClientMetaFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
