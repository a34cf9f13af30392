// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the REST transport of the note-store security core.
//
// Requests pass through trace id, access logging and client metadata
// middlewares. Authenticated routes additionally require a bearer access
// token whose session is still active, and guarded routes run RBAC guards
// before the handler. Service error kinds are translated to status codes in
// errors_mapper.go.
package http
