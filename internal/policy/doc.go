// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy holds the pure account-security rules of secure-notes.
//
// Nothing in this package touches storage or the clock on its own: every
// function receives the state it judges (a [models.SecurityProfile], a tier,
// a password) and the current instant from the caller. The service layer
// loads state, asks policy for a verdict and persists the outcome.
//
// Contents:
//   - lockout: when failed attempts lock an account and when a lock lapses;
//   - password: complexity, expiry and the advisory strength score;
//   - rbac: the static tier table, role predicates and request guards;
//   - transaction: the allowed payment status transitions.
package policy
