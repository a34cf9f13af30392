// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"time"

	"github.com/MKhiriev/secure-notes/models"
)

// Lockout is the brute-force policy: Threshold consecutive failures lock an
// account for Cooloff.
type Lockout struct {
	Threshold int
	Cooloff   time.Duration
}

// LockStatus is the verdict of [Lockout.Check].
type LockStatus int

const (
	// Unlocked means logins are accepted.
	Unlocked LockStatus = iota
	// Locked means the account is inside its cooloff window.
	Locked
	// LockLapsed means a lock was recorded but its window has passed; the
	// caller must clear the lock and the counter before proceeding.
	LockLapsed
)

// Check evaluates the lock state of p at now.
func (l Lockout) Check(p models.SecurityProfile, now time.Time) LockStatus {
	if p.LockedUntil == nil {
		return Unlocked
	}
	if p.LockedUntil.After(now) {
		return Locked
	}
	return LockLapsed
}

// Deadline returns the instant a lock placed at now expires.
func (l Lockout) Deadline(now time.Time) time.Time {
	return now.Add(l.Cooloff)
}

// ReachesThreshold reports whether attempts consecutive failures lock the
// account.
func (l Lockout) ReachesThreshold(attempts int) bool {
	return attempts >= l.Threshold
}
