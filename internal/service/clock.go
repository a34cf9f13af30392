// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "time"

// Clock returns the current instant.
type Clock func() time.Time

// SystemClock is UTC wall time truncated to microseconds, the resolution of
// both supported databases.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
