// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the periodic maintenance jobs of the server:
// deactivating expired sessions and cancelling stale PENDING payments.
package workers

import "context"

// Worker is a background job that runs until Stop is called or the context
// passed to Start is cancelled.
type Worker interface {
	// Start launches the job. Calling Start on a running job restarts it.
	Start(ctx context.Context)

	// Stop cancels the job and waits for it to exit. It is a no-op when the
	// job is not running.
	Stop()
}
