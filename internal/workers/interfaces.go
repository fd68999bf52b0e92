// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs for the lifetime of an
// interactive session.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; the job runs until ctx is cancelled or Stop is
// called. Stop blocks until the job has exited and is safe to call on a job
// that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
