// Package workers runs the background jobs of the cache engine.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import "context"

// Worker is a background job.
//
// Run starts the job and returns immediately; the job keeps running in its
// own goroutine until ctx is cancelled or Stop is called. Stop blocks until
// the goroutine has exited and is a no-op for a worker that is not running.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
