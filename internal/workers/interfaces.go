// Package workers runs the background jobs of the photo submission service.
//
// A [Worker] blocks until its context is done. [Workers] starts every
// configured worker and waits for all of them to return.
package workers

import "context"

// Worker is a background job that runs until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// ReasonPurger deletes rejection reasons nobody consumed in time.
type ReasonPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// StatusRefresher re-evaluates a published health status.
type StatusRefresher interface {
	RefreshStatus(ctx context.Context)
}
