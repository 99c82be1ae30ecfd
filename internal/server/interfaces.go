package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves requests until ctx is done, then shuts down.
	RunServer(ctx context.Context)

	// Shutdown stops the server and frees associated resources.
	Shutdown()
}
