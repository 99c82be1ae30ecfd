// Package server runs the HTTP and gRPC transports of the photo submission
// service and shuts them down gracefully when the run context ends.
package server
