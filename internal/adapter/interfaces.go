// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for consulting the
// content-classification service that screens uploaded photos.
//
// Only the classifier's availability matters to the upload pipeline: when it
// cannot be reached, uploads are disabled. Two implementations exist, an
// HTTP one that probes GET /health through resty ([NewHTTPClassifierAdapter])
// and a gRPC one that calls the standard grpc.health.v1 service
// ([NewGRPCClassifierAdapter]). [NewClassifierAdapter] picks one from config.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/classifier_adapter_mock.go -package=mock

// ClassifierAdapter reports whether the content-classification service can
// currently accept work.
type ClassifierAdapter interface {
	// Available returns false on any transport error, timeout or unhealthy
	// status. It never returns an error.
	Available(ctx context.Context) bool

	// Close releases transport resources.
	Close() error
}
