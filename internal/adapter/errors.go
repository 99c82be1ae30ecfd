package adapter

import "errors"

var (
	// ErrNotConfigured is returned when neither classifier address is set.
	ErrNotConfigured = errors.New("classifier address is not configured")

	// ErrClassifierDegraded means the classifier answered its health probe
	// with 503: it is up but not accepting work.
	ErrClassifierDegraded = errors.New("classifier is degraded")
	// ErrHealthEndpointMissing means the configured base URL does not serve
	// the health path, usually a wrong address.
	ErrHealthEndpointMissing = errors.New("classifier health endpoint not found")
	// ErrUnexpectedStatus covers every other non-2xx probe answer.
	ErrUnexpectedStatus = errors.New("unexpected classifier status")
)
