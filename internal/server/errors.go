package server

import "errors"

// errNoListeners means the configuration left both the HTTP and the gRPC
// address empty, so the gate would accept uploads from nowhere.
var errNoListeners = errors.New("neither HTTP nor gRPC listener is configured")
