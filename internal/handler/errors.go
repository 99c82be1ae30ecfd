// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var errNoTransports = errors.New("no transport handlers: set an HTTP or gRPC address")
