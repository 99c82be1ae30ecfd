// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries a
	// scheme but no token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrParsingForm is logged when the submit request is not a readable
	// multipart form.
	ErrParsingForm = errors.New("error parsing submission form")

	// ErrUploadTooLarge is logged when the submit body exceeds the
	// configured maximum upload size.
	ErrUploadTooLarge = errors.New("submission exceeds maximum upload size")
)
