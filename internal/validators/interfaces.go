// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks submission forms and stored photos.
//
// Each failure is a sentinel from errors.go and [ReasonOf] maps it to the
// one [models.RejectionReason] shown to the submitter. Fields are checked
// in order and the first failure wins, so a validator's default field
// order is its reporting priority.
package validators

import "context"

// Validator checks v. When fields are given only those are checked, in
// that order.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
