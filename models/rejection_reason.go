// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RejectionReason is a token naming exactly one admission or validation
// failure. The zero value ReasonNone means "no specific reason".
type RejectionReason string

const (
	ReasonNone RejectionReason = ""

	ReasonNoFileUploaded             RejectionReason = "no-file-uploaded"
	ReasonTooManyFiles               RejectionReason = "too-many-files"
	ReasonCheckboxUncheckedCopyright RejectionReason = "checkbox-unchecked-copyright"
	ReasonCheckboxUncheckedLicense   RejectionReason = "checkbox-unchecked-license"
	ReasonConcurrentSubmissionLimit  RejectionReason = "concurrent-submission-limit"
	ReasonDuplicateFile              RejectionReason = "duplicate-file"
	ReasonInsufficientDimension      RejectionReason = "insufficient-dimension"
)

var knownReasons = map[RejectionReason]struct{}{
	ReasonNoFileUploaded:             {},
	ReasonTooManyFiles:               {},
	ReasonCheckboxUncheckedCopyright: {},
	ReasonCheckboxUncheckedLicense:   {},
	ReasonConcurrentSubmissionLimit:  {},
	ReasonDuplicateFile:              {},
	ReasonInsufficientDimension:      {},
}

// Valid reports whether r belongs to the closed set of rejection reasons.
// ReasonNone is not valid.
func (r RejectionReason) Valid() bool {
	_, ok := knownReasons[r]
	return ok
}

// String implements fmt.Stringer.
func (r RejectionReason) String() string {
	if r == ReasonNone {
		return "none"
	}
	return string(r)
}

// ParseRejectionReason converts a stored token back into a RejectionReason.
// Unknown tokens yield ReasonNone and false.
func ParseRejectionReason(s string) (RejectionReason, bool) {
	r := RejectionReason(s)
	if !r.Valid() {
		return ReasonNone, false
	}
	return r, true
}
