package models

// Decision is the outcome of the admission orchestrator.
type Decision struct {
	Allowed bool
	Reason  RejectionReason
}

// Allow returns an admitting decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision. reason may be ReasonNone for denials that
// must not surface a specific reason.
func Deny(reason RejectionReason) Decision {
	return Decision{Reason: reason}
}

// Validation is the outcome of the post-storage validator.
type Validation struct {
	Valid  bool
	Reason RejectionReason
}

// Valid returns a passing validation.
func Valid() Validation {
	return Validation{Valid: true}
}

// Invalid returns a failing validation carrying reason.
func Invalid(reason RejectionReason) Validation {
	return Validation{Reason: reason}
}
