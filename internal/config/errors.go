package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidUploadsConfigs indicates invalid admission rules
	// (for example, a negative pending-submission ceiling).
	ErrInvalidUploadsConfigs = errors.New("invalid uploads configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, a non-PostgreSQL DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates an unparsable log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
