// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// defaults are applied, so only values set explicitly to something invalid
// are rejected here.
func (cfg *StructuredConfig) validate() error {
	if cfg.Uploads.MaxPendingSubmissions < 1 {
		return fmt.Errorf("%w: max pending submissions must be positive", ErrInvalidUploadsConfigs)
	}
	if cfg.Uploads.MinPhotoDimension < 1 {
		return fmt.Errorf("%w: min photo dimension must be positive", ErrInvalidUploadsConfigs)
	}
	if cfg.Uploads.MaxDescriptionLength < 1 {
		return fmt.Errorf("%w: max description length must be positive", ErrInvalidUploadsConfigs)
	}
	if cfg.Uploads.ReasonTTL < 0 {
		return fmt.Errorf("%w: reason ttl must not be negative", ErrInvalidUploadsConfigs)
	}
	if cfg.Uploads.MaxUploadSize < 1 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidUploadsConfigs)
	}

	if dsn := cfg.Storage.DB.DSN; strings.Contains(dsn, "://") &&
		!strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return fmt.Errorf("%w: unsupported database scheme", ErrInvalidStorageConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	switch cfg.Storage.ReasonBackend {
	case ReasonBackendPostgres, ReasonBackendMemory:
	default:
		return fmt.Errorf("%w: unknown reason backend %q", ErrInvalidStorageConfigs, cfg.Storage.ReasonBackend)
	}

	return nil
}
