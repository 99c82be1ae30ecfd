// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the APP_, UPLOADS_, STORAGE_, SERVER_, ADAPTER_ and
// WORKERS_ variables. Unset variables stay zero so the merge in
// [configBuilder.build] lets flags and the JSON file fill them.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
