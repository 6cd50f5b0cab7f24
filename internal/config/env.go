// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every variable, so generic names such as PATH or
// CONFIG in the process environment are never picked up.
const envPrefix = "TWCONFIG_"

// parseEnv fills cfg from TWCONFIG_* variables. Nested sections add their
// own envPrefix tag, e.g. TWCONFIG_SERVER_ADDRESS.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
