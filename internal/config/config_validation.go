// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// start-up invariants: the server needs an address to listen on and at least
// one bucket binding with a non-empty name and URL.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if len(cfg.Storage.Buckets) == 0 {
		return fmt.Errorf("%w: no bucket bindings", ErrInvalidStorageConfigs)
	}

	for name, rawURL := range cfg.Storage.Buckets {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: bucket binding without a name", ErrInvalidStorageConfigs)
		}
		if strings.TrimSpace(rawURL) == "" {
			return fmt.Errorf("%w: bucket binding %q has no url", ErrInvalidStorageConfigs, name)
		}
	}

	return nil
}
