// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-tw-config/internal/document"
	"github.com/MKhiriev/go-tw-config/internal/utils"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants of the selected mode before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Document.Format != "" {
		if _, err := document.ParseFormat(cfg.Document.Format); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDocumentConfigs, err)
		}
	}

	if cfg.Workers.Debounce < 0 {
		return fmt.Errorf("%w: negative debounce %s", ErrInvalidWorkerConfigs, cfg.Workers.Debounce)
	}

	switch cfg.Output.Mode {
	case "", ModeValidate, ModeShow, ModeBrowse:
	case ModeExport:
		if cfg.Output.Path == "" {
			return fmt.Errorf("%w: export needs a destination path", ErrInvalidOutputConfigs)
		}
	case ModeServe:
		if cfg.Server.HTTPAddress == "" {
			return fmt.Errorf("%w: serve needs a listen address", ErrInvalidServerConfigs)
		}
	case ModeFetch:
		if cfg.Adapter.HTTPAddress == "" {
			return fmt.Errorf("%w: fetch needs a remote address", ErrInvalidAdapterConfigs)
		}
		if _, err := utils.NormalizeBaseURL(cfg.Adapter.HTTPAddress); err != nil {
			return fmt.Errorf("%w: bad remote address %q: %w", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress, err)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidOutputConfigs, cfg.Output.Mode)
	}

	return nil
}
