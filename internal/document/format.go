// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the on-disk syntax of a declaration.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatJS   Format = "js"
)

// ConventionalNames lists the file names [FindConventional] looks for, in
// priority order.
var ConventionalNames = []string{
	"tailwind.config.js",
	"tailwind.config.cjs",
	"tailwind.config.mjs",
	"tailwind.config.json",
	"tailwind.config.yaml",
	"tailwind.config.yml",
}

// DetectFormat infers the declaration format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".js", ".cjs", ".mjs":
		return FormatJS, nil
	default:
		return "", &MalformedConfigError{
			Reason: fmt.Sprintf("unsupported file extension of %q", path),
		}
	}
}

// ParseFormat validates a format name given in settings.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatJS:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown document format %q", s)
	}
}
