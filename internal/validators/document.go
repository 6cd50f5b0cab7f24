// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/MKhiriev/go-tw-config/models"
)

// Field name constants used to restrict validation to a subset of the
// document.
const (
	// FieldContent targets the content glob list.
	FieldContent = "content"

	// FieldTheme targets the theme extension categories.
	FieldTheme = "theme"

	// FieldPlugins targets the plugin references.
	FieldPlugins = "plugins"
)

var allFields = []string{FieldContent, FieldTheme, FieldPlugins}

// DocumentValidator checks a decoded document for mistakes that are valid
// syntax but almost certainly unintended: glob patterns that cannot match,
// repeated globs or plugins and empty theme categories.
//
// Every finding is reported; the result is an errors.Join of all of them.
type DocumentValidator struct {
}

func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.ConfigDocument:
		if value == nil {
			return ErrNilDocument
		}
		return v.validateDocument(ctx, value, fields...)
	case models.ConfigDocument:
		return v.validateDocument(ctx, &value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *DocumentValidator) validateDocument(ctx context.Context, doc *models.ConfigDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = allFields
	}

	var errs []error
	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch field {
		case FieldContent:
			errs = append(errs, validateContent(doc.ContentGlobs())...)
		case FieldTheme:
			errs = append(errs, validateTheme(doc.ThemeExtensions())...)
		case FieldPlugins:
			errs = append(errs, validatePlugins(doc.Plugins())...)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return errors.Join(errs...)
}

func validateContent(globs []string) []error {
	var errs []error
	seen := make(map[string]int, len(globs))

	for i, glob := range globs {
		if first, dup := seen[glob]; dup {
			errs = append(errs, fmt.Errorf("%w: content[%d] repeats content[%d] %q", ErrDuplicateGlob, i, first, glob))
			continue
		}
		seen[glob] = i

		// negated globs carry a leading '!'
		pattern := strings.TrimPrefix(glob, "!")
		if _, err := path.Match(pattern, ""); err != nil {
			errs = append(errs, fmt.Errorf("%w: content[%d] %q: %w", ErrBadGlobPattern, i, glob, err))
		}
	}

	return errs
}

func validateTheme(ext map[string]map[string]models.ThemeValue) []error {
	var errs []error
	for _, category := range slices.Sorted(maps.Keys(ext)) {
		if len(ext[category]) == 0 {
			errs = append(errs, fmt.Errorf("%w: theme.extend.%s", ErrEmptyThemeSection, category))
		}
	}
	return errs
}

func validatePlugins(plugins []models.PluginRef) []error {
	var errs []error
	seen := make(map[string]int, len(plugins))

	for i, p := range plugins {
		if first, dup := seen[p.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: plugins[%d] repeats plugins[%d] %q", ErrDuplicatePlugin, i, first, p.Name))
			continue
		}
		seen[p.Name] = i
	}

	return errs
}
