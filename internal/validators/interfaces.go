// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators lints loaded configuration documents.
//
// Decoding already rejects declarations of the wrong shape. The checks here
// look at values that are well-formed but probably wrong: glob patterns that
// can never match, repeated entries and empty theme categories. The CLI
// reports them as warnings, or as errors in strict mode.
package validators

import "context"

// Validator checks a value and returns every finding joined into one error.
// The optional field names limit the check to those parts of the value.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
