// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedConfig is matched by every [*MalformedConfigError].
	ErrMalformedConfig = errors.New("malformed config")

	// ErrConfigNotFound is returned by [FindConventional] when none of the
	// conventional file names exists in the directory.
	ErrConfigNotFound = errors.New("no config file found")

	// ErrReadingConfig wraps I/O failures while reading a declaration.
	ErrReadingConfig = errors.New("error reading config")
)

// MalformedConfigError reports a declaration that cannot be parsed into the
// expected shape: a syntax error, a missing required key or a value of the
// wrong type.
type MalformedConfigError struct {
	// Key is the dotted path of the offending key, e.g. "theme.extend.colors"
	// or "content[2]". Empty for errors that concern the whole declaration.
	Key string

	// Reason is a short human-readable description of the problem.
	Reason string

	// Err is the underlying parser error, if any.
	Err error
}

func (e *MalformedConfigError) Error() string {
	msg := ErrMalformedConfig.Error()
	if e.Key != "" {
		msg += fmt.Sprintf(": key %q", e.Key)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrMalformedConfig) succeed.
func (e *MalformedConfigError) Is(target error) bool {
	return target == ErrMalformedConfig
}

func (e *MalformedConfigError) Unwrap() error {
	return e.Err
}

func malformed(key, reason string) error {
	return &MalformedConfigError{Key: key, Reason: reason}
}

func syntaxError(err error) error {
	return &MalformedConfigError{Reason: "syntax error", Err: err}
}
