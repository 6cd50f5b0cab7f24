// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for twconfig.
//
// Every logger writes to stderr; stdout belongs to the document output of
// the CLI modes. The long-running server logs JSON lines, the one-shot modes
// log readable console lines. Request-scoped loggers travel in the context
// and are read back with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the full zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// New builds a logger writing to w with a "role" field, a timestamp and the
// calling function name under "func". level is a zerolog level name; empty
// or unknown names mean info. The level is applied globally.
func New(w io.Writer, role, level string) *Logger {
	setGlobalLevel(level)

	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewLogger returns a JSON logger on stderr.
func NewLogger(role, level string) *Logger {
	return New(os.Stderr, role, level)
}

// NewConsoleLogger returns a human-readable logger on stderr.
func NewConsoleLogger(role, level string) *Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}, role, level)
}

func init() {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

func setGlobalLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can take extra fields without
// touching the receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// Without one it falls back to zerolog's default context logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromRequest is FromContext for the request's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
