// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Run modes of the twconfig binary.
const (
	// ModeValidate loads the document and reports success or the error.
	ModeValidate = "validate"

	// ModeShow prints a styled summary of the document.
	ModeShow = "show"

	// ModeBrowse opens the interactive terminal browser.
	ModeBrowse = "browse"

	// ModeExport writes the canonical JSON form of the document to a file.
	ModeExport = "export"

	// ModeServe exposes the document over HTTP until interrupted.
	ModeServe = "serve"

	// ModeFetch loads the document from a remote twconfig server.
	ModeFetch = "fetch"
)

// StructuredConfig is the top-level settings container of the twconfig
// binary. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: version string and log level.
	App App `envPrefix:"APP_"`

	// Document tells where the tailwind declaration lives and how to read it.
	Document Document `envPrefix:"DOCUMENT_"`

	// Server holds the listen address and timeouts of the HTTP endpoint.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of a remote twconfig server used by the
	// fetch mode.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of background workers (the file watcher).
	Workers Workers `envPrefix:"WORKERS_"`

	// Output selects the run mode and its destination.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON settings file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the TWCONFIG_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Version is the semantic version string of the running binary.
	// Exposed via the /api/version/ endpoint.
	// Env: TWCONFIG_APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: TWCONFIG_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Document locates the declaration file.
type Document struct {
	// Path is either the declaration file or a directory holding one of the
	// conventional tailwind.config.* files.
	// Env: TWCONFIG_DOCUMENT_PATH
	Path string `env:"PATH"`

	// Format forces a format ("js", "json", "yaml") instead of detecting it
	// from the file extension.
	// Env: TWCONFIG_DOCUMENT_FORMAT
	Format string `env:"FORMAT"`

	// Strict rejects unknown top-level keys in the declaration.
	// Env: TWCONFIG_DOCUMENT_STRICT
	Strict bool `env:"STRICT"`
}

// Server holds network and timeout settings for the HTTP endpoint.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: TWCONFIG_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m").
	// Env: TWCONFIG_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the remote document client.
type Adapter struct {
	// HTTPAddress is the base URL of a remote twconfig server
	// (e.g. "http://127.0.0.1:8080").
	// Env: TWCONFIG_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single remote request.
	// Env: TWCONFIG_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// Watch enables reloading the document when its file changes
	// (serve mode only).
	// Env: TWCONFIG_WORKERS_WATCH
	Watch bool `env:"WATCH"`

	// Debounce is the quiet period after the last file event before a
	// reload is triggered.
	// Env: TWCONFIG_WORKERS_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// Output selects what the binary does with the loaded document.
type Output struct {
	// Mode is one of the Mode* constants.
	// Env: TWCONFIG_OUTPUT_MODE
	Mode string `env:"MODE"`

	// Path is the destination file of the export mode.
	// Env: TWCONFIG_OUTPUT_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads, merges, and validates the settings from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
