package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid process settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidDocumentConfigs indicates an unusable document location or
	// an unknown forced format.
	ErrInvalidDocumentConfigs = errors.New("invalid document configuration")
	// ErrInvalidServerConfigs indicates missing or invalid HTTP server
	// settings for the serve mode.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid remote client settings
	// (for example, missing base URL in fetch mode).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative debounce).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidOutputConfigs indicates an unknown mode or a missing export
	// destination.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrTooManyArguments is returned when more than one positional
	// argument is given.
	ErrTooManyArguments = errors.New("too many arguments")
	// ErrInvalidNetAddress is returned by [NetAddress.Set].
	ErrInvalidNetAddress = errors.New("invalid listen address")
)
