package config

import "time"

const (
	defaultDocumentPath   = "."
	defaultLogLevel       = "info"
	defaultRequestTimeout = 15 * time.Second
	defaultDebounce       = 500 * time.Millisecond
)

// Defaults returns the lowest-priority layer of settings.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: defaultLogLevel,
		},
		Document: Document{
			Path: defaultDocumentPath,
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			Debounce: defaultDebounce,
		},
		Output: Output{
			Mode: ModeValidate,
		},
	}
}
