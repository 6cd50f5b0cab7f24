// Package config loads the settings of the twconfig binary.
//
// Sources are merged in this order, later non-zero fields winning:
//  0. built-in defaults
//  1. TWCONFIG_* environment variables
//  2. command-line flags and the positional document path
//  3. the settings file named by -c or TWCONFIG_CONFIG (JSON or YAML)
//
// The merged result is validated for the selected mode. The entry point is
// [GetStructuredConfig].
package config
