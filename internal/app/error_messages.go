// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// twconfig HTTP handlers and command-line modes.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or terminal output to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServerUnavailable replaces low-level network errors when a remote
	// twconfig server cannot be reached.
	MsgServerUnavailable = "network is unavailable or the server is unreachable"

	// MsgDocumentValid is printed by the validate mode on success.
	MsgDocumentValid = "config is valid"

	// MsgDocumentExported is printed by the export mode on success.
	MsgDocumentExported = "config exported"

	// MsgUnknownMode is reported for an unrecognised -mode value.
	MsgUnknownMode = "unknown mode"
)
