// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the twconfig HTTP surface.
//
// [NewHTTPServerAdapter] returns a [ServerAdapter] that loads the document
// served by another twconfig process, so the rest of the application can
// treat a remote server like any other [document.Source].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnprocessable]
// for 422, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tw-config/internal/document"
)

// ServerAdapter talks to a remote twconfig server.
type ServerAdapter interface {
	// Load fetches GET /api/config and decodes it as a JSON declaration.
	document.Source

	// Version fetches the plain-text version of the remote server.
	Version(ctx context.Context) (string, error)
}
