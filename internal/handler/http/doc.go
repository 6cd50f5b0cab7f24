// Package http implements the HTTP transport layer of twconfig.
//
// It exposes route wiring, request handlers, and middleware for the
// read-only configuration API. Cross-cutting concerns such as request
// tracing, access logging and response compression are handled in this
// package before requests are delegated to the service layer.
package http
