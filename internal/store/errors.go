package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNilDocument is returned when Save is called without a document.
	ErrNilDocument = errors.New("no document to save")

	// ErrEncodingDocument is returned when the document cannot be turned
	// into the requested encoding.
	ErrEncodingDocument = errors.New("error encoding document")

	// ErrWritingFile is returned when the destination file cannot be
	// created, written or renamed into place.
	ErrWritingFile = errors.New("error writing document file")
)
