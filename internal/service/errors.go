package service

import "errors"

var (
	// ErrNoDocumentLoaded is returned by DocumentService.Current before the
	// first successful load.
	ErrNoDocumentLoaded = errors.New("no document loaded")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNilSource = errors.New("document source is nil")
)
