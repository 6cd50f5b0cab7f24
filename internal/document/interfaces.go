package document

//go:generate mockgen -source=interfaces.go -destination=../mock/document_source_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-tw-config/models"
)

// Source produces a freshly loaded [models.ConfigDocument] on every call.
//
// Implementations read from disk ([FileSource]) or from a remote endpoint
// (see the adapter package). Load must not return a partially populated
// document: either the full document or an error.
type Source interface {
	Load(ctx context.Context) (*models.ConfigDocument, error)

	// Describe names where the document comes from, for logs and metrics.
	Describe() string
}
