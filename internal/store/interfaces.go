package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-tw-config/models"
)

// DocumentStorage persists the canonical form of a loaded document.
type DocumentStorage interface {
	// Save writes doc to path, replacing any previous file atomically.
	// The encoding follows the path extension: .yaml/.yml write YAML,
	// everything else writes indented JSON.
	Save(ctx context.Context, doc *models.ConfigDocument, path string) error
}
