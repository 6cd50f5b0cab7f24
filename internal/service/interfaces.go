package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-tw-config/models"
)

// DocumentService keeps the current tailwind configuration snapshot of the
// process and replaces it on demand.
type DocumentService interface {
	// Current returns the last successfully loaded document, or
	// ErrNoDocumentLoaded before the first successful Reload.
	Current() (*models.ConfigDocument, error)

	// Reload loads the document from its source again. On failure the
	// previous snapshot stays current and the error is returned.
	Reload(ctx context.Context) error

	// Subscribe registers ch to receive every new snapshot after a
	// successful Reload. Sends never block; a full channel misses the
	// update. The returned func removes the subscription.
	Subscribe(ch chan<- *models.ConfigDocument) (unsubscribe func())

	// Describe names the source of the document.
	Describe() string
}

// AppInfoService exposes build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
