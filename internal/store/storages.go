package store

import "github.com/MKhiriev/go-tw-config/internal/logger"

type Storages struct {
	DocumentStorage DocumentStorage
}

func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		DocumentStorage: NewDocumentFileStorage(logger),
	}
}
