package service

import (
	"github.com/MKhiriev/go-tw-config/internal/config"
	"github.com/MKhiriev/go-tw-config/internal/document"
	"github.com/MKhiriev/go-tw-config/internal/logger"
)

type Services struct {
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

func NewServices(source document.Source, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	documentService, err := NewDocumentService(source, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		DocumentService: documentService,
		AppInfoService:  appInfoService,
	}, nil
}
