package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-tw-config/internal/config"
	"github.com/MKhiriev/go-tw-config/internal/logger"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService serves the version reported by /api/version/. Surrounding
// whitespace from ldflags or env values is dropped; an empty version is an
// error since remote clients log it on connect.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")

	return &appInfoService{appVersion: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.appVersion
}
