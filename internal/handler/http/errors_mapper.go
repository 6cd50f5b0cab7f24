package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tw-config/internal/document"
	"github.com/MKhiriev/go-tw-config/internal/service"
)

var errCategoryNotFound = errors.New("theme category not found")

var errorStatusMap = map[error]int{
	document.ErrMalformedConfig: http.StatusUnprocessableEntity,
	document.ErrConfigNotFound:  http.StatusInternalServerError,
	document.ErrReadingConfig:   http.StatusInternalServerError,

	service.ErrNoDocumentLoaded: http.StatusServiceUnavailable,

	errCategoryNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
