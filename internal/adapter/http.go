package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tw-config/internal/config"
	"github.com/MKhiriev/go-tw-config/internal/document"
	"github.com/MKhiriev/go-tw-config/internal/logger"
	"github.com/MKhiriev/go-tw-config/internal/utils"
	"github.com/MKhiriev/go-tw-config/models"
	"github.com/go-resty/resty/v2"
)

const (
	configPath  = "/api/config"
	versionPath = "/api/version/"

	traceIDHeader = "X-Trace-ID"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	decoder document.Decoder

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. strict is applied when decoding the fetched declaration.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, strict bool, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{
		client:  client,
		baseURL: baseURL,
		decoder: document.Decoder{Strict: strict},
		logger:  logger,
	}, nil
}

// Load implements [document.Source]. It GETs /api/config and decodes the
// body as a JSON declaration, so a remote document goes through the same
// validation as a local file.
func (h *httpServerAdapter) Load(ctx context.Context) (*models.ConfigDocument, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "application/json").
		Get(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: config request: %w", document.ErrReadingConfig, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%w: %w", document.ErrReadingConfig, err)
	}

	doc, err := h.decoder.Decode(resp.Body(), document.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", h.Describe(), err)
	}

	h.logger.Debug().
		Str("url", h.Describe()).
		Int("bytes", len(resp.Body())).
		Msg("remote document fetched")

	return doc, nil
}

// request forwards the caller's trace ID so both sides log the same one.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

// Describe implements [document.Source].
func (h *httpServerAdapter) Describe() string {
	return h.baseURL + configPath
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
