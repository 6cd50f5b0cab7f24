// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tw-config/internal/app"
	"github.com/MKhiriev/go-tw-config/internal/logger"
	"github.com/MKhiriev/go-tw-config/internal/utils"
	"github.com/MKhiriev/go-tw-config/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.currentDocument(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, r, doc)
}

func (h *Handler) getContent(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.currentDocument(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, r, doc.ContentGlobs())
}

func (h *Handler) getTheme(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.currentDocument(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, r, doc.ThemeExtensions())
}

func (h *Handler) getThemeCategory(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.currentDocument(w, r)
	if !ok {
		return
	}

	category := chi.URLParam(r, "category")
	tokens, found := doc.ThemeExtensions()[category]
	if !found {
		h.writeError(w, r, errCategoryNotFound, "theme category "+category)
		return
	}

	h.writeJSON(w, r, tokens)
}

func (h *Handler) getPlugins(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.currentDocument(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, r, doc.Plugins())
}

func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DocumentService.Reload(r.Context()); err != nil {
		h.writeError(w, r, err, "reload")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) currentDocument(w http.ResponseWriter, r *http.Request) (*models.ConfigDocument, bool) {
	doc, err := h.services.DocumentService.Current()
	if err != nil {
		h.writeError(w, r, err, "current document")
		return nil, false
	}
	return doc, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, op string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("op", op).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("op", op).Int("status", status).Msg("request rejected")
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = app.MsgInternalServerError
	}
	http.Error(w, msg, status)
}
