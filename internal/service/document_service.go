// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-tw-config/internal/document"
	"github.com/MKhiriev/go-tw-config/internal/logger"
	"github.com/MKhiriev/go-tw-config/internal/metrics"
	"github.com/MKhiriev/go-tw-config/models"
)

const (
	triggerInitial = "initial"
	triggerReload  = "reload"
)

type documentService struct {
	source  document.Source
	current atomic.Pointer[models.ConfigDocument]

	// reloadMu serialises loads so snapshots are published in load order.
	reloadMu sync.Mutex

	subsMu      sync.Mutex
	subscribers map[int]chan<- *models.ConfigDocument
	nextSubID   int

	logger *logger.Logger
}

// NewDocumentService returns a DocumentService over source. No load happens
// until the first Reload.
func NewDocumentService(source document.Source, logger *logger.Logger) (DocumentService, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	return &documentService{
		source:      source,
		subscribers: make(map[int]chan<- *models.ConfigDocument),
		logger:      logger,
	}, nil
}

func (s *documentService) Current() (*models.ConfigDocument, error) {
	doc := s.current.Load()
	if doc == nil {
		return nil, ErrNoDocumentLoaded
	}
	return doc, nil
}

func (s *documentService) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	trigger := triggerReload
	if s.current.Load() == nil {
		trigger = triggerInitial
	}

	doc, err := s.source.Load(ctx)
	metrics.RecordLoad(trigger, err)
	if err != nil {
		s.logger.Err(err).
			Str("source", s.source.Describe()).
			Str("trigger", trigger).
			Msg("document load failed, keeping previous snapshot")
		return fmt.Errorf("error loading document from %s: %w", s.source.Describe(), err)
	}

	s.current.Store(doc)
	metrics.SetDocumentShape(len(doc.ContentGlobs()), len(doc.Plugins()))

	s.logger.Info().
		Str("source", s.source.Describe()).
		Str("trigger", trigger).
		Int("content_globs", len(doc.ContentGlobs())).
		Int("plugins", len(doc.Plugins())).
		Msg("document loaded")

	s.notify(doc)
	return nil
}

func (s *documentService) Subscribe(ch chan<- *models.ConfigDocument) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *documentService) Describe() string {
	return s.source.Describe()
}

func (s *documentService) notify(doc *models.ConfigDocument) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	for id, ch := range s.subscribers {
		select {
		case ch <- doc:
		default:
			s.logger.Warn().Int("subscriber", id).Msg("subscriber is not keeping up, update dropped")
		}
	}
}
