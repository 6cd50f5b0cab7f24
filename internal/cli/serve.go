// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"

	"github.com/MKhiriev/go-tw-config/internal/handler"
	"github.com/MKhiriev/go-tw-config/internal/logger"
	"github.com/MKhiriev/go-tw-config/internal/server"
	"github.com/MKhiriev/go-tw-config/internal/service"
	"github.com/MKhiriev/go-tw-config/internal/workers"
	"github.com/MKhiriev/go-tw-config/models"
)

// serve exposes the local document over HTTP. A failed initial load is
// logged and the server still starts: reads answer 503 until a reload
// (manual or from the watcher) succeeds.
func (a *App) serve(ctx context.Context) error {
	source, err := a.localSource()
	if err != nil {
		return err
	}

	cfg := a.cfg
	if cfg.App.Version == "" {
		cfg.App.Version = a.buildInfo.Version()
	}

	services, err := service.NewServices(source, cfg, a.logger)
	if err != nil {
		return err
	}

	if err = services.DocumentService.Reload(ctx); err != nil {
		a.logger.Err(err).Msg("initial load failed, serving without a document")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, a.logger)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, a.logger)
	if err != nil {
		return err
	}

	var background []workers.Worker
	if cfg.Workers.Watch {
		watcher, err := workers.NewDocumentWatcher(source.Path, services.DocumentService, cfg.Workers.Debounce, a.logger)
		if err != nil {
			return err
		}
		background = append(background, watcher, &updateLogger{documents: services.DocumentService, logger: a.logger})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bg := workers.NewWorkers(background...)
	a.logger.Debug().Int("workers", bg.Len()).Msg("starting background workers")
	bgDone := make(chan error, 1)
	go func() { bgDone <- bg.Run(ctx) }()

	serveErr := srv.RunServer(ctx)
	cancel()

	if err = <-bgDone; err != nil && serveErr == nil {
		return err
	}
	return serveErr
}

// updateLogger reports every snapshot published by the document service.
type updateLogger struct {
	documents service.DocumentService
	logger    *logger.Logger
}

func (u *updateLogger) Run(ctx context.Context) error {
	updates := make(chan *models.ConfigDocument, 1)
	unsubscribe := u.documents.Subscribe(updates)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case doc := <-updates:
			u.logger.Info().
				Str("source", u.documents.Describe()).
				Strs("content", doc.ContentGlobs()).
				Int("theme_categories", len(doc.ThemeExtensions())).
				Int("plugins", len(doc.Plugins())).
				Msg("serving updated document")
		}
	}
}
