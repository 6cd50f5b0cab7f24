package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-tw-config/internal/adapter"
	"github.com/MKhiriev/go-tw-config/internal/app"
	"github.com/MKhiriev/go-tw-config/internal/config"
	"github.com/MKhiriev/go-tw-config/internal/document"
	"github.com/MKhiriev/go-tw-config/internal/logger"
	"github.com/MKhiriev/go-tw-config/internal/store"
	"github.com/MKhiriev/go-tw-config/internal/tui"
	"github.com/MKhiriev/go-tw-config/internal/utils"
	"github.com/MKhiriev/go-tw-config/internal/validators"
	"github.com/MKhiriev/go-tw-config/models"
)

type App struct {
	cfg       config.StructuredConfig
	buildInfo models.AppBuildInfo
	storages  *store.Storages
	validator validators.Validator

	// out receives the document output of the one-shot modes.
	out io.Writer

	logger *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	return &App{
		cfg:       *cfg,
		buildInfo: buildInfo,
		storages:  store.NewStorages(logger),
		validator: validators.NewDocumentValidator(),
		out:       out,
		logger:    logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Debug().Str("mode", a.cfg.Output.Mode).Msg("running")

	switch a.cfg.Output.Mode {
	case "", config.ModeValidate:
		return a.validate(ctx)
	case config.ModeShow:
		return a.show(ctx)
	case config.ModeBrowse:
		return a.browse(ctx)
	case config.ModeExport:
		return a.export(ctx)
	case config.ModeServe:
		return a.serve(ctx)
	case config.ModeFetch:
		return a.fetch(ctx)
	default:
		return fmt.Errorf("%w %q", ErrUnknownMode, a.cfg.Output.Mode)
	}
}

// validate loads the document and lints it. Lint findings are warnings
// unless the document is read in strict mode.
func (a *App) validate(ctx context.Context) error {
	doc, source, err := a.loadLocal(ctx)
	if err != nil {
		return err
	}

	if err = a.validator.Validate(ctx, doc); err != nil {
		if a.cfg.Document.Strict {
			return err
		}
		a.logger.Warn().Err(err).Str("source", source).Msg("config has suspicious entries")
	}

	_, err = fmt.Fprintf(a.out, "%s: %s (%d content globs, %d theme categories, %d plugins)\n",
		app.MsgDocumentValid, source,
		len(doc.ContentGlobs()), len(doc.ThemeExtensions()), len(doc.Plugins()))
	return err
}

func (a *App) show(ctx context.Context) error {
	doc, source, err := a.loadLocal(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, tui.RenderSummary(doc, source))
	return err
}

func (a *App) browse(ctx context.Context) error {
	doc, source, err := a.loadLocal(ctx)
	if err != nil {
		return err
	}

	return tui.Browse(doc, source)
}

func (a *App) export(ctx context.Context) error {
	doc, source, err := a.loadLocal(ctx)
	if err != nil {
		return err
	}

	if err = a.storages.DocumentStorage.Save(ctx, doc, a.cfg.Output.Path); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "%s: %s -> %s\n", app.MsgDocumentExported, source, a.cfg.Output.Path)
	return err
}

// fetch loads the document served by a remote twconfig instance. It is
// saved to Output.Path when one is set and printed as JSON otherwise.
func (a *App) fetch(ctx context.Context) error {
	remote, err := adapter.NewHTTPServerAdapter(a.cfg.Adapter, a.cfg.Document.Strict, a.logger)
	if err != nil {
		return err
	}

	traceID := utils.NewUUIDGenerator().Generate()
	ctx = utils.WithTraceID(ctx, traceID)
	a.logger.Debug().Str("trace_id", traceID).Str("url", remote.Describe()).Msg("fetching remote document")

	if version, err := remote.Version(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("remote version is unknown")
	} else {
		a.logger.Info().Str("remote_version", version).Msg("connected to remote server")
	}

	doc, err := remote.Load(ctx)
	if err != nil {
		return err
	}

	if a.cfg.Output.Path != "" {
		if err = a.storages.DocumentStorage.Save(ctx, doc, a.cfg.Output.Path); err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "%s: %s -> %s\n", app.MsgDocumentExported, remote.Describe(), a.cfg.Output.Path)
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func (a *App) localSource() (*document.FileSource, error) {
	source, err := document.NewFileSource(a.cfg.Document.Path, a.cfg.Document.Strict)
	if err != nil {
		return nil, err
	}

	if a.cfg.Document.Format != "" {
		if source.Format, err = document.ParseFormat(a.cfg.Document.Format); err != nil {
			return nil, err
		}
	}

	return source, nil
}

func (a *App) loadLocal(ctx context.Context) (*models.ConfigDocument, string, error) {
	source, err := a.localSource()
	if err != nil {
		return nil, "", err
	}

	doc, err := source.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	return doc, source.Describe(), nil
}
