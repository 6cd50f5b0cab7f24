package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tw-config/internal/cli"
	"github.com/MKhiriev/go-tw-config/internal/config"
	"github.com/MKhiriev/go-tw-config/internal/logger"
	"github.com/MKhiriev/go-tw-config/internal/tui"
	"github.com/MKhiriev/go-tw-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := newLogger(cfg)
	log.Debug().Any("config", cfg).Msg("received configs")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().Stringer("build", buildInfo).Msg("twconfig build")
	if cfg.Output.Mode == config.ModeServe {
		fmt.Fprintln(os.Stderr, tui.RenderBuildInfo(buildInfo))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(cfg, buildInfo, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Debug().Err(err).Msg("run failed")
		fmt.Fprintln(os.Stderr, tui.HumanizeError(err))
		stop()
		os.Exit(1)
	}
}

// newLogger picks JSON output for the long-running server and readable
// console lines for the one-shot modes.
func newLogger(cfg *config.StructuredConfig) *logger.Logger {
	if cfg.Output.Mode == config.ModeServe {
		return logger.NewLogger("twconfig-server", cfg.App.LogLevel)
	}
	return logger.NewConsoleLogger("twconfig", cfg.App.LogLevel)
}
