package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/remaprc/cmd/remaprc/opts"
	"github.com/walteh/remaprc/pkg/config"
	"github.com/walteh/remaprc/pkg/remote/github"
	"github.com/walteh/remaprc/pkg/status"
)

var (
	// Flags
	configFile string
	debug      bool
	dryRun     bool
	backup     bool
	reversible bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Create user logger
	userLogger := status.NewUserLogger(ctx)

	// Load config
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	if reversible {
		cfg.Reversible = true
	}

	// Resolve a remote mapping source, if configured
	if cfg.Source != nil && len(cfg.Mapping) == 0 {
		fetcher := github.New(ctx)
		mapping, err := fetcher.LoadMapping(ctx, cfg.Source)
		if err != nil {
			return nil, errors.Errorf("fetching remote mapping: %w", err)
		}
		cfg.Mapping = mapping
	}

	logger := zerolog.Ctx(ctx)
	return &opts.RootOpts{
		Config:     cfg,
		ConfigPath: configFile,
		StatusMgr:  status.New(logger),
		UserLogger: userLogger,
		DryRun:     dryRun,
		Backup:     backup,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".remaprc.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	cmd.PersistentFlags().BoolVar(&backup, "backup", false, "copy each file aside before rewriting it")
	cmd.PersistentFlags().BoolVar(&reversible, "reversible", false, "also reject duplicate replace values")
}

// setupLogging configures zerolog for console output
func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	writer := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})
	logger := zerolog.New(writer).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}
