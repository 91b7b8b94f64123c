package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/carlot/internal/config"
	"github.com/five82/carlot/internal/docstore"
	"github.com/five82/carlot/internal/listing"
	"github.com/five82/carlot/internal/logging"
	"github.com/five82/carlot/internal/prefs"
	"github.com/five82/carlot/internal/purchase"
	"github.com/five82/carlot/internal/state"
	"github.com/five82/carlot/internal/ui"
)

// Options configure the carlot application.
type Options struct {
	ConfigPath string // empty uses ~/.config/carlot/config.toml
	EnvPath    string // optional .env file seeding CARLOT_* variables
	PrefsPath  string // empty uses ~/.config/carlot/prefs.toml
}

// Run boots the carlot TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if err := config.LoadEnvFile(opts.EnvPath); err != nil {
		return err
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Path:   cfg.LogPath,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("prefs unreadable, using defaults", zap.Error(err))
	}

	src, closeSrc, err := docstore.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open document store: %w", err)
	}
	defer func() {
		if err := closeSrc(); err != nil {
			logger.Warn("close document store", zap.Error(err))
		}
	}()

	coll := listing.Collection{DatabaseID: cfg.DatabaseID, CollectionID: cfg.CollectionID}
	store := &state.Store{}
	StartLoader(ctx, store, src, coll, logger)

	logger.Info("carlot started", zap.String("backend", cfg.Backend), zap.String("collection", coll.String()))
	defer logger.Info("carlot stopped")

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Buyer:     purchase.NewStub(logger),
		Logger:    logger,
		LogPath:   cfg.LogPath,
		Source:    fmt.Sprintf("%s %s", cfg.Backend, coll),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}
