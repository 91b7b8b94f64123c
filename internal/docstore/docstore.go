// Package docstore builds the listing.Source selected by configuration.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/carlot/internal/appwrite"
	"github.com/five82/carlot/internal/cache"
	"github.com/five82/carlot/internal/config"
	"github.com/five82/carlot/internal/docfile"
	"github.com/five82/carlot/internal/listing"
	"github.com/five82/carlot/internal/mongostore"
)

const disconnectTimeout = 5 * time.Second

// Open returns the configured backend, wrapped in the Redis cache when one is
// configured, and a function releasing its connections.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (listing.Source, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		src     listing.Source
		closers []func() error
	)
	switch cfg.Backend {
	case config.BackendAppwrite:
		client, err := appwrite.NewClient(cfg.Appwrite.Endpoint, cfg.Appwrite.ProjectID, cfg.Appwrite.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("appwrite backend: %w", err)
		}
		src = client
	case config.BackendMongo:
		store, err := mongostore.New(ctx, mongostore.Options{URI: cfg.Mongo.URI, ConnectTimeout: cfg.Mongo.ConnectTimeout})
		if err != nil {
			return nil, nil, fmt.Errorf("mongo backend: %w", err)
		}
		src = store
		closers = append(closers, func() error {
			closeCtx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
			defer cancel()
			return store.Close(closeCtx)
		})
	case config.BackendFile:
		file, err := docfile.New(cfg.File.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("file backend: %w", err)
		}
		src = file
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	if cfg.Cache.Enabled() {
		cached := cache.New(src, cache.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			TTL:      cfg.Cache.TTL,
		}, logger)
		src = cached
		closers = append(closers, cached.Close)
	}

	logger.Info("document store ready",
		zap.String("backend", cfg.Backend),
		zap.Bool("cache", cfg.Cache.Enabled()),
	)

	closeFn := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
	return src, closeFn, nil
}
