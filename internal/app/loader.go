package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/carlot/internal/listing"
	"github.com/five82/carlot/internal/state"
)

// StartLoader moves the store into Loading and reads the collection on a
// background goroutine. It returns immediately; the returned channel closes
// once the result has been applied. If the store has already left Idle no
// load is started and the channel is closed straight away.
func StartLoader(ctx context.Context, store *state.Store, src listing.Source, coll listing.Collection, logger *zap.Logger) <-chan struct{} {
	if logger == nil {
		logger = zap.NewNop()
	}
	done := make(chan struct{})
	if !store.BeginLoad() {
		logger.Warn("load already started", zap.String("collection", coll.String()))
		close(done)
		return done
	}

	started := time.Now()
	results := listing.LoadAsync(ctx, src, coll)
	go func() {
		defer close(done)
		res := <-results
		apply(store, res, coll, time.Since(started), logger)
	}()
	return done
}

func apply(store *state.Store, res listing.LoadResult, coll listing.Collection, elapsed time.Duration, logger *zap.Logger) {
	if res.Err != nil {
		logger.Error("listings load failed",
			zap.String("collection", coll.String()),
			zap.Duration("elapsed", elapsed),
			zap.Error(res.Err),
		)
	} else {
		if dups := listing.DuplicateIDs(res.Records); len(dups) > 0 {
			logger.Warn("duplicate listing ids", zap.Strings("ids", dups))
		}
		logger.Info("listings loaded",
			zap.String("collection", coll.String()),
			zap.Int("count", len(res.Records)),
			zap.Duration("elapsed", elapsed),
		)
	}
	if !store.CompleteLoad(res) {
		logger.Warn("load result discarded", zap.String("phase", store.Snapshot().Phase.String()))
	}
}
