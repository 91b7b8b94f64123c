// Package cache wraps a listing.Source with a Redis read-through cache.
//
// The whole collection is stored as one JSON value under
// carlot:docs:{database}:{collection} with a fixed TTL. Cache failures are
// logged and the wrapped source is used instead, so Redis being down never
// turns into a failed load.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/five82/carlot/internal/listing"
)

var _ listing.Source = (*Source)(nil)

const keyPrefix = "carlot:docs"

var errMiss = errors.New("cache miss")

// kv is the subset of Redis the cache needs.
type kv interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Source is a caching listing.Source.
type Source struct {
	next   listing.Source
	store  kv
	ttl    time.Duration
	logger *zap.Logger
}

// New connects lazily to Redis and wraps next.
func New(next listing.Source, opts Options, logger *zap.Logger) *Source {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return newSource(next, redisKV{client: client}, opts.TTL, logger)
}

func newSource(next listing.Source, store kv, ttl time.Duration, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{next: next, store: store, ttl: ttl, logger: logger.Named("cache")}
}

// Key returns the cache key for a collection.
func Key(databaseID, collectionID string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, databaseID, collectionID)
}

// ListDocuments serves a cached copy when present, otherwise reads through
// and stores the result.
func (s *Source) ListDocuments(ctx context.Context, databaseID, collectionID string) ([]listing.CarRecord, error) {
	key := Key(databaseID, collectionID)

	if records, err := s.lookup(ctx, key); err == nil {
		s.logger.Debug("cache hit", zap.String("key", key), zap.Int("count", len(records)))
		return records, nil
	} else if !errors.Is(err, errMiss) {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	records, err := s.next.ListDocuments(ctx, databaseID, collectionID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(records)
	if err != nil {
		s.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return records, nil
	}
	if err := s.store.Set(ctx, key, payload, s.ttl); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return records, nil
}

// Close releases the Redis connection.
func (s *Source) Close() error {
	return s.store.Close()
}

func (s *Source) lookup(ctx context.Context, key string) ([]listing.CarRecord, error) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var records []listing.CarRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode cached documents: %w", err)
	}
	if records == nil {
		records = []listing.CarRecord{}
	}
	return records, nil
}

type redisKV struct {
	client *redis.Client
}

func (r redisKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errMiss
	}
	return data, err
}

func (r redisKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r redisKV) Close() error {
	return r.client.Close()
}
