// Package mongostore reads car listings from a MongoDB collection.
//
// The database id and collection id from config name the MongoDB database and
// collection. Every document is read with a single unfiltered Find.
package mongostore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/five82/carlot/internal/listing"
)

var _ listing.Source = (*Store)(nil)

// Options configures the connection.
type Options struct {
	URI            string
	ConnectTimeout time.Duration
}

// Store is a listing.Source backed by MongoDB.
type Store struct {
	client *mongo.Client
}

// New creates a client for opts.URI. It does not ping the server: an
// unreachable server surfaces as a failed load rather than a startup error.
func New(ctx context.Context, opts Options) (*Store, error) {
	uri := strings.TrimSpace(opts.URI)
	if uri == "" {
		return nil, fmt.Errorf("mongo uri is empty")
	}
	clientOpts := options.Client().ApplyURI(uri)
	if opts.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(opts.ConnectTimeout)
		clientOpts.SetServerSelectionTimeout(opts.ConnectTimeout)
	}
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	return &Store{client: client}, nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *mongo.Client) *Store {
	return &Store{client: client}
}

// ListDocuments returns every document of databaseID.collectionID in natural
// order.
func (s *Store) ListDocuments(ctx context.Context, databaseID, collectionID string) ([]listing.CarRecord, error) {
	if s == nil || s.client == nil {
		return nil, fmt.Errorf("mongo store is not connected")
	}
	coll := s.client.Database(databaseID).Collection(collectionID)
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find %s.%s: %w", databaseID, collectionID, err)
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read cursor: %w", err)
	}

	records := make([]listing.CarRecord, 0, len(docs))
	for _, doc := range docs {
		id := documentID(doc["_id"])
		records = append(records, listing.FromDocument(id, plain(doc)))
	}
	return records, nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func documentID(v any) string {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// plain converts BSON-specific value types into the loose types
// listing.FromDocument understands.
func plain(doc bson.M) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case primitive.A:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = plainValue(item)
		}
		return items
	case primitive.Decimal128:
		return t.String()
	case primitive.ObjectID:
		return t.Hex()
	default:
		return v
	}
}
