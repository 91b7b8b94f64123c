package listing

import (
	"context"
	"errors"
	"fmt"
)

// LoadFailedMessage is the only text users see when a load fails.
const LoadFailedMessage = "Failed to fetch car listings."

// Source reads every document of a collection in one call.
type Source interface {
	ListDocuments(ctx context.Context, databaseID, collectionID string) ([]CarRecord, error)
}

// Collection names the store location of the listings.
type Collection struct {
	DatabaseID   string
	CollectionID string
}

func (c Collection) String() string {
	return c.DatabaseID + "/" + c.CollectionID
}

// LoadError reports a failed read of the collection.
type LoadError struct {
	Collection Collection
	Err        error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Collection, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Message returns the generic user-facing text.
func (e *LoadError) Message() string {
	return LoadFailedMessage
}

// LoadResult carries the outcome of an asynchronous load.
type LoadResult struct {
	Records []CarRecord
	Err     error
}

// Load reads the whole collection with exactly one call to src. On failure no
// records are returned and err is a *LoadError.
func Load(ctx context.Context, src Source, coll Collection) ([]CarRecord, error) {
	if src == nil {
		return nil, &LoadError{Collection: coll, Err: errors.New("no document source configured")}
	}
	records, err := src.ListDocuments(ctx, coll.DatabaseID, coll.CollectionID)
	if err != nil {
		return nil, &LoadError{Collection: coll, Err: err}
	}
	if records == nil {
		records = []CarRecord{}
	}
	return records, nil
}

// LoadAsync runs Load on its own goroutine. The returned channel receives
// exactly one result and is then closed. A panicking source is reported as a
// *LoadError instead of crashing the caller.
func LoadAsync(ctx context.Context, src Source, coll Collection) <-chan LoadResult {
	out := make(chan LoadResult, 1)
	go func() {
		defer close(out)
		out <- safeLoad(ctx, src, coll)
	}()
	return out
}

func safeLoad(ctx context.Context, src Source, coll Collection) (res LoadResult) {
	defer func() {
		if r := recover(); r != nil {
			res = LoadResult{Err: &LoadError{Collection: coll, Err: fmt.Errorf("source panicked: %v", r)}}
		}
	}()
	records, err := Load(ctx, src, coll)
	return LoadResult{Records: records, Err: err}
}
