// Package docfile serves car listings from a JSON file on disk.
//
// The file holds either the Appwrite list envelope
// ({"total": n, "documents": [...]}) or a bare array of documents. Documents
// are keyed by "$id", falling back to "_id" and then "id".
package docfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/five82/carlot/internal/listing"
)

var _ listing.Source = (*Source)(nil)

// Source reads the file on every ListDocuments call.
type Source struct {
	path string
}

// New returns a Source for path. The file is not opened until the first load.
func New(path string) (*Source, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("document file path is empty")
	}
	return &Source{path: path}, nil
}

// Path returns the backing file.
func (s *Source) Path() string {
	return s.path
}

// ListDocuments ignores the database and collection ids; the file is the
// collection.
func (s *Source) ListDocuments(ctx context.Context, _, _ string) ([]listing.CarRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read document file: %w", err)
	}
	docs, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	records := make([]listing.CarRecord, 0, len(docs))
	for i, doc := range docs {
		id := documentID(doc)
		if id == "" {
			return nil, fmt.Errorf("document %d has no id", i)
		}
		records = append(records, listing.FromDocument(id, doc))
	}
	return records, nil
}

// Decode parses an envelope or a bare array of documents.
func Decode(data []byte) ([]map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty document file")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if trimmed[0] == '[' {
		var docs []map[string]any
		if err := dec.Decode(&docs); err != nil {
			return nil, err
		}
		return docs, nil
	}

	var envelope struct {
		Documents []map[string]any `json:"documents"`
	}
	if err := dec.Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Documents == nil {
		return nil, errors.New(`missing "documents" array`)
	}
	return envelope.Documents, nil
}

func documentID(doc map[string]any) string {
	for _, key := range []string{"$id", "_id", "id"} {
		switch v := doc[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}
