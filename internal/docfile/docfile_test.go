package docfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cars.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSource_ReadsEnvelope(t *testing.T) {
	path := writeFile(t, `{"total":2,"documents":[
		{"$id":"1","carname":"Toyota","models":"Corolla","years":"2019","price":15000,"condition":"Used","mileage":30000},
		{"$id":"2","carname":"Honda","models":"Civic","years":"2020","price":18000,"condition":"New","mileage":0}
	]}`)

	src, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path())

	records, err := src.ListDocuments(context.Background(), "ignored", "ignored")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "2", records[1].ID)
	require.NotNil(t, records[1].Mileage)
	assert.Equal(t, 0.0, *records[1].Mileage)
}

func TestSource_ReadsBareArrayWithFallbackIDs(t *testing.T) {
	path := writeFile(t, `[
		{"_id":"m1","carname":"Ford"},
		{"id":7,"carname":"Kia"}
	]`)

	src, err := New(path)
	require.NoError(t, err)
	records, err := src.ListDocuments(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "m1", records[0].ID)
	assert.Equal(t, "7", records[1].ID)
}

func TestSource_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", "   "},
		{"malformed", `{"documents": [`},
		{"no documents key", `{"total": 0}`},
		{"missing id", `[{"carname":"Ghost"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := New(writeFile(t, tt.body))
			require.NoError(t, err)
			_, err = src.ListDocuments(context.Background(), "", "")
			require.Error(t, err)
		})
	}
}

func TestSource_MissingFile(t *testing.T) {
	src, err := New(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	_, err = src.ListDocuments(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read document file")
}

func TestSource_CancelledContext(t *testing.T) {
	src, err := New(writeFile(t, `[]`))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.ListDocuments(ctx, "", "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew_EmptyPath(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestDecode_EmptyArray(t *testing.T) {
	docs, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, docs)
}
