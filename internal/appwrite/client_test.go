package appwrite

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint_Normalizes(t *testing.T) {
	u, err := parseEndpoint("cloud.appwrite.io/v1/?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "cloud.appwrite.io", u.Host)
	assert.Equal(t, "/v1", u.Path)
	assert.Empty(t, u.RawQuery)
	assert.Empty(t, u.Fragment)

	_, err = parseEndpoint("  ")
	require.Error(t, err)
}

func TestNewClient_RequiresProject(t *testing.T) {
	_, err := NewClient("http://localhost/v1", " ", "")
	require.Error(t, err)
}

func TestClient_ListDocumentsMapsEnvelope(t *testing.T) {
	t.Parallel()

	var gotPath, gotProject, gotKey, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotProject = r.Header.Get("X-Appwrite-Project")
		gotKey = r.Header.Get("X-Appwrite-Key")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total": 2,
			"documents": [
				{"$id": "a1", "carname": "Toyota", "models": "Corolla", "years": "2019",
				 "price": 15000, "condition": "Used", "mileage": 30000, "images": "https://img/a1.jpg"},
				{"$id": "b2", "carname": "Honda", "models": "Civic", "years": 2020,
				 "price": "9150.5", "images": ["", "https://img/b2.jpg"]}
			]
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/v1/", "proj", "secret")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	records, err := c.ListDocuments(ctx, "cars", "listings")
	require.NoError(t, err)

	assert.Equal(t, "/v1/databases/cars/collections/listings/documents", gotPath)
	assert.Equal(t, "proj", gotProject)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, defaultUserAgent, gotAgent)

	require.Len(t, records, 2)
	first := records[0]
	assert.Equal(t, "a1", first.ID)
	require.NotNil(t, first.CarName)
	assert.Equal(t, "Toyota", *first.CarName)
	require.NotNil(t, first.Price)
	assert.Equal(t, 15000.0, *first.Price)
	assert.Equal(t, "https://img/a1.jpg", first.ImageURI)

	second := records[1]
	require.NotNil(t, second.Year)
	assert.Equal(t, "2020", *second.Year)
	require.NotNil(t, second.Price)
	assert.Equal(t, 9150.5, *second.Price)
	assert.Nil(t, second.Condition)
	assert.Nil(t, second.Mileage)
	assert.Equal(t, "https://img/b2.jpg", second.ImageURI)
}

func TestClient_OmitsKeyHeaderWhenUnset(t *testing.T) {
	t.Parallel()

	keyPresent := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, keyPresent = r.Header["X-Appwrite-Key"]
		_, _ = w.Write([]byte(`{"total":0,"documents":[]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "proj", "")
	require.NoError(t, err)
	records, err := c.ListDocuments(context.Background(), "cars", "listings")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
	assert.False(t, keyPresent)
}

func TestClient_ErrorStatusIncludesAppwriteMessage(t *testing.T) {
	t.Parallel()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Collection with the requested ID could not be found.","code":404,"type":"collection_not_found"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "proj", "")
	require.NoError(t, err)
	_, err = c.ListDocuments(context.Background(), "cars", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "could not be found")
	assert.Equal(t, 1, calls, "client must not retry")
}

func TestClient_MalformedBodyFails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"documents": [`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "proj", "")
	require.NoError(t, err)
	_, err = c.ListDocuments(context.Background(), "cars", "listings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_DocumentWithoutIDFails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total":1,"documents":[{"carname":"Ghost"}]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "proj", "")
	require.NoError(t, err)
	_, err = c.ListDocuments(context.Background(), "cars", "listings")
	require.Error(t, err)
}

func TestClient_CancelledContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total":0,"documents":[]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "proj", "")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.ListDocuments(ctx, "cars", "listings")
	require.Error(t, err)
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	_, err := c.ListDocuments(context.Background(), "cars", "listings")
	require.Error(t, err)
}
