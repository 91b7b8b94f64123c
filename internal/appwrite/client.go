package appwrite

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/carlot/internal/listing"
)

var _ listing.Source = (*Client)(nil)

const (
	defaultUserAgent = "carlot/0.1"
	requestTimeout   = 15 * time.Second
	maxErrorBody     = 512
)

// Client talks to the Appwrite databases API.
type Client struct {
	baseURL   *url.URL
	projectID string
	apiKey    string
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for endpoint (for example
// https://cloud.appwrite.io/v1). apiKey may be empty for collections readable
// by any client.
func NewClient(endpoint, projectID, apiKey string) (*Client, error) {
	base, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("appwrite project id is empty")
	}
	return &Client{
		baseURL:   base,
		projectID: projectID,
		apiKey:    strings.TrimSpace(apiKey),
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// documentList is the envelope returned by the list endpoint.
type documentList struct {
	Total     int64            `json:"total"`
	Documents []map[string]any `json:"documents"`
}

// ListDocuments fetches every document the endpoint returns for the
// collection, in store order.
func (c *Client) ListDocuments(ctx context.Context, databaseID, collectionID string) ([]listing.CarRecord, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	databaseID = strings.TrimSpace(databaseID)
	collectionID = strings.TrimSpace(collectionID)
	if databaseID == "" || collectionID == "" {
		return nil, fmt.Errorf("database and collection ids are required")
	}

	reqURL := c.baseURL.JoinPath("databases", databaseID, "collections", collectionID, "documents")
	var payload documentList
	if err := c.do(ctx, reqURL, &payload); err != nil {
		return nil, err
	}

	records := make([]listing.CarRecord, 0, len(payload.Documents))
	for i, doc := range payload.Documents {
		id, _ := doc["$id"].(string)
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("document %d has no $id", i)
		}
		records = append(records, listing.FromDocument(id, doc))
	}
	return records, nil
}

func (c *Client) do(ctx context.Context, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Appwrite-Project", c.projectID)
	if c.apiKey != "" {
		req.Header.Set("X-Appwrite-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return statusError(reqURL.Path, resp)
	}
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError includes Appwrite's error message when the body carries one.
func statusError(path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var apiErr struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	if json.Unmarshal(body, &apiErr) == nil && strings.TrimSpace(apiErr.Message) != "" {
		return fmt.Errorf("appwrite %s returned status %d: %s", path, resp.StatusCode, apiErr.Message)
	}
	return fmt.Errorf("appwrite %s returned status %d", path, resp.StatusCode)
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("appwrite endpoint is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
