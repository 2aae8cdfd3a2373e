// ABOUTME: HTTP client for the cloud database (PostgREST-shaped API).
// ABOUTME: Per-table select and bulk upsert, scoped by equality filters.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrRemoteCall wraps any network or query failure against the cloud
// database. Sync treats these as per-collection failures.
var ErrRemoteCall = errors.New("remote call failed")

// Client talks to a Supabase-style backend: a REST endpoint per table under
// /rest/v1 and a GoTrue auth endpoint under /auth/v1.
type Client struct {
	baseURL    string
	anonKey    string
	token      string
	httpClient *http.Client
}

// New creates a client. token may be empty for unauthenticated use; calls
// then carry only the anon key and the backend's row policies apply.
func New(baseURL, anonKey, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Select fetches all rows of table matching the equality filters and
// decodes the JSON array into out.
func (c *Client) Select(ctx context.Context, table string, filters map[string]string, out any) error {
	q := url.Values{}
	q.Set("select", "*")
	for col, val := range filters {
		q.Set(col, "eq."+val)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	body, err := c.do(req)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("select %s: decode rows: %w", table, err)
	}
	return nil
}

// Upsert writes rows (a slice of row structs) to table, merging on the
// primary key so repeated pushes of the same rows are idempotent.
func (c *Client) Upsert(ctx context.Context, table string, rows any) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("upsert %s: encode rows: %w", table, err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")

	if _, err := c.do(req); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.anonKey)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrRemoteCall, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRemoteCall, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
