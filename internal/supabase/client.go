package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const restPath = "/rest/v1/"

// Client talks to the Supabase PostgREST endpoint. Row-level security is
// enforced by the store itself: requests carry the anon key plus the user's
// bearer token, unless the elevated service-role key is selected.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
}

// NewClient creates a PostgREST client. serviceKey may be empty, in which
// case elevated access silently degrades to the anon key.
func NewClient(baseURL, anonKey, serviceKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		anonKey:    anonKey,
		serviceKey: serviceKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// HasServiceRole reports whether elevated access is actually available.
func (c *Client) HasServiceRole() bool {
	return c.serviceKey != ""
}

// Select performs a filtered read on a table.
func (c *Client) Select(ctx context.Context, access Access, table string, params url.Values, result interface{}) error {
	if err := c.doRequest(ctx, http.MethodGet, table, params, nil, "", access, result); err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	return nil
}

// Insert creates rows and decodes the created representation into result.
func (c *Client) Insert(ctx context.Context, access Access, table string, body interface{}, result interface{}) error {
	if err := c.doRequest(ctx, http.MethodPost, table, nil, body, "return=representation", access, result); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// Upsert creates or merges rows on the given conflict target. The store's
// uniqueness constraint resolves concurrent duplicates, so the caller never
// needs a read-then-write cycle.
func (c *Client) Upsert(ctx context.Context, access Access, table, onConflict string, body interface{}, result interface{}) error {
	params := url.Values{}
	params.Set("on_conflict", onConflict)
	prefer := "resolution=merge-duplicates,return=representation"
	if err := c.doRequest(ctx, http.MethodPost, table, params, body, prefer, access, result); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

// Update patches rows matching params and decodes the updated rows.
func (c *Client) Update(ctx context.Context, access Access, table string, params url.Values, body interface{}, result interface{}) error {
	if err := c.doRequest(ctx, http.MethodPatch, table, params, body, "return=representation", access, result); err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return nil
}

// Delete removes rows matching params and decodes the deleted rows.
func (c *Client) Delete(ctx context.Context, access Access, table string, params url.Values, result interface{}) error {
	if err := c.doRequest(ctx, http.MethodDelete, table, params, nil, "return=representation", access, result); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, table string, params url.Values, body interface{}, prefer string, access Access, result interface{}) error {
	fullURL := c.baseURL + restPath + table
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	apiKey, bearer := c.credentials(access)
	req.Header.Set("apikey", apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// credentials resolves the apikey and bearer pair for an Access. Elevated
// access without a configured service key falls back to the anon key.
func (c *Client) credentials(access Access) (apiKey, bearer string) {
	if access.Elevated && c.serviceKey != "" {
		return c.serviceKey, c.serviceKey
	}
	if access.Token != "" {
		return c.anonKey, access.Token
	}
	return c.anonKey, c.anonKey
}
