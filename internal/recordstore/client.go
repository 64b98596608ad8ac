// Package recordstore talks to the hosted table API (PostgREST dialect)
// that owns all durable state. The client is constructed once at the
// application root and handed to each repository; there is no package
// level singleton.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client issues per-table CRUD calls. An empty base URL or key is legal:
// calls will simply fail and the caller carries on (best-effort tool).
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) tableURL(table string) string {
	return c.baseURL + "/rest/v1/" + url.PathEscape(table)
}

func (c *Client) newRequest(ctx context.Context, method, u string, body []byte) (*http.Request, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// SelectAll fetches every row of table ordered by creation time
// descending and decodes the JSON array into dest.
func (c *Client) SelectAll(ctx context.Context, table string, dest any) error {
	u := c.tableURL(table) + "?select=*&order=created_at.desc"
	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &FetchError{Table: table, Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Table: table, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{Table: table, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &FetchError{Table: table, Err: err}
	}
	return nil
}

// InsertReturning inserts one row and decodes the single returned row
// into dest (the server assigns id and created_at).
func (c *Client) InsertReturning(ctx context.Context, table string, row any, dest any) error {
	body, err := json.Marshal(row)
	if err != nil {
		return &WriteError{Table: table, Op: "insert", Err: err}
	}
	req, err := c.newRequest(ctx, http.MethodPost, c.tableURL(table), body)
	if err != nil {
		return &WriteError{Table: table, Op: "insert", Err: err}
	}
	req.Header.Set("Prefer", "return=representation")
	// Ask for exactly one object back instead of a one-element array.
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &WriteError{Table: table, Op: "insert", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return &WriteError{Table: table, Op: "insert", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &WriteError{Table: table, Op: "insert", Err: err}
	}
	return nil
}

// UpdateByID patches the row with the given id. The response body is
// not consulted; callers apply exactly what they requested on success.
func (c *Client) UpdateByID(ctx context.Context, table, id string, patch any) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return &WriteError{Table: table, Op: "update", Err: err}
	}
	u := c.tableURL(table) + "?id=eq." + url.QueryEscape(id)
	req, err := c.newRequest(ctx, http.MethodPatch, u, body)
	if err != nil {
		return &WriteError{Table: table, Op: "update", Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &WriteError{Table: table, Op: "update", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return &WriteError{Table: table, Op: "update", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	return nil
}

// DeleteByID deletes the row with the given id. Deleting an id the
// server doesn't know is a success (PostgREST returns 204 either way).
func (c *Client) DeleteByID(ctx context.Context, table, id string) error {
	u := c.tableURL(table) + "?id=eq." + url.QueryEscape(id)
	req, err := c.newRequest(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return &WriteError{Table: table, Op: "delete", Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &WriteError{Table: table, Op: "delete", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return &WriteError{Table: table, Op: "delete", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	return nil
}
