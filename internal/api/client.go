package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"

	"kembang/internal/domain"
	"kembang/internal/logging"
)

// Client talks to the backend REST API.
type Client struct {
	Base  string
	HTTP  *http.Client
	Token string
	Log   *logging.Logger
}

// New returns a client for base using httpClient, or http.DefaultClient when nil.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient}
}

// WithToken returns a copy of c that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}

var _ domain.BackendClient = (*Client)(nil)

func (c *Client) get(ctx context.Context, path string, opts any, out any) error {
	var params url.Values
	if opts != nil {
		v, err := query.Values(opts)
		if err != nil {
			return fmt.Errorf("api: encode query for %s: %w", path, err)
		}
		params = v
	}
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) put(ctx context.Context, path string, in any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("api %s %s: encode body: %w", method, path, err)
		}
		body = buf
	}

	u := c.Base + path
	if len(params) != 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("api %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	extra := map[string]any{"method": method, "path": path, "request_id": requestID}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.TimedEvent("request", start, extra, err)
		return fmt.Errorf("api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	extra["status"] = resp.StatusCode

	if resp.StatusCode/100 != 2 {
		apiErr := decodeError(resp, method, path)
		c.Log.TimedEvent("request", start, extra, apiErr)
		return apiErr
	}
	c.Log.TimedEvent("request", start, extra, nil)

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api %s %s: decode response: %w", method, path, err)
	}
	return nil
}
