// Package api implements the gateway to the HisabKitab REST backend: a single
// HTTP client that attaches the bearer credential to every outbound request
// and exposes verb methods to the typed services. Each call is a single round
// trip; there is no retry, no backoff and no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hisabkitab/cli/internal/common"
)

// Client is the shared outbound request path for all feature services.
// The session store is the only writer of the bearer token; requests read it
// under a shared lock.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken installs the bearer credential used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the bearer credential; subsequent requests go out
// unauthenticated.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently installed credential ("" when logged out).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Get performs a GET request and decodes the 2xx response body into out
// (skipped when out is nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

// Post sends body as JSON and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	r, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, "application/json", r, out)
}

// Put sends body as JSON and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	r, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, "application/json", r, out)
}

// Delete performs a DELETE request, ignoring any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, nil)
}

// PostForm sends form URL-encoded and decodes the response into out. The
// login endpoint is OAuth2 password flow and only accepts this encoding.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, nil, "application/x-www-form-urlencoded", body, out)
}

// Download performs a GET request and returns the raw response bytes,
// for binary export endpoints.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	var raw []byte
	err := c.do(ctx, http.MethodGet, path, nil, "", nil, &raw)
	return raw, err
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return strings.NewReader("{}"), nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return bytes.NewReader(data), nil
}

// do builds, authenticates and executes one request. Transport-level failures
// wrap common.ErrUnavailable; non-2xx responses become *Error. When out is
// *[]byte the body is returned raw, otherwise it is JSON-decoded.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, data)
	}

	switch dst := out.(type) {
	case nil:
		return nil
	case *[]byte:
		*dst = data
		return nil
	default:
		if len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
}
