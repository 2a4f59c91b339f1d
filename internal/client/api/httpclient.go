package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hady-bs/blog-mobile-application/internal/client/models"
)

// HTTPClient implements Client over plain HTTP/JSON.
//
// No retry, no request de-duplication: one call, one request. The embedded
// http.Client carries no timeout by default; callers bound slow requests
// through the context.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient returns a client rooted at baseURL. A zero timeout leaves
// requests unbounded except for context cancellation.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

type credentialsRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type contentRequest struct {
	Content string `json:"content"`
}

// errorBody is the backend's error envelope. Not every endpoint fills it;
// a missing message falls back to the generic status-coded string.
type errorBody struct {
	Message string `json:"message"`
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// statusError turns a non-2xx response into a StatusError, salvaging a
// body-provided message when the backend sent one.
func (c *HTTPClient) statusError(resp *http.Response) error {
	se := &StatusError{Code: resp.StatusCode}
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
		se.Message = eb.Message
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s", ErrUnauthorized, se.Error())
	}
	return se
}

func (c *HTTPClient) Register(ctx context.Context, userName, password string) (string, error) {
	var resp tokenResponse
	req := credentialsRequest{UserName: userName, Password: password}
	if err := c.do(ctx, http.MethodPost, "users/api/register", "", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Login(ctx context.Context, userName, password string) (string, error) {
	var resp tokenResponse
	req := credentialsRequest{UserName: userName, Password: password}
	if err := c.do(ctx, http.MethodPost, "users/api/login", "", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "users/api/logout", token, nil, nil)
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodGet, "users/api/profile", token, nil, &p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (c *HTTPClient) ListBlogs(ctx context.Context) (models.BlogsPage, error) {
	var page models.BlogsPage
	if err := c.do(ctx, http.MethodGet, "blogs/api", "", nil, &page); err != nil {
		return models.BlogsPage{}, err
	}
	return page, nil
}

// ListBlogsPage passes page and limit through as query parameters; the
// server owns the pagination semantics.
func (c *HTTPClient) ListBlogsPage(ctx context.Context, page, limit int) (models.BlogsPage, error) {
	var result models.BlogsPage
	path := fmt.Sprintf("blogs/api?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &result); err != nil {
		return models.BlogsPage{}, err
	}
	return result, nil
}

func (c *HTTPClient) AddBlog(ctx context.Context, token, content string) (models.Blog, error) {
	var b models.Blog
	if err := c.do(ctx, http.MethodPost, "blogs/api", token, contentRequest{Content: content}, &b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

func (c *HTTPClient) UpdateBlog(ctx context.Context, token string, id int64, content string) (models.Blog, error) {
	var b models.Blog
	path := fmt.Sprintf("blogs/api/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, contentRequest{Content: content}, &b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

func (c *HTTPClient) DeleteBlog(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("blogs/api/%d", id), token, nil, nil)
}

// Ping probes server reachability with a minimal unauthenticated list
// request. Used by the connectivity watcher, not by any view.
func (c *HTTPClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return c.do(ctx, http.MethodGet, "blogs/api?page=1&limit=1", "", nil, nil)
}
