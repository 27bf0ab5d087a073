// Package jira is a minimal client for the Jira REST APIs this tool needs:
// saved filters (/rest/api/2) and agile boards (/rest/agile/1.0).
//
// The client authenticates with Basic auth (Atlassian Cloud username + API
// token) or a Bearer personal access token (Red Hat Jira, auto-detected from
// the instance hostname). It performs single best-effort calls: no retries,
// no backoff, and no pagination.
package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/southerncoder/jirasweep/pkg/logger"
)

var log = logger.New("jira:client")

// AuthMode selects how credentials are sent.
type AuthMode string

const (
	// AuthBasic sends username:token Basic credentials (Atlassian Cloud).
	AuthBasic AuthMode = "basic"
	// AuthBearer sends the token as a Bearer personal access token
	// (Red Hat Jira).
	AuthBearer AuthMode = "bearer"
)

// Client talks to one Jira instance.
type Client struct {
	baseURL    string
	username   string
	token      string
	authMode   AuthMode
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAuthMode forces a specific auth mode instead of host auto-detection.
func WithAuthMode(mode AuthMode) Option {
	return func(c *Client) { c.authMode = mode }
}

// New creates a client for the Jira instance at baseURL. A trailing slash on
// baseURL is tolerated. Instances on issues.redhat.com default to Bearer
// auth; everything else uses Basic auth.
func New(baseURL, username, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		token:    token,
		authMode: AuthBasic,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	if strings.Contains(strings.ToLower(baseURL), "issues.redhat.com") {
		c.authMode = AuthBearer
	}
	for _, opt := range opts {
		opt(c)
	}
	log.Printf("Client created: base=%s auth=%s", c.baseURL, c.authMode)
	return c
}

// BaseURL returns the normalized instance URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Auth returns the active auth mode.
func (c *Client) Auth() AuthMode { return c.authMode }

// APIError is a non-2xx response from Jira.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Snippet    string
}

func (e *APIError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("jira: %s %s returned %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("jira: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Snippet)
}

const errorSnippetLimit = 200

// do issues one request and decodes a JSON response into out (which may be
// nil for endpoints with no useful body, such as DELETE).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.authMode == AuthBearer {
		req.Header.Set("Authorization", "Bearer "+c.token)
	} else {
		req.SetBasicAuth(c.username, c.token)
	}

	log.Printf("%s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorSnippetLimit))
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Snippet:    strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// Myself returns the authenticated user, verifying that the credentials and
// instance URL work at all.
func (c *Client) Myself(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/rest/api/2/myself", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
