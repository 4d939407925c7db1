// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// package api is the typed HTTP client for the remote Achei service. Every
// endpoint has explicit request/response types; payloads that don't match
// are a decode error instead of silently propagating missing fields.
//
// The client never retries and never caches: one call, one request, and any
// failure is returned to the caller to translate into a user-facing message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/acheiapp/achei/internal/logging"
	"github.com/acheiapp/achei/internal/session"
)

// ErrNoSession is returned when an authenticated endpoint is called without
// an active session. No network request is made in that case.
var ErrNoSession = errors.New("no active session")

// APIError is a non-2xx response from the service, carrying the
// server-provided message when one was present.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// Config carries the settings the client needs from the application config.
type Config struct {
	// BaseURL is the API root, e.g. https://api.achei.example/v1.
	BaseURL string
	// Timeout bounds each request. Zero means 15s.
	Timeout time.Duration
	// HTTPClient overrides the transport; used by tests.
	HTTPClient *http.Client
}

// Client talks to the remote Achei service. Construct it once and share it;
// it is safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Manager
}

// New builds a client bound to the given session manager. The manager is
// consulted on every authenticated call, so a login or logout takes effect
// immediately without rebuilding the client.
func New(cfg Config, sessions *session.Manager) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     hc,
		sessions: sessions,
	}
}

// errorBody covers the two error shapes the service emits: a flat
// {"message": ...} and the envelope {"error": {"code", "message"}}.
type errorBody struct {
	Message string `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do issues one request. When authed is true the bearer token is attached;
// a missing token fails with ErrNoSession before any network activity.
// A JSON content type is set whenever a body is sent. out may be nil for
// endpoints whose response body is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var token string
	if authed {
		var ok bool
		token, ok = c.sessions.Token()
		if !ok {
			return ErrNoSession
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logging.Debugf("api: %s %s", method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// decodeError turns a non-2xx response into an *APIError, preserving the
// server's message when the body is parseable.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var eb errorBody
	if json.Unmarshal(data, &eb) == nil {
		if eb.Error != nil && eb.Error.Message != "" {
			apiErr.Code = eb.Error.Code
			apiErr.Message = eb.Error.Message
		} else if eb.Message != "" {
			apiErr.Message = eb.Message
		}
	}
	return apiErr
}
