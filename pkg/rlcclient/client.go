// Package rlcclient is the Go API client for the hub backend. It binds the
// session store to an http.Client: requests only leave with a usable bearer
// token, and a 401 response forces the session out exactly once.
package rlcclient

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

	"rlc-hub-be/pkg/authtoken"
	"rlc-hub-be/pkg/session"
)

// ErrAuthRequired is returned when no usable credential is held, or when the
// server rejects the one we sent. The caller should route to login.
var ErrAuthRequired = errors.New("rlcclient: authentication required")

// APIError is a non-401 error response decoded from the server envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rlcclient: %d %s", e.Status, e.Message)
}

// envelope mirrors the server's response wrapper.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	now     func() time.Time
}

type Option func(*Client)

// WithHTTPClient overrides the underlying transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithClock injects the time source used for the pre-flight token check.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func New(baseURL string, sess *session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: sess,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session exposes the bound session store.
func (c *Client) Session() *session.Store {
	return c.session
}

// do issues an authenticated JSON request. The credential is checked before
// any network traffic: an unusable token short-circuits to ErrAuthRequired.
// A 401 answer forces the session out with the token-expired reason, keeping
// feature state so the next login can restore it.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.doBody(ctx, method, path, reader, contentType, out)
}

// doBody is the raw variant of do for non-JSON payloads such as multipart
// uploads. It applies the same pre-flight check and 401 handling.
func (c *Client) doBody(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	id := c.session.Current()
	if !authtoken.IdentityUsable(id, c.now()) {
		return ErrAuthRequired
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+id.Token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Logout(ctx, session.ReasonTokenExpired, false)
		return ErrAuthRequired
	}

	return decodeResponse(resp, out)
}

// doUnauthenticated issues a request without a credential, for the public
// endpoints (register, password reset, plan catalog).
func (c *Client) doUnauthenticated(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var env envelope[json.RawMessage]
		message := http.StatusText(resp.StatusCode)
		if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
			message = env.Message
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// Login exchanges credentials at the form-encoded token endpoint and settles
// the session store. The /auth/me round trip fills in the profile fields the
// token payload does not carry.
func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.session.Login(ctx, func(ctx context.Context) (*authtoken.Identity, error) {
		form := url.Values{}
		form.Set("username", email)
		form.Set("password", password)

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/token", strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			raw, _ := io.ReadAll(resp.Body)
			var env envelope[json.RawMessage]
			message := http.StatusText(resp.StatusCode)
			if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
				message = env.Message
			}
			return nil, &APIError{Status: resp.StatusCode, Message: message}
		}

		var tokenResp struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
			return nil, err
		}
		if tokenResp.AccessToken == "" {
			return nil, &APIError{Status: resp.StatusCode, Message: "empty access token"}
		}

		id := &authtoken.Identity{Email: email, Token: tokenResp.AccessToken}

		me, err := c.fetchProfile(ctx, tokenResp.AccessToken)
		if err == nil && me != nil {
			id.Email = me.Email
			id.FirstName = me.FirstName
			id.LastName = me.LastName
			id.Role = me.Role
			id.TenantId = me.TenantId
		}
		return id, nil
	})
}

// Logout ends the session. clearMemory additionally wipes the departing
// identity's coach and report drafts.
func (c *Client) Logout(ctx context.Context, clearMemory bool) {
	c.session.Logout(ctx, session.ReasonManual, clearMemory)
}

func (c *Client) fetchProfile(ctx context.Context, token string) (*UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var profile UserProfile
	if err := decodeResponse(resp, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
