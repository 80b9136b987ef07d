// Package homebox is a minimal HTTP client for the Homebox API, covering
// only what label generation needs: logging in and fetching rendered asset
// labels.
package homebox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/homeboxlabs/labelgen/domain/assetlist"
)

// Client talks to one Homebox server.
type Client struct {
	baseURL       string
	maxRetries    int
	initialDelay  time.Duration
	backoffFactor float64
	httpClient    *http.Client
}

// Option is a functional option for Client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithMaxRetries sets the maximum retry count for retryable failures.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithInitialDelay sets the initial retry delay.
func WithInitialDelay(d time.Duration) Option {
	return func(c *Client) { c.initialDelay = d }
}

// WithBackoffFactor sets the backoff multiplier.
func WithBackoffFactor(f float64) Option {
	return func(c *Client) { c.backoffFactor = f }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Client for the Homebox server at serverURL. The "/api"
// prefix is appended here; pass the server root, e.g. "https://box.example.com".
func NewClient(serverURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(serverURL, "/") + "/api",
		maxRetries:    3,
		initialDelay:  time.Second,
		backoffFactor: 2.0,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Session holds the credentials returned by a successful login.
type Session struct {
	token           string
	attachmentToken string
	expiresAt       string
}

// Token returns the bearer token sent in the Authorization header.
func (s Session) Token() string { return s.token }

// AttachmentToken returns the token for attachment downloads.
func (s Session) AttachmentToken() string { return s.attachmentToken }

// ExpiresAt returns the server-reported expiry timestamp, verbatim.
func (s Session) ExpiresAt() string { return s.expiresAt }

// loginResponse mirrors the Homebox login response body.
type loginResponse struct {
	AttachmentToken string `json:"attachmentToken"`
	ExpiresAt       string `json:"expiresAt"`
	Token           string `json:"token"`
}

// Login authenticates against the Homebox server and returns a Session.
// Credentials are sent form-encoded, matching the Homebox web client.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("stayLoggedIn", "false")

	var session Session
	err := c.withRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/users/login", strings.NewReader(form.Encode()))
		if err != nil {
			return NewClientError("login", 0, "failed to create request", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return NewClientError("login", 0, "request failed", err)
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return NewClientError("login", resp.StatusCode, "failed to read response", err)
		}
		if resp.StatusCode != http.StatusOK {
			return NewClientError("login", resp.StatusCode, strings.TrimSpace(string(body)), nil)
		}

		var lr loginResponse
		if err := json.Unmarshal(body, &lr); err != nil {
			return NewClientError("login", resp.StatusCode, "failed to unmarshal response", err)
		}
		session = Session{
			token:           lr.Token,
			attachmentToken: lr.AttachmentToken,
			expiresAt:       lr.ExpiresAt,
		}
		return nil
	})
	if err != nil {
		return Session{}, err
	}
	return session, nil
}

// AssetLabel fetches the rendered label image for one asset. The returned
// bytes are the PNG as served by the Homebox label maker.
func (c *Client) AssetLabel(ctx context.Context, session Session, id assetlist.AssetID) ([]byte, error) {
	labelURL := fmt.Sprintf("%s/v1/labelmaker/asset/%s?print=false", c.baseURL, id)

	var label []byte
	err := c.withRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, labelURL, nil)
		if err != nil {
			return NewClientError("asset_label", 0, "failed to create request", err)
		}
		req.Header.Set("Authorization", session.Token())

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return NewClientError("asset_label", 0, "request failed", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			msg := fmt.Sprintf("label for asset %s unavailable (is the asset ID valid?)", id)
			return NewClientError("asset_label", resp.StatusCode, msg, nil)
		}

		label, err = io.ReadAll(resp.Body)
		if err != nil {
			return NewClientError("asset_label", resp.StatusCode, "failed to read label image", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return label, nil
}

// withRetry executes fn with exponential backoff on retryable failures.
func (c *Client) withRetry(ctx context.Context, fn func() error) error {
	delay := c.initialDelay
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}

		if attempt < c.maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay = time.Duration(float64(delay) * c.backoffFactor)
			}
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	var clientErr *ClientError
	if !extractError(err, &clientErr) {
		return false
	}
	switch clientErr.StatusCode() {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
