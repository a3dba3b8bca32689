// ABOUTME: HTTP client for the mediaforge backend API
// ABOUTME: Attaches the bearer token to every request and enforces the blanket 401 policy

package api

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

	"github.com/google/uuid"
)

// ErrUnauthorized is returned for any 401 response, after the persisted
// token has been cleared.
var ErrUnauthorized = errors.New("authentication required")

// TokenStore persists the bearer credential between runs
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// APIError is a non-2xx backend response with a decoded detail message
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return e.Detail
}

// ErrorMessage extracts a user-facing message from err, falling back to
// the given string for transport errors and unreadable payloads.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if errors.Is(err, ErrUnauthorized) {
		return "Your session has expired. Please log in again."
	}
	return fallback
}

// Client is the API gateway for the mediaforge backend
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenStore
	onUnauthorized func()
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used in tests)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUnauthorizedHandler registers a hook invoked on any 401 response,
// after the persisted token has been cleared.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates an API client for the given base URL, e.g.
// http://localhost:8000/api/v1
func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newRequest builds a request with the auth and tracing headers attached
func (c *Client) newRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.tokens != nil {
		if token, err := c.tokens.Load(); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// send executes a request and decodes the response into out (when non-nil)
func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(req.Context(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return c.handleUnauthorized(resp)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// doJSON sends a JSON request body and decodes the JSON response
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// doForm sends a URL-encoded form body. Only the login endpoint uses this;
// the backend's auth route expects form fields rather than JSON.
func (c *Client) doForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req, out)
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleUnauthorized enforces the blanket 401 policy: drop the persisted
// token and notify the registered hook, regardless of which endpoint failed.
func (c *Client) handleUnauthorized(resp *http.Response) error {
	if c.tokens != nil {
		c.tokens.Clear()
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	var errResp struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
		return fmt.Errorf("%s: %w", errResp.Detail, ErrUnauthorized)
	}
	return ErrUnauthorized
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return &APIError{StatusCode: resp.StatusCode, Detail: errResp.Detail}
}

// Register calls POST /auth/register
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login calls POST /auth/login. The backend expects form-encoded
// username/password fields, with the email as the username.
func (c *Client) Login(ctx context.Context, email, password string) (*Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var token Token
	if err := c.doForm(ctx, "/auth/login", form, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// GetMe calls GET /auth/me
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh calls POST /auth/refresh
func (c *Client) Refresh(ctx context.Context) (*Token, error) {
	var token Token
	if err := c.doJSON(ctx, http.MethodPost, "/auth/refresh", nil, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// GenerateImage calls POST /images/generate
func (c *Client) GenerateImage(ctx context.Context, req *ImageRequest) (*Generation, error) {
	var gen Generation
	if err := c.doJSON(ctx, http.MethodPost, "/images/generate", req, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

// GenerateBanner calls POST /images/banner
func (c *Client) GenerateBanner(ctx context.Context, req *BannerRequest) (*Generation, error) {
	var gen Generation
	if err := c.doJSON(ctx, http.MethodPost, "/images/banner", req, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

// GenerateLogo calls POST /images/logo
func (c *Client) GenerateLogo(ctx context.Context, req *LogoRequest) (*Generation, error) {
	var gen Generation
	if err := c.doJSON(ctx, http.MethodPost, "/images/logo", req, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

// RemoveBackground calls POST /images/remove-background
func (c *Client) RemoveBackground(ctx context.Context, req *RemoveBackgroundRequest) (*Generation, error) {
	var gen Generation
	if err := c.doJSON(ctx, http.MethodPost, "/images/remove-background", req, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

// ImageHistory calls GET /images/history
func (c *Client) ImageHistory(ctx context.Context, limit, offset int) ([]Generation, error) {
	var items []Generation
	path := fmt.Sprintf("/images/history?limit=%d&offset=%d", limit, offset)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GenerateVideo calls POST /videos/generate
func (c *Client) GenerateVideo(ctx context.Context, req *VideoRequest) (*Generation, error) {
	var gen Generation
	if err := c.doJSON(ctx, http.MethodPost, "/videos/generate", req, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

// GeneratePresenter calls POST /videos/presenter
func (c *Client) GeneratePresenter(ctx context.Context, req *PresenterRequest) (*Generation, error) {
	var gen Generation
	if err := c.doJSON(ctx, http.MethodPost, "/videos/presenter", req, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

// GenerateVoiceover calls POST /videos/voiceover
func (c *Client) GenerateVoiceover(ctx context.Context, req *VoiceoverRequest) (*Generation, error) {
	var gen Generation
	if err := c.doJSON(ctx, http.MethodPost, "/videos/voiceover", req, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

// VideoStatus calls GET /videos/{id}/status
func (c *Client) VideoStatus(ctx context.Context, id string) (*Generation, error) {
	var gen Generation
	if err := c.doJSON(ctx, http.MethodGet, "/videos/"+id+"/status", nil, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

// VideoHistory calls GET /videos/history
func (c *Client) VideoHistory(ctx context.Context, limit, offset int) ([]Generation, error) {
	var items []Generation
	path := fmt.Sprintf("/videos/history?limit=%d&offset=%d", limit, offset)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetCredits calls GET /users/credits
func (c *Client) GetCredits(ctx context.Context) (*CreditsBalance, error) {
	var balance CreditsBalance
	if err := c.doJSON(ctx, http.MethodGet, "/users/credits", nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// UpdateProfile calls PATCH /users/me
func (c *Client) UpdateProfile(ctx context.Context, req *ProfileUpdate) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPatch, "/users/me", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserHistory calls GET /users/history
func (c *Client) UserHistory(ctx context.Context, limit, offset int) (*HistoryPage, error) {
	var page HistoryPage
	path := fmt.Sprintf("/users/history?limit=%d&offset=%d", limit, offset)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetStats calls GET /users/stats
func (c *Client) GetStats(ctx context.Context) (*UsageStats, error) {
	var stats UsageStats
	if err := c.doJSON(ctx, http.MethodGet, "/users/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminListUsers calls GET /admin/users
func (c *Client) AdminListUsers(ctx context.Context, limit, offset int) ([]User, error) {
	var users []User
	path := fmt.Sprintf("/admin/users?limit=%d&offset=%d", limit, offset)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminGetUser calls GET /admin/users/{id}
func (c *Client) AdminGetUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/admin/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminUpdateUser calls PATCH /admin/users/{id}
func (c *Client) AdminUpdateUser(ctx context.Context, id string, req *AdminUserUpdate) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPatch, "/admin/users/"+id, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminAdjustCredits calls POST /admin/users/{id}/credits
func (c *Client) AdminAdjustCredits(ctx context.Context, id string, req *CreditsAdjustment) (*CreditsReceipt, error) {
	var receipt CreditsReceipt
	if err := c.doJSON(ctx, http.MethodPost, "/admin/users/"+id+"/credits", req, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// AdminDeleteUser calls DELETE /admin/users/{id}
func (c *Client) AdminDeleteUser(ctx context.Context, id string) (*DeleteReceipt, error) {
	var receipt DeleteReceipt
	if err := c.doJSON(ctx, http.MethodDelete, "/admin/users/"+id, nil, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// AdminAnalytics calls GET /admin/analytics
func (c *Client) AdminAnalytics(ctx context.Context) (*Analytics, error) {
	var analytics Analytics
	if err := c.doJSON(ctx, http.MethodGet, "/admin/analytics", nil, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// Health calls GET /health. The health endpoint lives at the server root,
// outside the versioned API prefix.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	u.Path = "/health"
	u.RawQuery = ""

	req, err := c.newRequest(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	var health HealthStatus
	if err := c.send(req, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
