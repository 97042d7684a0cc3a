// Package platform implements the Owl & Lion backend API client. It handles
// all communication with the platform: the authorization-code exchange,
// session verification, account registration, and student profile CRUD.
//
// Every request reads the bearer token from the session token store at call
// time, so a token set by the auth flow is observed by the very next call.
// The client performs no retries and no token refresh; failures surface to
// the caller, which decides how to recover.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/owl-lion/access-hub/internal/domain/profile"
	"github.com/owl-lion/access-hub/internal/domain/session"
	"github.com/owl-lion/access-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// ClientConfig contains configuration for the platform API client.
type ClientConfig struct {
	// BaseURL is the backend base URL, e.g. "https://customized-training.org".
	BaseURL string

	// Tokens is the session token store read on every request.
	Tokens session.TokenStore

	// Timeout is the HTTP request timeout.
	Timeout time.Duration

	// Logger for structured logging.
	Logger *slog.Logger

	// Debug enables request logging.
	Debug bool
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig(baseURL string, tokens session.TokenStore) ClientConfig {
	return ClientConfig{
		BaseURL: baseURL,
		Tokens:  tokens,
		Timeout: 30 * time.Second,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// CLIENT
// ══════════════════════════════════════════════════════════════════════════════

// Client is the platform API client.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     *slog.Logger
	mapper     *Mapper
}

// NewClient creates a new platform API client.
func NewClient(config ClientConfig) *Client {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Tokens == nil {
		config.Tokens = session.NewInMemoryTokenStore()
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: config.Logger,
		mapper: NewMapper(),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// AUTHENTICATION OPERATIONS
// ══════════════════════════════════════════════════════════════════════════════

// LoginResult is the outcome of a successful code exchange.
type LoginResult struct {
	AccessToken string
	UserID      string
	Role        session.Role
}

// Login exchanges an authorization code and the callback URL for a bearer
// token. The returned token is NOT stored here; the auth flow owns the
// write into the token store.
func (c *Client) Login(ctx context.Context, code, redirectURI string) (*LoginResult, error) {
	body := LoginRequestDTO{Code: code, RedirectURI: redirectURI}

	var resp LoginResponseDTO
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &LoginResult{
		AccessToken: resp.AccessToken,
		UserID:      resp.UserID,
		Role:        session.ParseRole(resp.Role),
	}, nil
}

// Me calls the who-am-I endpoint with the stored token. Any non-2xx status
// means "not authenticated" and comes back as an *APIError.
func (c *Client) Me(ctx context.Context) (userID string, role session.Role, err error) {
	var resp IdentityDTO
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return "", session.RoleUnset, fmt.Errorf("me: %w", err)
	}
	userID, role = c.mapper.IdentityFromDTO(resp)
	return userID, role, nil
}

// SignUp is the account registration payload.
type SignUp struct {
	UserID      string
	DisplayName string
	Email       string
	Role        session.Role
}

// Register creates a new account. A 422 response with structured detail
// comes back as a *ValidationError so callers can surface per-field
// messages; any other failure status is an *APIError.
func (c *Client) Register(ctx context.Context, signUp SignUp) error {
	body := RegisterRequestDTO{
		UserID:      signUp.UserID,
		DisplayName: signUp.DisplayName,
		Email:       signUp.Email,
		Role:        signUp.Role.String(),
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT OPERATIONS
// ══════════════════════════════════════════════════════════════════════════════

// GetStudent fetches a single student profile by campus ID.
func (c *Client) GetStudent(ctx context.Context, studentID string) (*profile.StudentProfile, error) {
	path := fmt.Sprintf("/api/students/%s", url.PathEscape(studentID))

	var dto StudentDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, fmt.Errorf("get student %s: %w", studentID, err)
	}

	p := c.mapper.StudentFromDTO(dto)
	return &p, nil
}

// SaveStudent submits the full profile. The backend echoes the stored
// record back.
func (c *Client) SaveStudent(ctx context.Context, p profile.StudentProfile) (*profile.StudentProfile, error) {
	path := fmt.Sprintf("/api/students/%s", url.PathEscape(string(p.StudentID)))

	var dto StudentDTO
	if err := c.do(ctx, http.MethodPut, path, c.mapper.StudentToDTO(p), &dto); err != nil {
		return nil, fmt.Errorf("save student %s: %w", p.StudentID, err)
	}

	saved := c.mapper.StudentFromDTO(dto)
	return &saved, nil
}

// ListStudents fetches the full roster. An empty roster is a valid result,
// not an error.
func (c *Client) ListStudents(ctx context.Context) ([]profile.StudentProfile, error) {
	var dtos []StudentDTO
	if err := c.do(ctx, http.MethodGet, "/api/students/", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	roster := make([]profile.StudentProfile, 0, len(dtos))
	for _, dto := range dtos {
		roster = append(roster, c.mapper.StudentFromDTO(dto))
	}
	return roster, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// HTTP REQUEST HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// do performs a single HTTP request: marshal the body, attach the bearer
// token read from the store at call time, decode the response. No retries.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	fullURL := c.config.BaseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// The token store is read here, not at client construction, so a token
	// set between calls is observed immediately. A bearer token always wins
	// over any caller-supplied Authorization value; with no token the header
	// is sent empty.
	if token, ok := c.config.Tokens.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("Authorization", "")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if c.config.Debug {
		c.logger.Debug("platform api request",
			logger.Operation(method+" "+path),
			logger.Latency(time.Since(start)),
			"status", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var validation ValidationResponseDTO
		if err := json.Unmarshal(respBody, &validation); err == nil && len(validation.Detail) > 0 {
			fields := fieldsFromDetail(validation.Detail)
			if len(fields) > 0 {
				return &ValidationError{Fields: fields}
			}
		}
		// Unrecognizable 422 shape degrades to a generic API error.
		return &APIError{StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		}
		if err := json.Unmarshal(respBody, &payload); err == nil {
			if payload.Message != "" {
				apiErr.Message = payload.Message
			} else if payload.Detail != "" {
				apiErr.Message = payload.Detail
			}
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}
