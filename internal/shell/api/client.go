// Package api implements the HTTP client for the campus API consumed by
// the shell. It is a thin JSON transport: auth decisions live in the
// session store, not here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is an HTTP client for the campus API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client for the given base URL,
// e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// Error is a failure response from the API. Message is the
// server-provided human-readable message, empty when the body carried none.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api request failed (status %d)", e.StatusCode)
	}
	return e.Message
}

// Unauthorized reports whether the failure means the credentials or token
// were rejected.
func (e *Error) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// User represents a user record returned by the API.
type User struct {
	ID           string `json:"id"`
	EnrollmentID string `json:"enrollment_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Department   string `json:"department"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	EnrollmentID string `json:"enrollment_id"`
	Department   string `json:"department"`
	Role         string `json:"role"`
	Password     string `json:"password"`
}

// RegisterResponse represents the registration response
type RegisterResponse struct {
	Message string `json:"message"`
}

// Login exchanges credentials for a token and user record.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var loginResp LoginResponse
	if err := c.post(ctx, "/api/auth/login", LoginRequest{Email: email, Password: password}, &loginResp); err != nil {
		return nil, err
	}
	return &loginResp, nil
}

// Register creates a new account. It does not authenticate the caller.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var registerResp RegisterResponse
	if err := c.post(ctx, "/api/auth/register", req, &registerResp); err != nil {
		return nil, err
	}
	return &registerResp, nil
}

// CurrentUser fetches the user record for the given token.
func (c *Client) CurrentUser(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &user, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into an *Error, preserving the
// server's message when the body is the usual {"error": "..."} shape.
func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			apiErr.Message = payload.Error
		} else {
			apiErr.Message = payload.Message
		}
	}
	return apiErr
}
