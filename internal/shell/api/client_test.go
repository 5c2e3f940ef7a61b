package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockAPIServer serves the auth endpoints the way the campus API does
func mockAPIServer(t *testing.T, email, password, token string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var req LoginRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if req.Email != email || req.Password != password {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error": "Invalid email or password"}`))
				return
			}
			json.NewEncoder(w).Encode(LoginResponse{
				Token: token,
				User:  User{ID: "u1", Email: req.Email, FullName: "Test User", Role: "STUDENT"},
			})

		case "/api/auth/register":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(RegisterResponse{Message: "Registration Successful! Please Login."})

		case "/api/auth/me":
			if r.Header.Get("Authorization") != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error": "Invalid or expired token"}`))
				return
			}
			json.NewEncoder(w).Encode(User{ID: "u1", Email: email, Role: "STUDENT"})

		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestLogin_Success(t *testing.T) {
	server := mockAPIServer(t, "test@campus.edu", "secret1", "token-abc")
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Login(context.Background(), "test@campus.edu", "secret1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if resp.Token != "token-abc" {
		t.Errorf("expected token-abc, got %s", resp.Token)
	}
	if resp.User.Role != "STUDENT" {
		t.Errorf("expected STUDENT role, got %s", resp.User.Role)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	server := mockAPIServer(t, "test@campus.edu", "secret1", "token-abc")
	defer server.Close()

	client := New(server.URL)
	_, err := client.Login(context.Background(), "test@campus.edu", "wrong1a")
	if err == nil {
		t.Fatal("expected error for bad credentials")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !apiErr.Unauthorized() {
		t.Errorf("expected unauthorized, got status %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Invalid email or password" {
		t.Errorf("expected server message to be preserved, got %q", apiErr.Message)
	}
}

func TestLogin_TransportFailure(t *testing.T) {
	// Closed server: connection refused
	server := mockAPIServer(t, "a@b.com", "secret1", "t")
	server.Close()

	client := New(server.URL)
	_, err := client.Login(context.Background(), "a@b.com", "secret1")
	if err == nil {
		t.Fatal("expected transport error")
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Error("transport failure should not be an *Error (no server message exists)")
	}
}

func TestRegister(t *testing.T) {
	server := mockAPIServer(t, "a@b.com", "secret1", "t")
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Register(context.Background(), RegisterRequest{
		FullName: "New Student",
		Email:    "new@campus.edu",
		Role:     "STUDENT",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Message == "" {
		t.Error("expected a registration message")
	}
}

func TestCurrentUser(t *testing.T) {
	server := mockAPIServer(t, "test@campus.edu", "secret1", "token-abc")
	defer server.Close()

	client := New(server.URL)

	user, err := client.CurrentUser(context.Background(), "token-abc")
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if user.Email != "test@campus.edu" {
		t.Errorf("unexpected email: %s", user.Email)
	}

	_, err = client.CurrentUser(context.Background(), "stale-token")
	var apiErr *Error
	if !errors.As(err, &apiErr) || !apiErr.Unauthorized() {
		t.Errorf("expected unauthorized error for stale token, got %v", err)
	}
}
