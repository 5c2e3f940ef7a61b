package commands

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusd-dev/campusd/internal/shell/api"
	"github.com/campusd-dev/campusd/internal/shell/storage"
)

// meServer serves /api/auth/me, accepting only the given token
func meServer(t *testing.T, validToken string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "Invalid or expired token"}`))
			return
		}
		json.NewEncoder(w).Encode(api.User{
			ID: "u1", FullName: "T", Email: "t@campus.edu", Role: "STUDENT",
		})
	}))
}

func TestWhoami_RevokedTokenDowngradesSession(t *testing.T) {
	server := meServer(t, "fresh-token")
	defer server.Close()

	// Stored session carries a token the API no longer accepts
	mem := storage.NewMemory()
	seedSession(t, mem, "STUDENT")
	shell := newTestShellAt(mem, server.URL)

	if err := runWhoami(shell); err != nil {
		t.Fatalf("runWhoami failed: %v", err)
	}

	if shell.Store.Snapshot().Authenticated {
		t.Error("session should be downgraded after the API rejected the stored token")
	}
	if _, err := mem.Get(storage.KeyToken); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("stale token should be cleared from storage, got %v", err)
	}
}

func TestWhoami_ValidTokenKeepsSession(t *testing.T) {
	server := meServer(t, "t1")
	defer server.Close()

	mem := storage.NewMemory()
	seedSession(t, mem, "STUDENT") // seeds token "t1"
	shell := newTestShellAt(mem, server.URL)

	if err := runWhoami(shell); err != nil {
		t.Fatalf("runWhoami failed: %v", err)
	}

	if !shell.Store.Snapshot().Authenticated {
		t.Error("session should survive a successful refresh")
	}
}

func TestWhoami_TransportFailureKeepsCachedSession(t *testing.T) {
	mem := storage.NewMemory()
	seedSession(t, mem, "STUDENT")
	// Nobody listens on the shell's API URL
	shell := newTestShell(mem)

	if err := runWhoami(shell); err != nil {
		t.Fatalf("runWhoami failed: %v", err)
	}

	// Only an authorization failure downgrades; an unreachable API does not
	if !shell.Store.Snapshot().Authenticated {
		t.Error("transport failure must not downgrade the session")
	}
}
