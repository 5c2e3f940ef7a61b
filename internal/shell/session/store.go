// Package session holds the shell's authentication state: the current
// user, the API token, and the transient status surfaced to the UI. It is
// the single source of truth consulted by the route guard and the
// navigation resolver.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/campusd-dev/campusd/internal/roles"
	"github.com/campusd-dev/campusd/internal/shell/api"
	"github.com/campusd-dev/campusd/internal/shell/storage"
)

// Fallback messages used when a transport failure carries no server message.
const (
	loginFailedMessage    = "Login failed. Please try again."
	registerFailedMessage = "Registration failed. Please try again."

	loginSuccessMessage    = "Login Successful!"
	registerSuccessMessage = "Registration Successful! Please Login."
)

// StatusKind classifies the transient status of the store.
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusLoading
	StatusError
	StatusInfo
)

// Status is the transient message channel between the store and the UI.
// The UI renders it once and acknowledges it.
type Status struct {
	Kind    StatusKind
	Message string
}

// AuthAPI is the slice of the campus API the store depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
}

// Snapshot is a read-only copy of the session state. Consumers never see
// the store's internals directly.
type Snapshot struct {
	User          *api.User
	Token         string
	Authenticated bool
	Initializing  bool
	Status        Status
}

// Role returns the current user's role, empty when unauthenticated.
func (s Snapshot) Role() roles.Role {
	if s.User == nil {
		return ""
	}
	return roles.Role(s.User.Role)
}

// Store owns the session state. All mutation goes through its methods;
// reads go through Snapshot. Login and Register may run concurrently and
// the last response to resolve wins: there is no request cancellation.
type Store struct {
	mu      sync.Mutex
	api     AuthAPI
	storage storage.Store
	log     zerolog.Logger

	user   *api.User
	token  string
	status Status
}

// New creates a session store and hydrates it from durable storage. A
// persisted (token, user) pair is trusted without a network round-trip;
// it is downgraded lazily when an API call later comes back 401.
func New(authAPI AuthAPI, store storage.Store, log zerolog.Logger) *Store {
	s := &Store{
		api:     authAPI,
		storage: store,
		log:     log,
	}
	s.hydrate()
	return s
}

// hydrate seeds the session from storage. Malformed or partial state is
// cleared rather than trusted.
func (s *Store) hydrate() {
	token, err := s.storage.Get(storage.KeyToken)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn().Err(err).Msg("Failed to read stored token")
		}
		// A user record without a token is as partial as the reverse.
		s.clearStoredSession()
		return
	}

	rawUser, err := s.storage.Get(storage.KeyUser)
	if err != nil {
		s.clearStoredSession()
		return
	}

	var user api.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.Role == "" {
		s.log.Warn().Msg("Stored user record is malformed, discarding session")
		s.clearStoredSession()
		return
	}

	s.user = &user
	s.token = token
	s.log.Debug().Str("email", user.Email).Msg("Session restored from storage")
}

// Snapshot returns a read-only copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Token:         s.token,
		Authenticated: s.user != nil && s.token != "",
		Status:        s.status,
	}
	if s.user != nil {
		userCopy := *s.user
		snap.User = &userCopy
	}
	return snap
}

// Login exchanges credentials for a session. On success the new state is
// persisted to storage before the call returns; on failure the existing
// auth state is left untouched and the failure becomes an error status.
func (s *Store) Login(ctx context.Context, email, password string) (*api.User, error) {
	s.setStatus(Status{Kind: StatusLoading})

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.setStatus(Status{Kind: StatusError, Message: failureMessage(err, loginFailedMessage)})
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		s.status = Status{Kind: StatusError, Message: loginFailedMessage}
		return nil, err
	}

	// Storage writes complete before the store reports success.
	if err := s.storage.Set(storage.KeyToken, resp.Token); err != nil {
		s.status = Status{Kind: StatusError, Message: loginFailedMessage}
		return nil, err
	}
	if err := s.storage.Set(storage.KeyUser, string(rawUser)); err != nil {
		s.status = Status{Kind: StatusError, Message: loginFailedMessage}
		return nil, err
	}

	user := resp.User
	s.user = &user
	s.token = resp.Token
	s.status = Status{Kind: StatusInfo, Message: loginSuccessMessage}

	s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("Logged in")

	result := user
	return &result, nil
}

// Register creates an account. It never mutates the auth state: a new
// registrant logs in explicitly afterwards.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) (string, error) {
	s.setStatus(Status{Kind: StatusLoading})

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		s.setStatus(Status{Kind: StatusError, Message: failureMessage(err, registerFailedMessage)})
		return "", err
	}

	s.setStatus(Status{Kind: StatusInfo, Message: registerSuccessMessage})
	s.log.Info().Str("email", req.Email).Msg("Registered")

	if resp.Message != "" {
		return resp.Message, nil
	}
	return registerSuccessMessage, nil
}

// Logout clears durable storage and resets the session. No server
// round-trip: the token is simply forgotten.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearStoredSession()
	s.user = nil
	s.token = ""
	s.status = Status{}

	s.log.Info().Msg("Logged out")
}

// Downgrade resets the session after an API call was rejected with an
// authorization failure. The stored token was stale.
func (s *Store) Downgrade() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil && s.token == "" {
		return
	}

	s.clearStoredSession()
	s.user = nil
	s.token = ""
	s.status = Status{Kind: StatusError, Message: "Session expired. Please login again."}

	s.log.Warn().Msg("Stored session rejected by API, downgraded to unauthenticated")
}

// AcknowledgeError clears an error status. Idempotent.
func (s *Store) AcknowledgeError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Kind == StatusError {
		s.status = Status{}
	}
}

// AcknowledgeMessage clears an info status. Idempotent.
func (s *Store) AcknowledgeMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Kind == StatusInfo {
		s.status = Status{}
	}
}

func (s *Store) setStatus(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *Store) clearStoredSession() {
	if err := s.storage.Delete(storage.KeyToken); err != nil {
		s.log.Warn().Err(err).Msg("Failed to delete stored token")
	}
	if err := s.storage.Delete(storage.KeyUser); err != nil {
		s.log.Warn().Err(err).Msg("Failed to delete stored user")
	}
}

// failureMessage prefers the server's message and falls back to a generic
// one for transport failures, which carry no structured message.
func failureMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
