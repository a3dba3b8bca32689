// ABOUTME: Session store: single source of truth for the logged-in user and balance
// ABOUTME: Owns the token lifecycle and is the only writer of the persisted credential

package session

import (
	"context"
	"sync"

	"github.com/mediaforge/mediaforge-cli/internal/api"
)

// Store holds the authentication token and the current user profile.
// The token survives restarts via the injected TokenStore; the profile
// is always re-fetched from the backend.
type Store struct {
	mu     sync.Mutex
	api    *api.Client
	tokens api.TokenStore

	user            *api.User
	token           string
	isLoading       bool
	isAuthenticated bool
}

// New creates an empty, logged-out session store
func New(client *api.Client, tokens api.TokenStore) *Store {
	return &Store{
		api:    client,
		tokens: tokens,
	}
}

// Login obtains a bearer token, persists it, then fetches the profile.
// On failure no state is mutated besides the loading flag.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.setLoading(true)

	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.setLoading(false)
		return err
	}

	// Persist only after the backend accepted the credentials
	if err := s.tokens.Save(token.AccessToken); err != nil {
		s.setLoading(false)
		return err
	}

	s.mu.Lock()
	s.token = token.AccessToken
	s.mu.Unlock()

	return s.FetchUser(ctx)
}

// Register creates an account, then logs in with the same credentials
func (s *Store) Register(ctx context.Context, email, password, fullName string) error {
	s.setLoading(true)

	_, err := s.api.Register(ctx, &api.RegisterRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
	})
	if err != nil {
		s.setLoading(false)
		return err
	}

	return s.Login(ctx, email, password)
}

// Logout clears the session and removes the persisted credential.
// It always succeeds and makes no backend call.
func (s *Store) Logout() {
	s.tokens.Clear()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.isAuthenticated = false
	s.isLoading = false
}

// FetchUser refreshes the profile using the current token. An invalid or
// expired token clears the whole session; callers are expected to send the
// user back to a login surface.
func (s *Store) FetchUser(ctx context.Context) error {
	user, err := s.api.GetMe(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	if err != nil {
		s.user = nil
		s.isAuthenticated = false
		return err
	}
	s.user = user
	s.isAuthenticated = true
	return nil
}

// Resume rehydrates the session from the persisted token at startup.
// No persisted token means logged out, not an error.
func (s *Store) Resume(ctx context.Context) (bool, error) {
	token, err := s.tokens.Load()
	if err != nil || token == "" {
		return false, nil
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.FetchUser(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateCredits sets the local balance after a generation succeeds, so the
// UI reflects the spend without a full profile refetch. The backend stays
// the source of truth; the next FetchUser reconciles any drift. No-op when
// logged out, and the balance never renders negative.
func (s *Store) UpdateCredits(newBalance int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	if newBalance < 0 {
		newBalance = 0
	}
	s.user.Credits = newBalance
}

// User returns a copy of the current profile, or nil when logged out
func (s *Store) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the current bearer token, empty when logged out
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether the token was accepted and a profile fetched
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAuthenticated
}

// IsLoading reports whether an auth operation is in flight
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.isLoading = v
	s.mu.Unlock()
}
