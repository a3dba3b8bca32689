// ABOUTME: Tests for the session store
// ABOUTME: Exercises login, logout, resume, and credit updates against a mock backend

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mediaforge/mediaforge-cli/internal/api"
)

type memTokens struct {
	token string
}

func (m *memTokens) Load() (string, error) { return m.token, nil }
func (m *memTokens) Save(t string) error   { m.token = t; return nil }
func (m *memTokens) Clear() error          { m.token = ""; return nil }

// newBackend returns a mock server accepting one set of credentials
func newBackend(t *testing.T, email, password string, credits int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			r.ParseForm()
			if r.PostForm.Get("username") != email || r.PostForm.Get("password") != password {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
				return
			}
			json.NewEncoder(w).Encode(api.Token{AccessToken: "tok-good", TokenType: "bearer"})

		case "/api/v1/auth/register":
			var req api.RegisterRequest
			json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(api.User{ID: "u1", Email: req.Email, FullName: req.FullName, Credits: credits})

		case "/api/v1/auth/me":
			if r.Header.Get("Authorization") != "Bearer tok-good" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
				return
			}
			json.NewEncoder(w).Encode(api.User{ID: "u1", Email: email, Credits: credits})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestLogin_Success(t *testing.T) {
	server := newBackend(t, "ada@example.com", "hunter22", 100)
	defer server.Close()

	tokens := &memTokens{}
	s := New(api.New(server.URL+"/api/v1", tokens), tokens)

	if err := s.Login(context.Background(), "ada@example.com", "hunter22"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if !s.IsAuthenticated() {
		t.Error("expected authenticated session")
	}
	if s.IsLoading() {
		t.Error("expected loading flag cleared")
	}
	if tokens.token != "tok-good" {
		t.Errorf("expected token persisted, got %q", tokens.token)
	}
	user := s.User()
	if user == nil || user.Credits != 100 {
		t.Errorf("expected profile with 100 credits, got %+v", user)
	}
}

func TestLogin_BadCredentialsLeavesStateUntouched(t *testing.T) {
	server := newBackend(t, "ada@example.com", "hunter22", 100)
	defer server.Close()

	tokens := &memTokens{}
	s := New(api.New(server.URL+"/api/v1", tokens), tokens)

	err := s.Login(context.Background(), "ada@example.com", "wrong")
	if err == nil {
		t.Fatal("expected login error")
	}

	if s.IsAuthenticated() {
		t.Error("expected unauthenticated session after failure")
	}
	if s.IsLoading() {
		t.Error("expected loading flag cleared after failure")
	}
	if tokens.token != "" {
		t.Errorf("expected no token persisted, got %q", tokens.token)
	}
	if s.User() != nil {
		t.Error("expected nil user after failure")
	}
}

func TestRegister_LogsInAfterCreation(t *testing.T) {
	server := newBackend(t, "new@example.com", "secret123", 100)
	defer server.Close()

	tokens := &memTokens{}
	s := New(api.New(server.URL+"/api/v1", tokens), tokens)

	if err := s.Register(context.Background(), "new@example.com", "secret123", "New User"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Error("expected authenticated session after registration")
	}
	if tokens.token != "tok-good" {
		t.Error("expected token persisted after registration")
	}
}

func TestLogout_ClearsEverything(t *testing.T) {
	server := newBackend(t, "ada@example.com", "hunter22", 100)
	defer server.Close()

	tokens := &memTokens{}
	s := New(api.New(server.URL+"/api/v1", tokens), tokens)
	if err := s.Login(context.Background(), "ada@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}

	s.Logout()

	if s.IsAuthenticated() {
		t.Error("expected unauthenticated after logout")
	}
	if s.User() != nil {
		t.Error("expected nil user after logout")
	}
	if s.Token() != "" {
		t.Error("expected empty token after logout")
	}
	if tokens.token != "" {
		t.Error("expected persisted token removed after logout")
	}
}

func TestResume_WithValidToken(t *testing.T) {
	server := newBackend(t, "ada@example.com", "hunter22", 100)
	defer server.Close()

	tokens := &memTokens{token: "tok-good"}
	s := New(api.New(server.URL+"/api/v1", tokens), tokens)

	ok, err := s.Resume(context.Background())
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if !ok {
		t.Fatal("expected resumed session")
	}
	if !s.IsAuthenticated() {
		t.Error("expected authenticated session")
	}
}

func TestResume_NoToken(t *testing.T) {
	tokens := &memTokens{}
	s := New(api.New("http://localhost:1/api/v1", tokens), tokens)

	ok, err := s.Resume(context.Background())
	if err != nil {
		t.Fatalf("expected no error without a token, got %v", err)
	}
	if ok {
		t.Error("expected not resumed")
	}
}

func TestResume_StaleTokenClearsSession(t *testing.T) {
	server := newBackend(t, "ada@example.com", "hunter22", 100)
	defer server.Close()

	tokens := &memTokens{token: "tok-stale"}
	s := New(api.New(server.URL+"/api/v1", tokens), tokens)

	ok, err := s.Resume(context.Background())
	if err == nil {
		t.Fatal("expected error for stale token")
	}
	if ok {
		t.Error("expected not resumed")
	}
	if s.IsAuthenticated() {
		t.Error("expected unauthenticated session")
	}
	if tokens.token != "" {
		t.Error("expected stale token cleared by 401 policy")
	}
}

func TestUpdateCredits(t *testing.T) {
	server := newBackend(t, "ada@example.com", "hunter22", 100)
	defer server.Close()

	tokens := &memTokens{}
	s := New(api.New(server.URL+"/api/v1", tokens), tokens)
	if err := s.Login(context.Background(), "ada@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}

	s.UpdateCredits(90)
	if got := s.User().Credits; got != 90 {
		t.Errorf("expected 90 credits, got %d", got)
	}

	// Balance never renders negative
	s.UpdateCredits(-5)
	if got := s.User().Credits; got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
}

func TestUpdateCredits_NoOpWhenLoggedOut(t *testing.T) {
	tokens := &memTokens{}
	s := New(api.New("http://localhost:1/api/v1", tokens), tokens)

	s.UpdateCredits(50)
	if s.User() != nil {
		t.Error("expected nil user")
	}
}
