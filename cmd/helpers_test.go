// ABOUTME: Shared test fixtures for command tests
// ABOUTME: Provides a mock backend and flag/env setup helpers

package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mediaforge/mediaforge-cli/internal/api"
)

// useServer points the commands at a mock backend and isolates the
// config directory so tests never touch a real token file.
func useServer(t *testing.T, server *httptest.Server) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	apiURL = server.URL + "/api/v1"
	jsonOutput = false
	t.Cleanup(func() {
		apiURL = ""
		jsonOutput = false
	})
}

// authBackend wires the auth endpoints plus an extra handler for
// everything else. The extra handler may be nil.
func authBackend(t *testing.T, credits int, extra http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			r.ParseForm()
			if r.PostForm.Get("password") != "hunter22" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
				return
			}
			json.NewEncoder(w).Encode(api.Token{AccessToken: "tok-good", TokenType: "bearer"})

		case "/api/v1/auth/me":
			if r.Header.Get("Authorization") != "Bearer tok-good" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
				return
			}
			json.NewEncoder(w).Encode(api.User{
				ID:       "u1",
				Email:    "ada@example.com",
				FullName: "Ada Lovelace",
				Role:     "user",
				Credits:  credits,
			})

		default:
			if extra != nil {
				extra(w, r)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}
