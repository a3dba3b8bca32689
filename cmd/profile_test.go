// ABOUTME: Tests for the profile update command
// ABOUTME: Verifies flag validation and partial PATCH payloads

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/mediaforge/mediaforge-cli/internal/tokenfile"
)

func TestRunProfileUpdate_RequiresAField(t *testing.T) {
	server := authBackend(t, 100, nil)
	defer server.Close()
	useServer(t, server)

	var buf bytes.Buffer
	code := runProfileUpdate(context.Background(), &buf, "", "", "")

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "nothing to update") {
		t.Errorf("expected usage hint, got %q", buf.String())
	}
}

func TestRunProfileUpdate_SendsOnlyChangedFields(t *testing.T) {
	var got map[string]any
	server := authBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/me" || r.Method != http.MethodPatch {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(api.User{
			ID:       "u1",
			Email:    "ada@example.com",
			FullName: "Ada King",
			Company:  "Analytical Engines Ltd",
			Credits:  100,
		})
	})
	defer server.Close()
	useServer(t, server)
	if err := tokenfile.New(tokenfile.DefaultConfigDir()).Save("tok-good"); err != nil {
		t.Fatalf("saving token: %v", err)
	}

	var buf bytes.Buffer
	code := runProfileUpdate(context.Background(), &buf, "Ada King", "", "Analytical Engines Ltd")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if got["full_name"] != "Ada King" {
		t.Errorf("expected full_name in payload, got %v", got)
	}
	if _, present := got["avatar_url"]; present {
		t.Errorf("expected untouched field omitted, got %v", got)
	}
	if !strings.Contains(buf.String(), "Ada King (Analytical Engines Ltd)") {
		t.Errorf("expected confirmation line, got %q", buf.String())
	}
}

func TestRunProfileUpdate_NotLoggedIn(t *testing.T) {
	server := authBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
	})
	defer server.Close()
	useServer(t, server)

	var buf bytes.Buffer
	code := runProfileUpdate(context.Background(), &buf, "Ada King", "", "")

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "Not authenticated") {
		t.Errorf("expected backend detail, got %q", buf.String())
	}
}
