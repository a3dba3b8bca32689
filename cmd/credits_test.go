// ABOUTME: Tests for the credits command
// ABOUTME: Verifies balance output and the --minimum threshold exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mediaforge/mediaforge-cli/internal/api"
)

func creditsServer(t *testing.T, balance int) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/credits" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(api.CreditsBalance{Credits: balance, UserID: "u1"})
	}
}

func TestCredits_ShowsBalance(t *testing.T) {
	server := authBackend(t, 42, creditsServer(t, 42))
	defer server.Close()
	useServer(t, server)

	var buf bytes.Buffer
	exitCode := runCredits(context.Background(), &buf, 0)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Credits: 42")) {
		t.Errorf("expected balance in output, got %q", buf.String())
	}
}

func TestCredits_MinimumMet(t *testing.T) {
	server := authBackend(t, 42, creditsServer(t, 42))
	defer server.Close()
	useServer(t, server)

	var buf bytes.Buffer
	if exitCode := runCredits(context.Background(), &buf, 10); exitCode != 0 {
		t.Errorf("expected exit code 0 when above minimum, got %d", exitCode)
	}
}

func TestCredits_BelowMinimum(t *testing.T) {
	server := authBackend(t, 5, creditsServer(t, 5))
	defer server.Close()
	useServer(t, server)

	var buf bytes.Buffer
	exitCode := runCredits(context.Background(), &buf, 10)

	if exitCode != 1 {
		t.Fatalf("expected exit code 1 below minimum, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("FAILED")) {
		t.Errorf("expected FAILED in output, got %q", buf.String())
	}
}

func TestCredits_ErrorExitCode(t *testing.T) {
	server := authBackend(t, 0, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
	})
	defer server.Close()
	useServer(t, server)

	var buf bytes.Buffer
	if exitCode := runCredits(context.Background(), &buf, 0); exitCode != 2 {
		t.Errorf("expected exit code 2 on error, got %d", exitCode)
	}
}

func TestCredits_JSONOutput(t *testing.T) {
	server := authBackend(t, 42, creditsServer(t, 42))
	defer server.Close()
	useServer(t, server)
	jsonOutput = true

	var buf bytes.Buffer
	if exitCode := runCredits(context.Background(), &buf, 0); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}

	var parsed api.CreditsBalance
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Credits != 42 {
		t.Errorf("expected 42 credits, got %d", parsed.Credits)
	}
}
