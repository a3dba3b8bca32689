// ABOUTME: Tests for the health command
// ABOUTME: Verifies the root-level health endpoint and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mediaforge/mediaforge-cli/internal/api"
)

func TestHealth_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("expected path /health, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(api.HealthStatus{Status: "healthy"})
	}))
	defer server.Close()
	useServer(t, server)

	var buf bytes.Buffer
	exitCode := runHealth(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("healthy")) {
		t.Errorf("expected healthy in output, got %q", buf.String())
	}
}

func TestHealth_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	useServer(t, server)
	server.Close()

	var buf bytes.Buffer
	if exitCode := runHealth(context.Background(), &buf); exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
}

func TestHealth_JSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.HealthStatus{Status: "healthy"})
	}))
	defer server.Close()
	useServer(t, server)
	jsonOutput = true

	var buf bytes.Buffer
	if exitCode := runHealth(context.Background(), &buf); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}

	var parsed api.HealthStatus
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Status != "healthy" {
		t.Errorf("expected healthy, got %s", parsed.Status)
	}
}
