// ABOUTME: Tests for the stats command
// ABOUTME: Verifies usage statistics output and the sorted by-type section

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/mediaforge/mediaforge-cli/internal/api"
)

func TestStats_Output(t *testing.T) {
	server := authBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/stats" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(api.UsageStats{
			TotalGenerations: 12,
			CreditsUsed:      85,
			ByType:           map[string]int{"voiceover": 2, "image": 8, "video": 2},
		})
	})
	defer server.Close()
	useServer(t, server)

	var buf bytes.Buffer
	exitCode := runStats(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	out := buf.String()
	if !strings.Contains(out, "Generations:  12") {
		t.Errorf("expected totals, got %q", out)
	}
	if strings.Index(out, "image") > strings.Index(out, "video") ||
		strings.Index(out, "video") > strings.Index(out, "voiceover") {
		t.Error("expected types sorted alphabetically")
	}
}

func TestStats_Error(t *testing.T) {
	server := authBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
	})
	defer server.Close()
	useServer(t, server)

	var buf bytes.Buffer
	if exitCode := runStats(context.Background(), &buf); exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
}
