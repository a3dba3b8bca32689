// ABOUTME: Tests for the video generation flow shared by the video subcommands
// ABOUTME: Covers request routing, watch short-circuiting, and auth checks

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/mediaforge/mediaforge-cli/internal/studio"
	"github.com/mediaforge/mediaforge-cli/internal/tokenfile"
)

func videoCall(topic string) func(context.Context, *studio.Controller) (*api.Generation, error) {
	return func(ctx context.Context, ctrl *studio.Controller) (*api.Generation, error) {
		return ctrl.Video(ctx, &api.VideoRequest{Topic: topic, Duration: 30})
	}
}

func TestRunVideoGeneration_SubmitsWithoutWatch(t *testing.T) {
	server := authBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/videos/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(api.Generation{
			ID:          "v1",
			Type:        api.TypeVideo,
			Status:      api.StatusProcessing,
			Prompt:      "oceans",
			CreditsUsed: 10,
		})
	})
	defer server.Close()
	useServer(t, server)

	if err := tokenfile.New(tokenfile.DefaultConfigDir()).Save("tok-good"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	exitCode := runVideoGeneration(context.Background(), &buf, false, "fallback", videoCall("oceans"))

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte(api.StatusProcessing)) {
		t.Errorf("expected processing status in output, got %q", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("Credits remaining: 90")) {
		t.Errorf("expected deducted balance, got %q", buf.String())
	}
}

func TestRunVideoGeneration_WatchSkipsPollWhenAlreadyTerminal(t *testing.T) {
	server := authBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/videos/generate" {
			t.Errorf("unexpected poll request to %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(api.Generation{
			ID:          "v1",
			Type:        api.TypeVideo,
			Status:      api.StatusCompleted,
			OutputURL:   "https://cdn.example.com/oceans.mp4",
			CreditsUsed: 10,
		})
	})
	defer server.Close()
	useServer(t, server)

	if err := tokenfile.New(tokenfile.DefaultConfigDir()).Save("tok-good"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	exitCode := runVideoGeneration(context.Background(), &buf, true, "fallback", videoCall("oceans"))

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("https://cdn.example.com/oceans.mp4")) {
		t.Errorf("expected output URL, got %q", buf.String())
	}
	if bytes.Contains(buf.Bytes(), []byte("waiting for completion")) {
		t.Errorf("expected no watch message for terminal result, got %q", buf.String())
	}
}

func TestRunVideoGeneration_NotLoggedIn(t *testing.T) {
	server := authBackend(t, 100, nil)
	defer server.Close()
	useServer(t, server)

	var buf bytes.Buffer
	exitCode := runVideoGeneration(context.Background(), &buf, false, "fallback", videoCall("oceans"))

	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Not logged in")) {
		t.Errorf("expected login hint, got %q", buf.String())
	}
}
