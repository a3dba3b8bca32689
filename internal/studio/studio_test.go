// ABOUTME: Tests for the studio controller
// ABOUTME: Verifies the generate flow, the in-flight gate, and status polling

package studio

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/mediaforge/mediaforge-cli/internal/generation"
	"github.com/mediaforge/mediaforge-cli/internal/session"
)

type memTokens struct {
	token string
}

func (m *memTokens) Load() (string, error) { return m.token, nil }
func (m *memTokens) Save(t string) error   { m.token = t; return nil }
func (m *memTokens) Clear() error          { m.token = ""; return nil }

// newController wires a controller against the given mock server and logs in
func newController(t *testing.T, server *httptest.Server) *Controller {
	t.Helper()
	tokens := &memTokens{}
	client := api.New(server.URL+"/api/v1", tokens)
	sess := session.New(client, tokens)
	ctrl := New(client, sess, generation.New())

	if err := sess.Login(context.Background(), "ada@example.com", "hunter22"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return ctrl
}

// generateBackend serves login plus a single generate endpoint
func generateBackend(t *testing.T, credits int, generate http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			json.NewEncoder(w).Encode(api.Token{AccessToken: "tok", TokenType: "bearer"})
		case "/api/v1/auth/me":
			json.NewEncoder(w).Encode(api.User{ID: "u1", Email: "ada@example.com", Credits: credits})
		default:
			generate(w, r)
		}
	}))
}

func TestImage_SuccessRecordsAndDeducts(t *testing.T) {
	server := generateBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/images/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(api.Generation{
			ID:          "g1",
			Type:        api.TypeImage,
			Status:      api.StatusCompleted,
			CreditsUsed: 5,
		})
	})
	defer server.Close()

	ctrl := newController(t, server)

	gen, err := ctrl.Image(context.Background(), &api.ImageRequest{Prompt: "a fox"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.ID != "g1" {
		t.Errorf("expected g1, got %s", gen.ID)
	}

	if ctrl.Generations().Len() != 1 {
		t.Errorf("expected 1 record, got %d", ctrl.Generations().Len())
	}
	if current := ctrl.Generations().Current(); current == nil || current.ID != "g1" {
		t.Error("expected current pointer set to the new generation")
	}
	if got := ctrl.Session().User().Credits; got != 95 {
		t.Errorf("expected 95 credits after deduction, got %d", got)
	}
	if ctrl.Generations().IsGenerating() {
		t.Error("expected gate released after success")
	}
}

func TestImage_BackendErrorLeavesStoresUntouched(t *testing.T) {
	server := generateBackend(t, 3, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Insufficient credits"})
	})
	defer server.Close()

	ctrl := newController(t, server)

	_, err := ctrl.Image(context.Background(), &api.ImageRequest{Prompt: "a fox"})
	if err == nil {
		t.Fatal("expected error")
	}
	if api.ErrorMessage(err, "") != "Insufficient credits" {
		t.Errorf("expected backend detail surfaced, got %v", err)
	}

	if ctrl.Generations().Len() != 0 {
		t.Error("expected no record added on failure")
	}
	if got := ctrl.Session().User().Credits; got != 3 {
		t.Errorf("expected balance untouched, got %d", got)
	}
	if ctrl.Generations().IsGenerating() {
		t.Error("expected gate released after failure")
	}
}

func TestRun_GateRejectsConcurrentSubmission(t *testing.T) {
	server := generateBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Generation{ID: "g1", Status: api.StatusCompleted})
	})
	defer server.Close()

	ctrl := newController(t, server)
	ctrl.Generations().SetGenerating(true)

	_, err := ctrl.Image(context.Background(), &api.ImageRequest{Prompt: "a fox"})
	if !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	// The rejected call must not release the original holder's gate
	if !ctrl.Generations().IsGenerating() {
		t.Error("expected gate still held by the original submission")
	}
}

func TestRefreshStatus_MergesIntoStore(t *testing.T) {
	server := generateBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/videos/v1/status" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(api.Generation{
			ID:        "v1",
			Status:    api.StatusCompleted,
			OutputURL: "https://cdn.example.com/v1.mp4",
		})
	})
	defer server.Close()

	ctrl := newController(t, server)
	ctrl.Generations().Add(api.Generation{ID: "v1", Type: api.TypeVideo, Status: api.StatusProcessing})

	gen, err := ctrl.RefreshStatus(context.Background(), "v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gen.Terminal() {
		t.Error("expected terminal status from poll")
	}

	stored := ctrl.Generations().Records()[0]
	if stored.Status != api.StatusCompleted {
		t.Errorf("expected store updated, got %s", stored.Status)
	}
	if stored.OutputURL == "" {
		t.Error("expected output URL merged into store")
	}
}

func TestWaitForCompletion_PollsUntilTerminal(t *testing.T) {
	polls := 0
	server := generateBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		polls++
		status := api.StatusProcessing
		if polls >= 3 {
			status = api.StatusCompleted
		}
		json.NewEncoder(w).Encode(api.Generation{ID: "v1", Status: status})
	})
	defer server.Close()

	ctrl := newController(t, server)
	ctrl.Generations().Add(api.Generation{ID: "v1", Status: api.StatusPending})

	gen, err := ctrl.WaitForCompletion(context.Background(), "v1", 5*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.Status != api.StatusCompleted {
		t.Errorf("expected completed, got %s", gen.Status)
	}
	if polls < 3 {
		t.Errorf("expected at least 3 polls, got %d", polls)
	}
}

func TestWaitForCompletion_ContextCancelled(t *testing.T) {
	server := generateBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Generation{ID: "v1", Status: api.StatusProcessing})
	})
	defer server.Close()

	ctrl := newController(t, server)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := ctrl.WaitForCompletion(ctx, "v1", 5*time.Millisecond)
	if err == nil {
		t.Error("expected context error")
	}
}

func TestLogout_ClearsSessionAndRecords(t *testing.T) {
	server := generateBackend(t, 100, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Generation{ID: "g1", Status: api.StatusCompleted})
	})
	defer server.Close()

	ctrl := newController(t, server)
	ctrl.Generations().Add(api.Generation{ID: "g1"})

	ctrl.Logout()

	if ctrl.Session().IsAuthenticated() {
		t.Error("expected logged out session")
	}
	if ctrl.Generations().Len() != 0 {
		t.Error("expected generation list cleared on logout")
	}
}
