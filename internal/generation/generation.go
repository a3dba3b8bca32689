// ABOUTME: In-memory store of generation records created during the session
// ABOUTME: Newest-first list, a current-record pointer, and a single in-flight gate

package generation

import (
	"sync"
	"time"

	"github.com/mediaforge/mediaforge-cli/internal/api"
)

// Patch is a partial update merged into an existing record by id.
// Nil fields are left untouched.
type Patch struct {
	Status       *string
	OutputURL    *string
	ThumbnailURL *string
	ErrorMessage *string
	CreditsUsed  *int
	CompletedAt  *time.Time
}

// PatchFrom builds a Patch from a freshly fetched record, e.g. a status poll
func PatchFrom(g *api.Generation) Patch {
	p := Patch{}
	if g.Status != "" {
		status := g.Status
		p.Status = &status
	}
	if g.OutputURL != "" {
		u := g.OutputURL
		p.OutputURL = &u
	}
	if g.ThumbnailURL != "" {
		u := g.ThumbnailURL
		p.ThumbnailURL = &u
	}
	if g.ErrorMessage != "" {
		m := g.ErrorMessage
		p.ErrorMessage = &m
	}
	if g.CreditsUsed != 0 {
		n := g.CreditsUsed
		p.CreditsUsed = &n
	}
	if g.CompletedAt != nil {
		t := *g.CompletedAt
		p.CompletedAt = &t
	}
	return p
}

// Store tracks generation requests issued during the current session.
// It is purely a container; status transition rules live with the backend,
// except that a terminal status is never reverted client-side.
type Store struct {
	mu           sync.Mutex
	records      []api.Generation
	current      *api.Generation
	isGenerating bool
}

// New creates an empty generation store
func New() *Store {
	return &Store{}
}

// Add prepends a record so the newest generation is always first.
// Callers must not add the same id twice; the store does not deduplicate.
func (s *Store) Add(g api.Generation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]api.Generation{g}, s.records...)
}

// Update merges patch fields into the record with the given id, and into
// the current pointer when it refers to the same id. Unknown ids are a
// silent no-op. A record observed as completed or failed keeps that status.
func (s *Store) Update(id string, patch Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			applyPatch(&s.records[i], patch)
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		applyPatch(s.current, patch)
	}
}

func applyPatch(g *api.Generation, p Patch) {
	if p.Status != nil && !g.Terminal() {
		g.Status = *p.Status
	}
	if p.OutputURL != nil {
		g.OutputURL = *p.OutputURL
	}
	if p.ThumbnailURL != nil {
		g.ThumbnailURL = *p.ThumbnailURL
	}
	if p.ErrorMessage != nil {
		g.ErrorMessage = *p.ErrorMessage
	}
	if p.CreditsUsed != nil {
		g.CreditsUsed = *p.CreditsUsed
	}
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		g.CompletedAt = &t
	}
}

// SetCurrent points the store at the generation the UI is watching.
// Passing nil clears the pointer. The record need not be in the list.
func (s *Store) SetCurrent(g *api.Generation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g == nil {
		s.current = nil
		return
	}
	copied := *g
	s.current = &copied
}

// Current returns a copy of the watched generation, or nil
func (s *Store) Current() *api.Generation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Begin acquires the in-flight gate. It returns false when a generation is
// already running; the UI disables new submissions while the gate is held.
func (s *Store) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isGenerating {
		return false
	}
	s.isGenerating = true
	return true
}

// SetGenerating sets the gate directly. Idempotent; callers pair true with
// a deferred false so the gate cannot stick on after a failure.
func (s *Store) SetGenerating(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isGenerating = v
}

// IsGenerating reports whether a generation request is awaiting a response
func (s *Store) IsGenerating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isGenerating
}

// Records returns the list newest first
func (s *Store) Records() []api.Generation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Generation, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Clear empties the list and the current pointer; used on logout
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.current = nil
}
