// ABOUTME: Tests for the generation wizard
// ABOUTME: Verifies request assembly, preset prefill, and cancellation

package wizard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mediaforge/mediaforge-cli/internal/api"
)

func TestBuildRequest_Image(t *testing.T) {
	w := New(api.TypeImage)
	w.prompt = "  a fox  "
	w.size = "512x512"
	w.style = "illustration"

	req, ok := w.buildRequest().(*api.ImageRequest)
	if !ok {
		t.Fatalf("expected *api.ImageRequest, got %T", w.buildRequest())
	}
	if req.Prompt != "a fox" {
		t.Errorf("expected trimmed prompt, got %q", req.Prompt)
	}
	if req.Size != "512x512" || req.Style != "illustration" {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestBuildRequest_Logo_SplitsColors(t *testing.T) {
	w := New(api.TypeLogo)
	w.brandName = "Acme"
	w.industry = "Software"
	w.colors = "#06B6D4, #10B981, "

	req := w.buildRequest().(*api.LogoRequest)
	if len(req.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %v", req.Colors)
	}
	if req.Colors[0] != "#06B6D4" || req.Colors[1] != "#10B981" {
		t.Errorf("unexpected colors: %v", req.Colors)
	}
}

func TestBuildRequest_Video_ParsesDuration(t *testing.T) {
	w := New(api.TypeVideo)
	w.topic = "oceans"
	w.duration = "60"

	req := w.buildRequest().(*api.VideoRequest)
	if req.Duration != 60 {
		t.Errorf("expected duration 60, got %d", req.Duration)
	}
	if req.Voice != "alloy" {
		t.Errorf("expected default voice, got %q", req.Voice)
	}
}

func TestBuildRequest_Voiceover_ParsesSpeed(t *testing.T) {
	w := New(api.TypeVoiceover)
	w.script = "hello"
	w.speed = "1.25"

	req := w.buildRequest().(*api.VoiceoverRequest)
	if req.Speed != 1.25 {
		t.Errorf("expected speed 1.25, got %v", req.Speed)
	}
	if req.Text != "hello" {
		t.Errorf("expected text, got %q", req.Text)
	}
}

func TestApplyPreset_PrefillsPrompt(t *testing.T) {
	w := New(api.TypeImage)
	if len(w.presetChoices) == 0 {
		t.Skip("no image presets defined")
	}

	w.presetIdx = 0
	w.applyPreset()

	if w.prompt == "" {
		t.Error("expected preset prompt applied")
	}
}

func TestApplyPreset_BlankIsNoOp(t *testing.T) {
	w := New(api.TypeImage)
	w.presetIdx = blankPreset
	w.applyPreset()

	if w.prompt != "" {
		t.Errorf("expected empty prompt for blank start, got %q", w.prompt)
	}
}

func TestNew_SkipsPresetStepWhenNoneExist(t *testing.T) {
	w := New(api.TypeBackgroundRemoval)
	if !w.onStep2 {
		t.Error("expected wizard to start on the fields form when no presets exist")
	}
}

func TestUpdate_EscCancels(t *testing.T) {
	w := New(api.TypeImage)

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Errorf("expected CancelledMsg, got %T", cmd())
	}
}

func TestSplitColors(t *testing.T) {
	if got := splitColors("   "); got != nil {
		t.Errorf("expected nil for blank input, got %v", got)
	}
	if got := splitColors("red,, blue "); len(got) != 2 {
		t.Errorf("expected 2 entries, got %v", got)
	}
}
