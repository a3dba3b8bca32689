// ABOUTME: Generation wizard as a bubbletea model built on huh forms
// ABOUTME: Collects per-type parameters and emits a ready-to-send request

package wizard

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/mediaforge/mediaforge-cli/internal/tui/presets"
	"github.com/mediaforge/mediaforge-cli/internal/tui/styles"
)

// CompleteMsg is sent when the wizard finishes. Request holds one of
// the api request structs matching the chosen generation type.
type CompleteMsg struct {
	Type    string
	Request any
}

// CancelledMsg is sent when the wizard is cancelled
type CancelledMsg struct{}

const blankPreset = -1

// Wizard collects the parameters for one generation
type Wizard struct {
	genType string
	form    *huh.Form
	onStep2 bool
	width   int

	presetChoices []presets.Preset
	presetIdx     int

	// Field values, strings for huh
	prompt    string
	size      string
	style     string
	title     string
	subtitle  string
	platform  string
	brandName string
	industry  string
	colors    string
	imageURL  string
	topic     string
	script    string
	duration  string
	voice     string
	avatarID  string
	speed     string
}

// New creates a wizard for the given generation type
func New(genType string) *Wizard {
	w := &Wizard{
		genType:  genType,
		size:     "1024x1024",
		style:    defaultStyle(genType),
		platform: "youtube",
		duration: "30",
		voice:    "alloy",
		avatarID: "anna",
		speed:    "1.0",

		presetChoices: presets.ByType(genType),
		presetIdx:     blankPreset,
	}

	if len(w.presetChoices) > 0 {
		w.form = w.presetForm()
	} else {
		w.onStep2 = true
		w.form = w.fieldsForm()
	}
	return w
}

func defaultStyle(genType string) string {
	switch genType {
	case api.TypeBanner:
		return "modern"
	case api.TypeLogo:
		return "minimal"
	default:
		return "auto"
	}
}

func (w *Wizard) presetForm() *huh.Form {
	options := []huh.Option[int]{huh.NewOption("Start from scratch", blankPreset)}
	for i, p := range w.presetChoices {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", p.Title, p.Category), i))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Template").
				Description("Pick a template or start from scratch").
				Options(options...).
				Value(&w.presetIdx),
		).Title("Step 1: Template"),
	).WithTheme(styles.FormTheme())
}

func (w *Wizard) fieldsForm() *huh.Form {
	var group *huh.Group

	switch w.genType {
	case api.TypeImage:
		group = huh.NewGroup(
			huh.NewText().
				Title("Prompt").
				Placeholder("A watercolor fox in a misty forest").
				Value(&w.prompt).
				Validate(required("prompt")),
			huh.NewSelect[string]().
				Title("Size").
				Options(
					huh.NewOption("1024 x 1024", "1024x1024"),
					huh.NewOption("512 x 512", "512x512"),
					huh.NewOption("1792 x 1024 (wide)", "1792x1024"),
					huh.NewOption("1024 x 1792 (tall)", "1024x1792"),
				).
				Value(&w.size),
			huh.NewSelect[string]().
				Title("Style").
				Options(
					huh.NewOption("Auto", "auto"),
					huh.NewOption("Photorealistic", "photorealistic"),
					huh.NewOption("Illustration", "illustration"),
					huh.NewOption("3D render", "3d"),
				).
				Value(&w.style),
		).Title("Image")

	case api.TypeBanner:
		group = huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Summer Sale").
				Value(&w.title).
				Validate(required("title")),
			huh.NewInput().
				Title("Subtitle").
				Placeholder("Up to 50% off").
				Value(&w.subtitle),
			huh.NewSelect[string]().
				Title("Platform").
				Options(
					huh.NewOption("YouTube", "youtube"),
					huh.NewOption("Twitter", "twitter"),
					huh.NewOption("Facebook", "facebook"),
					huh.NewOption("LinkedIn", "linkedin"),
					huh.NewOption("Instagram", "instagram"),
				).
				Value(&w.platform),
			huh.NewSelect[string]().
				Title("Style").
				Options(
					huh.NewOption("Modern", "modern"),
					huh.NewOption("Bold", "bold"),
					huh.NewOption("Minimal", "minimal"),
				).
				Value(&w.style),
		).Title("Banner")

	case api.TypeLogo:
		group = huh.NewGroup(
			huh.NewInput().
				Title("Brand name").
				Placeholder("Acme Corp").
				Value(&w.brandName).
				Validate(required("brand name")),
			huh.NewInput().
				Title("Industry").
				Placeholder("Software").
				Value(&w.industry).
				Validate(required("industry")),
			huh.NewSelect[string]().
				Title("Style").
				Options(
					huh.NewOption("Minimal", "minimal"),
					huh.NewOption("Modern", "modern"),
					huh.NewOption("Classic", "classic"),
					huh.NewOption("Playful", "playful"),
				).
				Value(&w.style),
			huh.NewInput().
				Title("Colors").
				Description("Comma separated, optional").
				Placeholder("#06B6D4, #10B981").
				Value(&w.colors),
		).Title("Logo")

	case api.TypeBackgroundRemoval:
		group = huh.NewGroup(
			huh.NewInput().
				Title("Image URL").
				Placeholder("https://example.com/photo.png").
				Value(&w.imageURL).
				Validate(required("image URL")),
		).Title("Remove background")

	case api.TypeVideo:
		group = huh.NewGroup(
			huh.NewInput().
				Title("Topic").
				Placeholder("Why the ocean is salty").
				Value(&w.topic).
				Validate(required("topic")),
			huh.NewText().
				Title("Script").
				Description("Leave empty to auto-generate from the topic").
				Value(&w.script),
			huh.NewSelect[string]().
				Title("Duration").
				Options(
					huh.NewOption("15 seconds", "15"),
					huh.NewOption("30 seconds", "30"),
					huh.NewOption("60 seconds", "60"),
				).
				Value(&w.duration),
			huh.NewSelect[string]().
				Title("Voice").
				Options(voiceOptions()...).
				Value(&w.voice),
		).Title("Video")

	case api.TypePresenterVideo:
		group = huh.NewGroup(
			huh.NewText().
				Title("Script").
				Placeholder("Welcome to our quarterly update...").
				Value(&w.script).
				Validate(required("script")),
			huh.NewSelect[string]().
				Title("Avatar").
				Options(
					huh.NewOption("Anna (business)", "anna"),
					huh.NewOption("Marcus (casual)", "marcus"),
					huh.NewOption("Sofia (friendly)", "sofia"),
				).
				Value(&w.avatarID),
			huh.NewSelect[string]().
				Title("Voice").
				Options(voiceOptions()...).
				Value(&w.voice),
		).Title("Presenter video")

	case api.TypeVoiceover:
		group = huh.NewGroup(
			huh.NewText().
				Title("Text").
				Placeholder("Welcome back to the show...").
				Value(&w.script).
				Validate(required("text")),
			huh.NewSelect[string]().
				Title("Voice").
				Options(voiceOptions()...).
				Value(&w.voice),
			huh.NewSelect[string]().
				Title("Speed").
				Options(
					huh.NewOption("0.75x", "0.75"),
					huh.NewOption("1.0x", "1.0"),
					huh.NewOption("1.25x", "1.25"),
					huh.NewOption("1.5x", "1.5"),
				).
				Value(&w.speed),
		).Title("Voiceover")

	default:
		group = huh.NewGroup(
			huh.NewText().
				Title("Prompt").
				Value(&w.prompt).
				Validate(required("prompt")),
		)
	}

	return huh.NewForm(group).WithTheme(styles.FormTheme())
}

// applyPreset prefills field values from the selected template
func (w *Wizard) applyPreset() {
	if w.presetIdx == blankPreset || w.presetIdx >= len(w.presetChoices) {
		return
	}
	p := w.presetChoices[w.presetIdx]
	switch w.genType {
	case api.TypeImage:
		w.prompt = p.Prompt
	case api.TypeBanner:
		w.title = p.Title
	case api.TypeVideo:
		w.topic = p.Title
		w.script = p.Prompt
	case api.TypeVoiceover:
		w.script = p.Prompt
	default:
		w.prompt = p.Prompt
	}
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		if !w.onStep2 {
			w.applyPreset()
			w.onStep2 = true
			w.form = w.fieldsForm()
			return w, w.form.Init()
		}
		complete := CompleteMsg{Type: w.genType, Request: w.buildRequest()}
		return w, func() tea.Msg { return complete }
	}

	return w, cmd
}

// buildRequest assembles the api request struct for the chosen type
func (w *Wizard) buildRequest() any {
	switch w.genType {
	case api.TypeImage:
		return &api.ImageRequest{
			Prompt: strings.TrimSpace(w.prompt),
			Size:   w.size,
			Style:  w.style,
		}
	case api.TypeBanner:
		return &api.BannerRequest{
			Title:    strings.TrimSpace(w.title),
			Subtitle: strings.TrimSpace(w.subtitle),
			Platform: w.platform,
			Style:    w.style,
		}
	case api.TypeLogo:
		return &api.LogoRequest{
			BrandName: strings.TrimSpace(w.brandName),
			Industry:  strings.TrimSpace(w.industry),
			Style:     w.style,
			Colors:    splitColors(w.colors),
		}
	case api.TypeBackgroundRemoval:
		return &api.RemoveBackgroundRequest{
			ImageURL: strings.TrimSpace(w.imageURL),
		}
	case api.TypeVideo:
		duration, _ := strconv.Atoi(w.duration)
		return &api.VideoRequest{
			Topic:    strings.TrimSpace(w.topic),
			Script:   strings.TrimSpace(w.script),
			Duration: duration,
			Voice:    w.voice,
		}
	case api.TypePresenterVideo:
		return &api.PresenterRequest{
			Script:   strings.TrimSpace(w.script),
			AvatarID: w.avatarID,
			VoiceID:  w.voice,
		}
	case api.TypeVoiceover:
		speed, _ := strconv.ParseFloat(w.speed, 64)
		return &api.VoiceoverRequest{
			Text:  strings.TrimSpace(w.script),
			Voice: w.voice,
			Speed: speed,
		}
	}
	return nil
}

// View implements tea.Model
func (w *Wizard) View() string {
	return w.form.View()
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func splitColors(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func voiceOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Alloy", "alloy"),
		huh.NewOption("Echo", "echo"),
		huh.NewOption("Fable", "fable"),
		huh.NewOption("Onyx", "onyx"),
		huh.NewOption("Nova", "nova"),
		huh.NewOption("Shimmer", "shimmer"),
	}
}
