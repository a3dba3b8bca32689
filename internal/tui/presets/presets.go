// ABOUTME: Built-in prompt templates for the generate wizard
// ABOUTME: Mirrors the template gallery from the web dashboard

package presets

import "github.com/mediaforge/mediaforge-cli/internal/api"

// Preset is a ready-made starting point for a generation
type Preset struct {
	Title    string
	Category string
	Type     string // one of the api.Type* values
	Prompt   string
}

// builtin is the template gallery. IDs are positional; the wizard
// references presets by slice index.
var builtin = []Preset{
	{
		Title:    "Product Launch Teaser",
		Category: "Marketing",
		Type:     api.TypeImage,
		Prompt:   "Sleek product reveal scene, dramatic studio lighting, dark background with a single spotlight, premium feel",
	},
	{
		Title:    "Tech Review Banner",
		Category: "Social Media",
		Type:     api.TypeBanner,
		Prompt:   "Modern tech review channel banner, circuit board motifs, electric blue accents",
	},
	{
		Title:    "Corporate Presentation",
		Category: "Business",
		Type:     api.TypeImage,
		Prompt:   "Clean corporate hero image, glass office building, soft morning light, professional tone",
	},
	{
		Title:    "Instagram Story Sale",
		Category: "E-commerce",
		Type:     api.TypeBanner,
		Prompt:   "Bold seasonal sale story, vibrant gradient background, large percentage-off typography",
	},
	{
		Title:    "Educational Course Intro",
		Category: "Education",
		Type:     api.TypeVideo,
		Prompt:   "Friendly animated course introduction, chalkboard elements, warm inviting colors",
	},
	{
		Title:    "Youtube Thumbnail Gaming",
		Category: "Social Media",
		Type:     api.TypeImage,
		Prompt:   "High-energy gaming thumbnail, neon colors, explosive action scene, exaggerated expression",
	},
	{
		Title:    "Podcast Episode Voiceover",
		Category: "Audio",
		Type:     api.TypeVoiceover,
		Prompt:   "Welcome back to the show. In today's episode we dig into what it really takes to build something people love.",
	},
}

// All returns the full template gallery
func All() []Preset {
	out := make([]Preset, len(builtin))
	copy(out, builtin)
	return out
}

// Categories returns the distinct categories in gallery order
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range builtin {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// ByType returns the presets matching a generation type
func ByType(genType string) []Preset {
	var out []Preset
	for _, p := range builtin {
		if p.Type == genType {
			out = append(out, p)
		}
	}
	return out
}
