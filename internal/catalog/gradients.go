package catalog

import (
	"fmt"
	"strings"
)

// GradientPreset is a named linear gradient.
type GradientPreset struct {
	Name        string
	Description string
	Colors      []string
	Angle       int
	// Published is the declaration as documented for the preset. Validate
	// checks it against the one derived from Angle and Colors.
	Published string
}

// CSS derives the linear-gradient declaration from Angle and Colors.
func (g GradientPreset) CSS() string {
	return LinearGradient(g.Angle, g.Colors)
}

// Background is the declaration copied from the gradients page.
func (g GradientPreset) Background() string {
	return "background: " + g.CSS() + ";"
}

// Slug is the lower-case name used in copy keys and token paths.
func (g GradientPreset) Slug() string {
	return slugify(g.Name)
}

// LinearGradient formats "linear-gradient(<angle>deg, <c1>, <c2>, ...)".
func LinearGradient(angle int, colors []string) string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", angle, strings.Join(colors, ", "))
}

// Gradients are the presets shown on the /gradients page.
var Gradients = []GradientPreset{
	{Name: "Aurora", Description: "Primary brand gradient — Neural Blue to Synapse Violet",
		Colors: []string{"#3B82F6", "#6366F1", "#8B5CF6"}, Angle: 135,
		Published: "linear-gradient(135deg, #3B82F6, #6366F1, #8B5CF6)"},
	{Name: "Sunset Protocol", Description: "Warm accent — Signal Red through Ember Orange to Solar Gold",
		Colors: []string{"#F43F5E", "#F97316", "#EAB308"}, Angle: 135,
		Published: "linear-gradient(135deg, #F43F5E, #F97316, #EAB308)"},
	{Name: "Neural Pathway", Description: "Cool intelligence — Logic Indigo to Neural Blue",
		Colors: []string{"#4F46E5", "#2563EB", "#3B82F6"}, Angle: 90,
		Published: "linear-gradient(90deg, #4F46E5, #2563EB, #3B82F6)"},
	{Name: "Bio Circuit", Description: "Nature meets tech — Matrix Green to Neural Blue",
		Colors: []string{"#10B981", "#3B82F6"}, Angle: 135,
		Published: "linear-gradient(135deg, #10B981, #3B82F6)"},
	{Name: "Full Spectrum", Description: "Complete ROY G BIV spectrum — all seven families",
		Colors: []string{"#F43F5E", "#F97316", "#EAB308", "#10B981", "#3B82F6", "#6366F1", "#8B5CF6"}, Angle: 90,
		Published: "linear-gradient(90deg, #F43F5E, #F97316, #EAB308, #10B981, #3B82F6, #6366F1, #8B5CF6)"},
	{Name: "Deep Space", Description: "Dark mode hero — deep indigo to violet to dark red",
		Colors: []string{"#312E81", "#4C1D95", "#881337"}, Angle: 135,
		Published: "linear-gradient(135deg, #312E81, #4C1D95, #881337)"},
	{Name: "Electric Dawn", Description: "Light mode hero — soft blue through violet to rose",
		Colors: []string{"#DBEAFE", "#DDD6FE", "#FFE4E6"}, Angle: 135,
		Published: "linear-gradient(135deg, #DBEAFE, #DDD6FE, #FFE4E6)"},
	{Name: "Neon Pulse", Description: "High energy accent — emerald through blue to violet",
		Colors: []string{"#34D399", "#60A5FA", "#A78BFA"}, Angle: 90,
		Published: "linear-gradient(90deg, #34D399, #60A5FA, #A78BFA)"},
}

// GradientByName looks a preset up case-insensitively.
func GradientByName(name string) (GradientPreset, bool) {
	want := slugify(name)
	for _, g := range Gradients {
		if g.Slug() == want {
			return g, true
		}
	}
	return GradientPreset{}, false
}
