package catalog

import "anchovy/internal/colormath"

// ShadeNames lists the shade labels every family uses, lightest first.
var ShadeNames = [10]string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// PrimaryShadeIndex is the position of the "500" shade used for previews.
const PrimaryShadeIndex = 5

// ColorShade is one color value within a family.
type ColorShade struct {
	Name string
	Hex  string
}

// CMYK derives the print representation from Hex.
func (s ColorShade) CMYK() string {
	return colormath.MustHexToCMYK(s.Hex)
}

// Foreground returns the text pair that reads best on the shade.
func (s ColorShade) Foreground() colormath.Foreground {
	fg, err := colormath.PickForeground(s.Hex)
	if err != nil {
		return colormath.DarkForeground
	}
	return fg
}

// ColorFamily is a named hue group of ten shades ordered light to dark.
type ColorFamily struct {
	Name        string
	Subtitle    string
	Description string
	Shades      [10]ColorShade
}

// Primary returns the canonical "500" shade.
func (f ColorFamily) Primary() ColorShade {
	return f.Shades[PrimaryShadeIndex]
}

// Slug is the lower-case family name used in copy keys and token paths.
func (f ColorFamily) Slug() string {
	return slugify(f.Name)
}

// TokenName is the lower-case subtitle the token file groups the family under.
func (f ColorFamily) TokenName() string {
	return slugify(f.Subtitle)
}

func family(name, subtitle, description string, hexes ...string) ColorFamily {
	f := ColorFamily{Name: name, Subtitle: subtitle, Description: description}
	for i := range f.Shades {
		f.Shades[i] = ColorShade{Name: ShadeNames[i], Hex: hexes[i]}
	}
	return f
}

// Families is the color spectrum shown on the /spectrum page, in ROY G BIV
// order.
var Families = []ColorFamily{
	family("Red", "Signal",
		"A contemporary rose-shifted red that conveys energy, urgency, and innovation. Ideal for CTAs, alerts, and accent elements.",
		"#FFF1F2", "#FFE4E6", "#FECDD3", "#FDA4AF", "#FB7185",
		"#F43F5E", "#E11D48", "#BE123C", "#9F1239", "#881337"),
	family("Orange", "Ember",
		"A warm, electric amber that radiates creativity and warmth. Perfect for highlights, notifications, and progress indicators.",
		"#FFF7ED", "#FFEDD5", "#FED7AA", "#FDBA74", "#FB923C",
		"#F97316", "#EA580C", "#C2410C", "#9A3412", "#7C2D12"),
	family("Yellow", "Solar",
		"A golden solar tone representing optimism and intelligence. Use for warnings, badges, and attention-grabbing elements.",
		"#FEFCE8", "#FEF9C3", "#FEF08A", "#FDE047", "#FACC15",
		"#EAB308", "#CA8A04", "#A16207", "#854D0E", "#713F12"),
	family("Green", "Matrix",
		"An emerald-teal green evoking growth, success, and digital intelligence. Ideal for confirmations, status indicators, and positive feedback.",
		"#ECFDF5", "#D1FAE5", "#A7F3D0", "#6EE7B7", "#34D399",
		"#10B981", "#059669", "#047857", "#065F46", "#064E3B"),
	family("Blue", "Neural",
		"A core electric blue representing trust, depth, and AI cognition. The primary brand color for interfaces, links, and interactive elements.",
		"#EFF6FF", "#DBEAFE", "#BFDBFE", "#93C5FD", "#60A5FA",
		"#3B82F6", "#2563EB", "#1D4ED8", "#1E40AF", "#1E3A8A"),
	family("Indigo", "Logic",
		"A deep, contemplative indigo symbolizing precision and analytical thinking. Perfect for secondary accents and data visualizations.",
		"#EEF2FF", "#E0E7FF", "#C7D2FE", "#A5B4FC", "#818CF8",
		"#6366F1", "#4F46E5", "#4338CA", "#3730A7", "#312E81"),
	family("Violet", "Synapse",
		"A vibrant synapse purple representing imagination, transformation, and neural connectivity. Use for creative highlights and premium elements.",
		"#F5F3FF", "#EDE9FE", "#DDD6FE", "#C4B5FD", "#A78BFA",
		"#8B5CF6", "#7C3AED", "#6D28D9", "#5B21B6", "#4C1D95"),
}

// FamilyByName looks a family up case-insensitively by name ("blue") or
// subtitle ("neural").
func FamilyByName(name string) (ColorFamily, bool) {
	want := slugify(name)
	for _, f := range Families {
		if f.Slug() == want || f.TokenName() == want {
			return f, true
		}
	}
	return ColorFamily{}, false
}
