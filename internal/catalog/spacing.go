package catalog

import (
	"strconv"
	"strings"
)

// RemBase is the root font size rem values are computed against.
const RemBase = 16.0

// SpacingToken is a step of the spacing scale.
type SpacingToken struct {
	Name   string
	CSSVar string
	Px     float64
	// Tailwind is the matching utility suffix, e.g. "2.5" for p-2.5.
	Tailwind string
}

// Rem derives the rem value from Px.
func (t SpacingToken) Rem() string {
	return FormatRem(t.Px)
}

// Declaration is the snippet copied for the token.
func (t SpacingToken) Declaration() string {
	return varDeclaration(t.CSSVar, t.Px)
}

// FormatRem formats px/16 with at most four decimals, trailing zeros trimmed.
func FormatRem(px float64) string {
	return trimFloat(px/RemBase, 4) + "rem"
}

func varDeclaration(cssVar string, px float64) string {
	return "var(" + cssVar + "); /* " + trimFloat(px, 2) + "px */"
}

// SizingCategory groups sizing tokens.
type SizingCategory string

const (
	SizingIcon      SizingCategory = "icon"
	SizingComponent SizingCategory = "component"
	SizingLayout    SizingCategory = "layout"
)

// SizingCategories in display order.
var SizingCategories = []SizingCategory{SizingIcon, SizingComponent, SizingLayout}

// SizingToken is a fixed dimension for icons, components or layout regions.
type SizingToken struct {
	Name     string
	CSSVar   string
	Px       float64
	Usage    string
	Category SizingCategory
}

// Rem derives the rem value from Px.
func (t SizingToken) Rem() string {
	return FormatRem(t.Px)
}

// Declaration is the snippet copied for the token.
func (t SizingToken) Declaration() string {
	return varDeclaration(t.CSSVar, t.Px)
}

// SpacingScale is the 4px-based spacing scale.
var SpacingScale = []SpacingToken{
	{Name: "space-0", CSSVar: "--space-0", Px: 0, Tailwind: "0"},
	{Name: "space-px", CSSVar: "--space-px", Px: 1, Tailwind: "px"},
	{Name: "space-0.5", CSSVar: "--space-0-5", Px: 2, Tailwind: "0.5"},
	{Name: "space-1", CSSVar: "--space-1", Px: 4, Tailwind: "1"},
	{Name: "space-1.5", CSSVar: "--space-1-5", Px: 6, Tailwind: "1.5"},
	{Name: "space-2", CSSVar: "--space-2", Px: 8, Tailwind: "2"},
	{Name: "space-2.5", CSSVar: "--space-2-5", Px: 10, Tailwind: "2.5"},
	{Name: "space-3", CSSVar: "--space-3", Px: 12, Tailwind: "3"},
	{Name: "space-4", CSSVar: "--space-4", Px: 16, Tailwind: "4"},
	{Name: "space-5", CSSVar: "--space-5", Px: 20, Tailwind: "5"},
	{Name: "space-6", CSSVar: "--space-6", Px: 24, Tailwind: "6"},
	{Name: "space-8", CSSVar: "--space-8", Px: 32, Tailwind: "8"},
	{Name: "space-10", CSSVar: "--space-10", Px: 40, Tailwind: "10"},
	{Name: "space-12", CSSVar: "--space-12", Px: 48, Tailwind: "12"},
	{Name: "space-16", CSSVar: "--space-16", Px: 64, Tailwind: "16"},
	{Name: "space-20", CSSVar: "--space-20", Px: 80, Tailwind: "20"},
	{Name: "space-24", CSSVar: "--space-24", Px: 96, Tailwind: "24"},
	{Name: "space-32", CSSVar: "--space-32", Px: 128, Tailwind: "32"},
	{Name: "space-40", CSSVar: "--space-40", Px: 160, Tailwind: "40"},
	{Name: "space-48", CSSVar: "--space-48", Px: 192, Tailwind: "48"},
	{Name: "space-64", CSSVar: "--space-64", Px: 256, Tailwind: "64"},
	{Name: "space-80", CSSVar: "--space-80", Px: 320, Tailwind: "80"},
	{Name: "space-96", CSSVar: "--space-96", Px: 384, Tailwind: "96"},
}

// SizingScale lists sizing tokens grouped by category.
var SizingScale = []SizingToken{
	{Name: "size-icon-sm", CSSVar: "--size-icon-sm", Px: 16, Usage: "Small icons, inline indicators", Category: SizingIcon},
	{Name: "size-icon-md", CSSVar: "--size-icon-md", Px: 20, Usage: "Default icons, nav items", Category: SizingIcon},
	{Name: "size-icon-lg", CSSVar: "--size-icon-lg", Px: 24, Usage: "Large icons, feature highlights", Category: SizingIcon},
	{Name: "size-icon-xl", CSSVar: "--size-icon-xl", Px: 32, Usage: "Hero icons, empty states", Category: SizingIcon},
	{Name: "size-avatar-sm", CSSVar: "--size-avatar-sm", Px: 28, Usage: "Compact lists, comments", Category: SizingComponent},
	{Name: "size-avatar-md", CSSVar: "--size-avatar-md", Px: 36, Usage: "Default avatar in headers", Category: SizingComponent},
	{Name: "size-avatar-lg", CSSVar: "--size-avatar-lg", Px: 48, Usage: "Profile cards, team pages", Category: SizingComponent},
	{Name: "size-btn-sm", CSSVar: "--size-btn-sm", Px: 32, Usage: "Small button height", Category: SizingComponent},
	{Name: "size-btn-md", CSSVar: "--size-btn-md", Px: 40, Usage: "Default button height", Category: SizingComponent},
	{Name: "size-btn-lg", CSSVar: "--size-btn-lg", Px: 48, Usage: "Large button height", Category: SizingComponent},
	{Name: "size-input", CSSVar: "--size-input", Px: 40, Usage: "Default input height", Category: SizingComponent},
	{Name: "size-sidebar", CSSVar: "--size-sidebar", Px: 280, Usage: "Sidebar navigation width", Category: SizingLayout},
	{Name: "size-nav", CSSVar: "--size-nav", Px: 64, Usage: "Top navigation height", Category: SizingLayout},
	{Name: "size-content-sm", CSSVar: "--size-content-sm", Px: 640, Usage: "Narrow content column", Category: SizingLayout},
	{Name: "size-content-md", CSSVar: "--size-content-md", Px: 768, Usage: "Medium content column", Category: SizingLayout},
	{Name: "size-content-lg", CSSVar: "--size-content-lg", Px: 1024, Usage: "Wide content column", Category: SizingLayout},
	{Name: "size-content-xl", CSSVar: "--size-content-xl", Px: 1280, Usage: "Max content width", Category: SizingLayout},
}

// PlaygroundScale is the subset of SpacingScale the playground sliders step
// through.
var PlaygroundScale = spacingAt(0, 2, 4, 8, 12, 16, 20, 24, 32, 48, 64)

func spacingAt(px ...float64) []SpacingToken {
	var out []SpacingToken
	for _, t := range SpacingScale {
		for _, p := range px {
			if t.Px == p {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// SizingByCategory returns the sizing tokens of one category in table order.
func SizingByCategory(c SizingCategory) []SizingToken {
	var out []SizingToken
	for _, t := range SizingScale {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

func trimFloat(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
