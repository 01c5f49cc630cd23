package catalog

import (
	"fmt"
	"strings"

	"anchovy/internal/colormath"
)

// TypographyColor is a text color with a light-mode and dark-mode value.
type TypographyColor struct {
	Name     string
	Purpose  string
	LightHex string
	DarkHex  string
}

// LightCMYK derives the CMYK string of LightHex.
func (c TypographyColor) LightCMYK() string { return colormath.MustHexToCMYK(c.LightHex) }

// DarkCMYK derives the CMYK string of DarkHex.
func (c TypographyColor) DarkCMYK() string { return colormath.MustHexToCMYK(c.DarkHex) }

// ContrastLight is the WCAG ratio of LightHex against the light background.
func (c TypographyColor) ContrastLight() string {
	return contrastAgainst(c.LightHex, colormath.LightBackground)
}

// ContrastDark is the WCAG ratio of DarkHex against the dark background.
func (c TypographyColor) ContrastDark() string {
	return contrastAgainst(c.DarkHex, colormath.DarkBackground)
}

func contrastAgainst(fg, bg string) string {
	ratio, err := colormath.ContrastRatio(fg, bg)
	if err != nil {
		return "n/a"
	}
	return colormath.FormatContrast(ratio)
}

// TypographyColors are the text colors of the design system.
var TypographyColors = []TypographyColor{
	{Name: "Heading Primary", Purpose: "Main headings, hero text, page titles", LightHex: "#0F172A", DarkHex: "#F8FAFC"},
	{Name: "Heading Secondary", Purpose: "Section headings, card titles", LightHex: "#1E293B", DarkHex: "#F1F5F9"},
	{Name: "Body Text", Purpose: "Paragraphs, descriptions, general content", LightHex: "#334155", DarkHex: "#E2E8F0"},
	{Name: "Secondary Text", Purpose: "Captions, labels, supporting information", LightHex: "#64748B", DarkHex: "#94A3B8"},
	{Name: "Muted Text", Purpose: "Placeholders, disabled labels, metadata", LightHex: "#94A3B8", DarkHex: "#64748B"},
	{Name: "Link Default", Purpose: "Hyperlinks, interactive text, navigation", LightHex: "#2563EB", DarkHex: "#60A5FA"},
	{Name: "Link Hover", Purpose: "Hovered or focused hyperlinks", LightHex: "#1D4ED8", DarkHex: "#93C5FD"},
	{Name: "Success", Purpose: "Confirmation messages, valid states", LightHex: "#059669", DarkHex: "#34D399"},
	{Name: "Warning", Purpose: "Caution indicators, pending states", LightHex: "#CA8A04", DarkHex: "#FACC15"},
	{Name: "Error", Purpose: "Error messages, destructive actions, invalid states", LightHex: "#E11D48", DarkHex: "#FB7185"},
}

// FontFamily is one of the two type families of the system.
type FontFamily string

const (
	FontSans FontFamily = "Inter"
	FontMono FontFamily = "JetBrains Mono"
)

// Stack is the CSS font-family value for the family.
func (f FontFamily) Stack() string {
	if f == FontMono {
		return "JetBrains Mono, monospace"
	}
	return "Inter, sans-serif"
}

// TypeLevel is one step of the typographic scale.
type TypeLevel struct {
	Name          string
	Tag           string
	FontFamily    FontFamily
	SizePx        int
	Weight        int
	LineHeight    float64
	LetterSpacing string
	SampleText    string
	Usage         string
}

// CSS renders the copyable declaration block for the level.
func (l TypeLevel) CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "font-family: %s;\n", l.FontFamily.Stack())
	fmt.Fprintf(&b, "font-size: %dpx;\n", l.SizePx)
	fmt.Fprintf(&b, "font-weight: %d;\n", l.Weight)
	fmt.Fprintf(&b, "line-height: %s;\n", trimFloat(l.LineHeight, 2))
	fmt.Fprintf(&b, "letter-spacing: %s;", l.LetterSpacing)
	return b.String()
}

// TypeScale lists the levels from largest to smallest.
var TypeScale = []TypeLevel{
	{Name: "Display Large", Tag: "h1", FontFamily: FontSans, SizePx: 72, Weight: 700, LineHeight: 1.1, LetterSpacing: "-0.025em",
		SampleText: "Anchovy AI", Usage: "Hero sections, landing pages, splash screens"},
	{Name: "Display Medium", Tag: "h1", FontFamily: FontSans, SizePx: 56, Weight: 700, LineHeight: 1.1, LetterSpacing: "-0.025em",
		SampleText: "Design System", Usage: "Page titles, major section introductions"},
	{Name: "Display Small", Tag: "h2", FontFamily: FontSans, SizePx: 48, Weight: 600, LineHeight: 1.15, LetterSpacing: "-0.02em",
		SampleText: "Color Spectrum", Usage: "Secondary hero text, feature highlights"},
	{Name: "Heading 1", Tag: "h1", FontFamily: FontSans, SizePx: 36, Weight: 600, LineHeight: 1.2, LetterSpacing: "-0.02em",
		SampleText: "Neural Networks", Usage: "Page headings, primary content titles"},
	{Name: "Heading 2", Tag: "h2", FontFamily: FontSans, SizePx: 30, Weight: 600, LineHeight: 1.25, LetterSpacing: "-0.015em",
		SampleText: "Machine Learning", Usage: "Section headings, card group titles"},
	{Name: "Heading 3", Tag: "h3", FontFamily: FontSans, SizePx: 24, Weight: 600, LineHeight: 1.3, LetterSpacing: "-0.01em",
		SampleText: "Data Processing", Usage: "Subsection headings, widget titles"},
	{Name: "Heading 4", Tag: "h4", FontFamily: FontSans, SizePx: 20, Weight: 500, LineHeight: 1.35, LetterSpacing: "-0.005em",
		SampleText: "Inference Pipeline", Usage: "Card titles, sidebar headings, dialog titles"},
	{Name: "Heading 5", Tag: "h5", FontFamily: FontSans, SizePx: 18, Weight: 500, LineHeight: 1.4, LetterSpacing: "0em",
		SampleText: "Model Architecture", Usage: "Small titles, list group headings"},
	{Name: "Heading 6", Tag: "h6", FontFamily: FontSans, SizePx: 16, Weight: 500, LineHeight: 1.5, LetterSpacing: "0em",
		SampleText: "Configuration", Usage: "Minor headings, form section labels"},
	{Name: "Body Large", Tag: "p", FontFamily: FontSans, SizePx: 18, Weight: 400, LineHeight: 1.7, LetterSpacing: "0em",
		SampleText: "Building intelligent systems requires careful attention to both data quality and algorithmic design.",
		Usage:      "Lead paragraphs, feature descriptions, introductions"},
	{Name: "Body Base", Tag: "p", FontFamily: FontSans, SizePx: 16, Weight: 400, LineHeight: 1.7, LetterSpacing: "0em",
		SampleText: "Our platform leverages state-of-the-art transformer models to deliver real-time inference at scale.",
		Usage:      "Default body text, descriptions, general content"},
	{Name: "Body Small", Tag: "p", FontFamily: FontSans, SizePx: 14, Weight: 400, LineHeight: 1.65, LetterSpacing: "0.005em",
		SampleText: "Fine-tuned for optimal performance across edge devices and cloud infrastructure.",
		Usage:      "Secondary body text, tooltips, supplementary content"},
	{Name: "Caption", Tag: "span", FontFamily: FontSans, SizePx: 12, Weight: 400, LineHeight: 1.5, LetterSpacing: "0.01em",
		SampleText: "Updated 3 minutes ago  ·  v2.4.1", Usage: "Timestamps, helper text, image captions, metadata"},
	{Name: "Overline", Tag: "span", FontFamily: FontSans, SizePx: 11, Weight: 500, LineHeight: 1.5, LetterSpacing: "0.1em",
		SampleText: "FEATURED MODEL", Usage: "Category labels, section tags, badge text (always uppercase)"},
	{Name: "Code Inline", Tag: "code", FontFamily: FontMono, SizePx: 14, Weight: 400, LineHeight: 1.6, LetterSpacing: "0em",
		SampleText: "const model = await loadModel('anchovy-v3');", Usage: "Inline code, variable names, file paths, CLI commands"},
	{Name: "Code Block", Tag: "pre", FontFamily: FontMono, SizePx: 13, Weight: 400, LineHeight: 1.7, LetterSpacing: "0em",
		SampleText: "function predict(input: Tensor): Result {\n  return pipeline.run(input);\n}",
		Usage:      "Multi-line code, syntax highlighted blocks, terminal output"},
}

// FontWeight is a weight a family ships with.
type FontWeight struct {
	Weight int
	Name   string
	Family FontFamily
}

// CSS is the declaration copied from the weights showcase.
func (w FontWeight) CSS() string {
	return fmt.Sprintf("font-weight: %d;", w.Weight)
}

// Key identifies the weight in copy feedback.
func (w FontWeight) Key() string {
	return fmt.Sprintf("weight-%s-%d", slugify(string(w.Family)), w.Weight)
}

// FontWeights lists the Inter weights followed by the JetBrains Mono ones.
var FontWeights = []FontWeight{
	{Weight: 300, Name: "Light", Family: FontSans},
	{Weight: 400, Name: "Regular", Family: FontSans},
	{Weight: 500, Name: "Medium", Family: FontSans},
	{Weight: 600, Name: "Semibold", Family: FontSans},
	{Weight: 700, Name: "Bold", Family: FontSans},
	{Weight: 800, Name: "Extrabold", Family: FontSans},
	{Weight: 400, Name: "Regular", Family: FontMono},
	{Weight: 500, Name: "Medium", Family: FontMono},
	{Weight: 600, Name: "Semibold", Family: FontMono},
}
