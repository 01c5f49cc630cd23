package components

import (
	"strings"

	"anchovy/internal/catalog"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// GradientBar approximates a CSS linear gradient with one coloured cell per
// column, blending between stops in CIE-L*a*b* space.
type GradientBar struct {
	Colors []string
	Width  int
	Height int
}

// NewGradientBar creates a bar for a preset.
func NewGradientBar(g catalog.GradientPreset, width int) *GradientBar {
	return &GradientBar{Colors: g.Colors, Width: width, Height: 1}
}

// WithHeight sets the number of rows.
func (b *GradientBar) WithHeight(h int) *GradientBar {
	b.Height = h
	return b
}

// Stops returns the hex colour of every column.
func (b *GradientBar) Stops() []string {
	if b.Width <= 0 || len(b.Colors) == 0 {
		return nil
	}
	stops := make([]colorful.Color, 0, len(b.Colors))
	for _, hex := range b.Colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil
		}
		stops = append(stops, c)
	}

	out := make([]string, b.Width)
	for i := range out {
		if len(stops) == 1 || b.Width == 1 {
			out[i] = stops[0].Hex()
			continue
		}
		pos := float64(i) / float64(b.Width-1) * float64(len(stops)-1)
		seg := int(pos)
		if seg >= len(stops)-1 {
			seg = len(stops) - 2
		}
		out[i] = stops[seg].BlendLab(stops[seg+1], pos-float64(seg)).Clamped().Hex()
	}
	return out
}

// Render returns the bar.
func (b *GradientBar) Render() string {
	stops := b.Stops()
	if stops == nil {
		return ""
	}
	var row strings.Builder
	for _, hex := range stops {
		row.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(" "))
	}
	h := b.Height
	if h < 1 {
		h = 1
	}
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row.String()
	}
	return strings.Join(rows, "\n")
}
