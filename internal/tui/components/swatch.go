package components

import (
	"anchovy/internal/catalog"
	"anchovy/internal/colormath"
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Swatch renders one colour shade as a filled block with the shade name and
// hex in the foreground PickForeground chooses for it.
type Swatch struct {
	Shade    catalog.ColorShade
	Width    int
	Selected bool
	// Badge replaces the hex line, e.g. "copied".
	Badge string
}

// NewSwatch creates a swatch of the default width.
func NewSwatch(shade catalog.ColorShade) *Swatch {
	return &Swatch{Shade: shade, Width: design.SwatchWidth}
}

// WithSelected marks the swatch as focused.
func (s *Swatch) WithSelected(selected bool) *Swatch {
	s.Selected = selected
	return s
}

// WithBadge shows text in place of the hex value.
func (s *Swatch) WithBadge(badge string) *Swatch {
	s.Badge = badge
	return s
}

// Render returns a two-line block.
func (s *Swatch) Render() string {
	fg, err := colormath.PickForeground(s.Shade.Hex)
	if err != nil {
		return design.TextErrorStyle.Render(utils.PadRight("invalid", s.Width))
	}

	base := lipgloss.NewStyle().Background(lipgloss.Color(s.Shade.Hex))
	name := s.Shade.Name
	if s.Selected {
		name = "▸" + name
	}
	second := s.Shade.Hex
	if s.Badge != "" {
		second = s.Badge
	}

	top := base.Foreground(lipgloss.Color(fg.MutedText)).Render(utils.Center(name, s.Width))
	bottomStyle := base.Foreground(lipgloss.Color(fg.Text))
	if s.Selected || s.Badge != "" {
		bottomStyle = bottomStyle.Bold(true)
	}
	bottom := bottomStyle.Render(utils.Center(second, s.Width))
	return top + "\n" + bottom
}
