package view

import (
	"fmt"
	"strings"

	"anchovy/internal/catalog"
	"anchovy/internal/tui/components"
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/model"
)

func renderGradients(m *model.Model, width int) string {
	st := m.Gradients
	var b strings.Builder
	b.WriteString(sectionTitle("Gradients", "Adjacent families blended along the spectrum. c copies the CSS."))
	b.WriteString("\n")

	barWidth := min(width-6, 72)
	if barWidth < 10 {
		barWidth = 10
	}
	for i, g := range catalog.Gradients {
		selected := i == st.Cursor
		title := fmt.Sprintf("%s%s  %s", cursor(selected), design.TitleStyle.Render(g.Name), design.TextMutedStyle.Render(g.Description))
		b.WriteString(title + "\n")

		height := 1
		if selected {
			height = 2
		}
		bar := components.NewGradientBar(g, barWidth).WithHeight(height).Render()
		b.WriteString(indent(bar, 2) + "\n")

		css := design.CodeStyle.Render(g.Background())
		if badge := copyBadge(st.Copy, g.Slug()); badge != "" {
			css += " " + badge
		}
		if selected {
			b.WriteString("  " + css + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
