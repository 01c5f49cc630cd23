package view

import (
	"fmt"
	"strings"

	"anchovy/internal/catalog"
	"anchovy/internal/tui/components"
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/feedback"
	"anchovy/internal/tui/model"
	"anchovy/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// pxPerCell scales token sizes to bar lengths.
const pxPerCell = 2

func renderSpacing(m *model.Model, width int) string {
	st := m.Spacing
	var b strings.Builder
	b.WriteString(sectionTitle("Spacing & Sizing", "←/→ switch section, c copies var(--token), y copies rem, f filters sizing."))
	b.WriteString("\n")

	b.WriteString(sectionHeading("Spacing scale", st.Section == model.SpacingScale) + "\n")
	for i, t := range catalog.SpacingScale {
		selected := st.Section == model.SpacingScale && st.Row == i
		b.WriteString(tokenRow(selected, t.Name, t.Px, t.Rem(), "tw "+t.Tailwind, 8, st.Copy, width, design.ColorPrimary) + "\n")
	}
	b.WriteString("\n")

	filter := "all"
	if st.Filter != "" {
		filter = string(st.Filter)
	}
	b.WriteString(sectionHeading("Sizing", st.Section == model.SizingScale) + "  " +
		design.TextMutedStyle.Render("filter: "+filter) + "\n")
	for i, t := range st.VisibleSizing() {
		selected := st.Section == model.SizingScale && st.Row == i
		b.WriteString(tokenRow(selected, t.Name, t.Px, t.Rem(), t.Usage, 32, st.Copy, width, design.ColorAccent) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionHeading("Playground", st.Section == model.SpacingPlayground) + "  " +
		hint("+/- adjust the focused slider") + "\n")
	b.WriteString(renderPlayground(m, width))
	return b.String()
}

func sectionHeading(title string, active bool) string {
	if active {
		return design.KeyStyle.Render("» ") + design.TitleStyle.Foreground(design.ColorPrimary).Render(title)
	}
	return "  " + design.TitleStyle.Render(title)
}

// tokenRow renders name, px, rem and note columns followed by a bar sized to
// the token. The bar is capped so the row and a badge fit in width.
func tokenRow(selected bool, name string, px float64, rem, note string, noteWidth int, ind *feedback.Indicator, width int, color lipgloss.TerminalColor) string {
	maxBar := width - 40 - noteWidth - 14
	if maxBar < 4 {
		maxBar = 4
	}
	cells := min(int(px/pxPerCell), maxBar)
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", cells))
	note = design.TextMutedStyle.Render(utils.PadRight(utils.TruncateString(note, noteWidth), noteWidth))
	line := fmt.Sprintf("%s%-16s %5gpx %-10s %s %s", cursor(selected), name, px, rem, note, bar)
	for _, key := range []string{name, name + "-rem"} {
		if badge := copyBadge(ind, key); badge != "" {
			line += " " + badge
		}
	}
	return line
}

func renderPlayground(m *model.Model, width int) string {
	st := m.Spacing
	var lines []string
	props := []model.PlaygroundProperty{model.PlaygroundPadding, model.PlaygroundGap, model.PlaygroundMargin}
	for _, p := range props {
		t := st.SliderToken(p)
		selected := st.Section == model.SpacingPlayground && st.Row == int(p)
		pos := st.Sliders[p]
		track := strings.Repeat("─", pos) + "●" + strings.Repeat("─", len(catalog.PlaygroundScale)-1-pos)
		lines = append(lines, fmt.Sprintf("%s%-8s %s %4gpx  %s", cursor(selected), p, track, t.Px, t.CSSVar))
	}

	pad := cellsFor(st.SliderToken(model.PlaygroundPadding).Px)
	gap := cellsFor(st.SliderToken(model.PlaygroundGap).Px)
	margin := cellsFor(st.SliderToken(model.PlaygroundMargin).Px)

	chip := lipgloss.NewStyle().Background(design.ColorPrimary).Foreground(design.ColorBackground).Padding(0, pad)
	items := components.JoinHorizontal(gap, chip.Render("A"), chip.Render("B"), chip.Render("C"))
	preview := lipgloss.NewStyle().MarginLeft(margin).Render(
		design.BorderStyle.Render(items))

	css := lipgloss.NewStyle().MarginLeft(2).Render(design.CodeStyle.Render(st.PlaygroundCSS()))
	if badge := copyBadge(st.Copy, "playground"); badge != "" {
		css = lipgloss.JoinHorizontal(lipgloss.Bottom, css, " "+badge)
	}
	return strings.Join(lines, "\n") + "\n" + preview + "\n" + css + "\n"
}

// cellsFor maps a px value onto terminal cells, one cell per 8px.
func cellsFor(px float64) int {
	return int(px / 8)
}
