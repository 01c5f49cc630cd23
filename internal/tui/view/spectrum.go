package view

import (
	"fmt"
	"strings"

	"anchovy/internal/catalog"
	"anchovy/internal/colormath"
	"anchovy/internal/tui/components"
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderSpectrum(m *model.Model, width int) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Spectrum", "Seven families, ten shades each. enter/c copies the hex, y the CMYK values."))
	b.WriteString("\n")

	perRow := components.NewLayout(width-2, 0).Columns(design.SwatchWidth, 0)
	if perRow > len(catalog.ShadeNames) {
		perRow = len(catalog.ShadeNames)
	}

	st := m.Spectrum
	for fi, f := range catalog.Families {
		title := design.TitleStyle.Render(f.Name) + " " + design.SubtitleStyle.Render(f.Subtitle)
		if fi == st.Family {
			title = cursor(true) + title
		}
		b.WriteString(title + "\n")

		var rows []string
		var row []string
		for si, shade := range f.Shades {
			sw := components.NewSwatch(shade).
				WithSelected(fi == st.Family && si == st.Shade).
				WithBadge(badgeText(st.Copy, model.ShadeKey(f, shade)))
			row = append(row, sw.Render())
			if len(row) == perRow {
				rows = append(rows, components.JoinHorizontal(0, row...))
				row = nil
			}
		}
		if len(row) > 0 {
			rows = append(rows, components.JoinHorizontal(0, row...))
		}
		b.WriteString(components.JoinVertical(rows...) + "\n")
	}

	b.WriteString("\n" + renderShadeDetail(m, width))
	return b.String()
}

func renderShadeDetail(m *model.Model, width int) string {
	f, shade := m.Spectrum.Selected()
	fg, _ := colormath.PickForeground(shade.Hex)
	onLight, _ := colormath.ContrastRatio(shade.Hex, colormath.LightBackground)
	onDark, _ := colormath.ContrastRatio(shade.Hex, colormath.DarkBackground)

	lines := []string{
		fmt.Sprintf("%-12s %s", "Hex", design.CodeStyle.Render(shade.Hex)),
		fmt.Sprintf("%-12s %s", "CMYK", shade.CMYK()),
		fmt.Sprintf("%-12s %s / %s", "Foreground", fg.Text, fg.MutedText),
		fmt.Sprintf("%-12s %s (%s)", "On light", colormath.FormatContrast(onLight), colormath.WCAGLevel(onLight)),
		fmt.Sprintf("%-12s %s (%s)", "On dark", colormath.FormatContrast(onDark), colormath.WCAGLevel(onDark)),
	}
	if badge := copyBadge(m.Spectrum.Copy, model.ShadeKey(f, shade)); badge != "" {
		lines = append(lines, badge)
	}

	return components.NewPanel(fmt.Sprintf("%s %s", f.Name, shade.Name)).
		WithWidth(min(width-2, 48)).
		WithAccent(lipgloss.Color(shade.Hex)).
		WithContent(strings.Join(lines, "\n")).
		Render()
}
