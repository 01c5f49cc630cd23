package view

import (
	"fmt"
	"strings"

	"anchovy/internal/catalog"
	"anchovy/internal/tui/components"
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/model"
	"anchovy/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func renderTypography(m *model.Model, width int) string {
	st := m.Typography
	var b strings.Builder
	b.WriteString(sectionTitle("Typography", "←/→ switch table, c copies the hex, CSS or weight, y copies CMYK."))
	b.WriteString("\n")

	b.WriteString(sectionHeading("Text colors", st.Section == model.TypographyColors) + "\n")
	b.WriteString(renderTypographyColors(m) + "\n\n")

	b.WriteString(sectionHeading("Type scale", st.Section == model.TypographyScale) + "  " +
		design.TextMutedStyle.Render(fmt.Sprintf("%s · %s", catalog.FontSans, catalog.FontMono)) + "\n")
	sampleWidth := max(width-60, 12)
	for i, l := range catalog.TypeScale {
		selected := st.Section == model.TypographyScale && st.Row == i
		sample := lipgloss.NewStyle().Foreground(design.ColorText)
		if l.Weight >= 600 {
			sample = sample.Bold(true)
		}
		if l.FontFamily == catalog.FontMono {
			sample = sample.Foreground(design.ColorCode)
		}
		text := strings.SplitN(l.SampleText, "\n", 2)[0]
		if l.Name == "Overline" {
			text = strings.ToUpper(text)
		}
		text = utils.PadRight(utils.TruncateString(text, sampleWidth), sampleWidth)
		metrics := design.TextMutedStyle.Render(fmt.Sprintf("<%s> %dpx / %d / %g", l.Tag, l.SizePx, l.Weight, l.LineHeight))
		line := fmt.Sprintf("%s%-15s %s  %s", cursor(selected), l.Name, sample.Render(text), metrics)
		if badge := copyBadge(st.Copy, model.TypeLevelKey(l)); badge != "" {
			line += " " + badge
		}
		b.WriteString(line + "\n")
	}

	if st.Section == model.TypographyScale {
		l := catalog.TypeScale[st.Row]
		b.WriteString("\n" + components.NewPanel(l.Name+" · "+l.Usage).
			WithWidth(min(width-2, 72)).
			WithContent(design.CodeStyle.Render(l.CSS())).
			Render())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionHeading("Font weights", st.Section == model.TypographyWeights) + "\n")
	for i, w := range catalog.FontWeights {
		selected := st.Section == model.TypographyWeights && st.Row == i
		sample := lipgloss.NewStyle().Foreground(design.ColorText).Bold(w.Weight >= 600).Faint(w.Weight < 400)
		if w.Family == catalog.FontMono {
			sample = sample.Foreground(design.ColorCode)
		}
		line := fmt.Sprintf("%s%s  %-15s %-10s %s", cursor(selected), sample.Render("Aa"), w.Family, w.Name, design.CodeStyle.Render(w.CSS()))
		if badge := copyBadge(st.Copy, w.Key()); badge != "" {
			line += " " + badge
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderTypographyColors(m *model.Model) string {
	st := m.Typography
	rows := make([][]string, 0, len(catalog.TypographyColors))
	for _, c := range catalog.TypographyColors {
		hex, cmyk := c.LightHex, c.LightCMYK()
		if m.IsDark {
			hex, cmyk = c.DarkHex, c.DarkCMYK()
		}
		rows = append(rows, []string{
			c.Name,
			lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("Aa ") + hex,
			cmyk,
			c.ContrastLight(),
			c.ContrastDark(),
			badgeText(st.Copy, model.TypographyColorKey(c)),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(design.ColorBorder)).
		Headers("Color", "Hex", "CMYK", "On light", "On dark", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.Bold(true).Foreground(design.ColorTextSecondary)
			case st.Section == model.TypographyColors && row == st.Row:
				return s.Foreground(design.ColorPrimary).Bold(true)
			}
			return s
		}).
		Render()
}
