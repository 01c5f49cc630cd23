package view

import (
	"fmt"
	"strings"

	"anchovy/internal/catalog"
	"anchovy/internal/tui/components"
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

var principles = []struct {
	title string
	text  string
}{
	{"Spectral Harmony", "Built on the natural light spectrum (ROY G BIV), our colors flow seamlessly as gradients. Adjacent families blend beautifully, enabling dynamic visual storytelling."},
	{"Adaptive Design", "Every shade is calibrated for both light and dark environments. Lighter tones serve as backgrounds in light mode and accents in dark mode, and vice versa."},
	{"Universal Access", "All primary and secondary text colors meet WCAG AA standards (4.5:1 minimum). UI elements maintain a 3:1 contrast ratio for maximum inclusivity."},
}

var accessibility = []string{
	"Normal text (below 18px): shades 600–900 on light backgrounds, or 50–300 on dark ones, for at least 4.5:1 (WCAG AA).",
	"Large text (18px+ or 14px bold): shade 500 works on both backgrounds at 3:1.",
	"UI components: buttons and form controls keep a 3:1 ratio against adjacent colors.",
	"Gradients: the lowest-contrast point of gradient text must still meet the applicable ratio.",
}

func renderHome(m *model.Model, width int) string {
	var b strings.Builder

	b.WriteString(sectionTitle("Anchovy Design System", "A systematic color language built on the ROY G BIV spectrum, for light and dark interfaces."))
	b.WriteString("\n")

	strip := make([]string, 0, len(catalog.Families))
	for _, f := range catalog.Families {
		strip = append(strip, lipgloss.NewStyle().
			Background(lipgloss.Color(f.Primary().Hex)).
			Render(strings.Repeat(" ", 6)))
	}
	b.WriteString(strings.Join(strip, "") + "\n\n")

	stats := []struct {
		value string
		label string
	}{
		{fmt.Sprint(len(catalog.Families)), "Color families"},
		{fmt.Sprint(len(catalog.Families) * len(catalog.ShadeNames)), "Total shades"},
		{fmt.Sprint(len(catalog.Gradients)), "Gradients"},
		{fmt.Sprint(len(catalog.TypeScale)), "Type levels"},
		{fmt.Sprint(m.Tokens.Summary.Total), "Design tokens"},
	}
	cards := make([]string, 0, len(stats))
	for _, s := range stats {
		cards = append(cards, components.NewPanel("").
			WithWidth(16).
			WithContent(design.TitleStyle.Foreground(design.ColorPrimary).Render(s.value)+"\n"+design.TextSecondaryStyle.Render(s.label)).
			Render())
	}
	b.WriteString(components.JoinHorizontal(1, cards...) + "\n\n")

	for _, p := range principles {
		b.WriteString(design.TitleStyle.Render(p.title) + "\n")
		b.WriteString(design.TextSecondaryStyle.Width(min(width-4, 80)).Render(p.text) + "\n\n")
	}

	b.WriteString(design.TitleStyle.Render("Accessibility") + "\n")
	for _, line := range accessibility {
		b.WriteString("  • " + design.TextSecondaryStyle.Render(line) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(design.TitleStyle.Render("Pages") + "\n")
	for i, p := range model.Pages[1:] {
		b.WriteString(fmt.Sprintf("  %s %-12s %s\n",
			design.KeyStyle.Render(fmt.Sprint(i+2)),
			p.Title(),
			design.TextMutedStyle.Render(p.Route())))
	}
	return b.String()
}
