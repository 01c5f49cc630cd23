package view

import (
	"fmt"
	"strings"

	"anchovy/internal/tokens"
	"anchovy/internal/tui/components"
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/model"
	"anchovy/internal/tui/utils"
)

func renderTokens(m *model.Model, width, height int) string {
	st := m.Tokens
	var b strings.Builder
	b.WriteString(sectionTitle("Design Tokens", fmt.Sprintf("%s v%s · d downloads %s", st.Summary.Name, st.Summary.Version, tokens.ExportFileName(st.Format))))
	b.WriteString("\n")

	cards := make([]string, 0, len(st.Summary.Categories)+1)
	for _, c := range st.Summary.Categories {
		cards = append(cards, components.NewPanel("").
			WithWidth(14).
			WithContent(design.TitleStyle.Foreground(design.ColorPrimary).Render(fmt.Sprint(c.Count))+"\n"+design.TextSecondaryStyle.Render(c.Title)).
			Render())
	}
	cards = append(cards, components.NewPanel("").
		WithWidth(14).
		WithAccent(design.ColorAccent).
		WithContent(design.TitleStyle.Foreground(design.ColorAccent).Render(fmt.Sprint(st.Summary.Total))+"\n"+design.TextSecondaryStyle.Render("Total")).
		Render())

	perRow := components.NewLayout(width-2, 0).Columns(14, 1)
	for len(cards) > 0 {
		n := min(perRow, len(cards))
		b.WriteString(components.JoinHorizontal(1, cards[:n]...) + "\n")
		cards = cards[n:]
	}
	b.WriteString("\n")

	switch {
	case st.Exporting:
		b.WriteString(m.Spinner.View() + " Exporting...\n")
	case st.Export.IsCopied("export"):
		b.WriteString(design.CopiedBadgeStyle.Render("saved") + " " + design.TextSecondaryStyle.Render(st.LastExport) + "\n")
	case st.Export.IsFailed("export"):
		b.WriteString(design.FailedBadgeStyle.Render("export failed") + "\n")
	case st.LastExport != "":
		b.WriteString(hint("Last export: "+st.LastExport) + "\n")
	default:
		b.WriteString(hint("Export directory: "+st.ExportDir) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(design.TitleStyle.Render("Token Path Reference") + "  " + hint("↑/↓ select, c copies the path") + "\n")
	pathWidth := max(min(width-40, 28), 12)
	for i, r := range tokens.References {
		line := cursor(i == st.Cursor) +
			design.KeyStyle.Render(utils.PadRight(utils.TruncateString(r.Path, pathWidth), pathWidth)) + "  " +
			design.TextSecondaryStyle.Render(utils.PadRight(utils.TruncateString(r.Value, 26), 26)) + " " +
			hint(r.Description)
		if badge := copyBadge(st.Copy, r.Path); badge != "" {
			line += " " + badge
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	b.WriteString(design.TitleStyle.Render(tokens.FileName) + "  " + hint("pgup/pgdn scroll") + "\n")
	b.WriteString(design.BorderStyle.Render(st.Preview.View()))
	return b.String()
}

// TokensPreviewHeight returns the viewport height that fits under the
// summary for a body of the given height.
func TokensPreviewHeight(bodyHeight int) int {
	h := bodyHeight - 16 - len(tokens.References) - 2
	if h < 3 {
		return 3
	}
	return h
}
