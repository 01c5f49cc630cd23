package view

import (
	"strings"

	"anchovy/internal/tui/design"
	"anchovy/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model, width, height int) string {
	h := m.Help
	h.ShowAll = true
	title := design.HelpTitleStyle.Render("Keys")
	content := lipgloss.JoinVertical(lipgloss.Left, title, h.FullHelpView(m.Keys.FullHelp()), "", hint("esc closes"))
	box := design.OverlayStyle.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func renderLogOverlay(m *model.Model, width, height int) string {
	title := design.TitleStyle.Render("Activity Log") + "  " + hint("↑/↓ scroll · y copy · esc close")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.OverlayStyle.
		Width(width - design.OverlayStyle.GetHorizontalBorderSize()).
		Height(height - design.OverlayStyle.GetVerticalFrameSize()).
		Render(content)
}

// LogViewportSize returns the log viewport dimensions for a body area.
func LogViewportSize(width, height int) (int, int) {
	w := width - design.OverlayStyle.GetHorizontalFrameSize()
	h := height - design.OverlayStyle.GetVerticalFrameSize() - 1
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// PrepareLogContent colours lines by their level tag.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.Contains(line, "[ERROR]"):
			out[i] = design.LogErrorStyle.Render(line)
		case strings.Contains(line, "[WARN]"):
			out[i] = design.LogWarnStyle.Render(line)
		case strings.Contains(line, "[DEBUG]"):
			out[i] = design.LogDebugStyle.Render(line)
		default:
			out[i] = design.LogInfoStyle.Render(line)
		}
	}
	return strings.Join(out, "\n")
}
