package view

import (
	"strings"

	"anchovy/internal/tui/components"
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Render draws the whole screen for the current model.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return "Goodbye.\n"
	}
	if m.Width == 0 || m.Height == 0 {
		return "Initializing..."
	}

	header := components.NewHeader("anchovy").
		WithSubtitle("design system").
		WithRightContent(themeLabel(m)).
		WithWidth(m.Width).
		Render()
	nav := components.NewNavBar(m.CurrentPage, m.Width).Render()
	status := renderStatusBar(m)

	layout := components.NewLayout(m.Width, m.Height)
	bodyHeight := layout.CalculateContentArea(
		lipgloss.Height(header), lipgloss.Height(nav), lipgloss.Height(status))

	var body string
	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		body = renderHelpOverlay(m, m.Width, bodyHeight)
	case model.ModeLogOverlay:
		body = renderLogOverlay(m, m.Width, bodyHeight)
	default:
		body = RenderPage(m, m.Width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		nav,
		components.FitHeight(body, bodyHeight),
		status,
	)
}

// RenderPage draws the body of the current page.
func RenderPage(m *model.Model, width, height int) string {
	var content string
	switch m.CurrentPage {
	case model.PageSpectrum:
		content = renderSpectrum(m, width)
	case model.PageTypography:
		content = renderTypography(m, width)
	case model.PageGradients:
		content = renderGradients(m, width)
	case model.PageComponents:
		content = renderComponents(m, width)
	case model.PageSpacing:
		content = renderSpacing(m, width)
	case model.PageTokens:
		content = renderTokens(m, width, height)
	default:
		content = renderHome(m, width)
	}
	content = lipgloss.NewStyle().Padding(0, design.SpaceXS).MaxWidth(width).Render(content)
	return scrollToFocus(content, height)
}

// scrollToFocus returns the height-line window of content that keeps the
// first line carrying the focus marker in the upper third.
func scrollToFocus(content string, height int) string {
	lines := strings.Split(content, "\n")
	if height <= 0 || len(lines) <= height {
		return content
	}
	focus := 0
	for i, line := range lines {
		if strings.Contains(ansi.Strip(line), focusMarker) {
			focus = i
			break
		}
	}
	start := focus - height/3
	if start < 0 {
		start = 0
	}
	if start > len(lines)-height {
		start = len(lines) - height
	}
	return strings.Join(lines[start:start+height], "\n")
}

func themeLabel(m *model.Model) string {
	if m.IsDark {
		return design.TextSecondaryStyle.Render("☾ dark")
	}
	return design.TextSecondaryStyle.Render("☀ light")
}

func renderStatusBar(m *model.Model) string {
	bar := components.NewStatusBar(m.Width).
		WithLeftText(m.CurrentPage.Route()).
		WithRightText(m.Help.ShortHelpView(m.Keys.ShortHelp()))
	if m.StatusBarMessage != "" {
		bar = bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}
