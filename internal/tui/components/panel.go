package components

import (
	"strings"

	"anchovy/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered box with an optional title line.
type Panel struct {
	Title   string
	Content string
	Width   int
	Height  int
	Focused bool
	Accent  lipgloss.TerminalColor
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		Width: design.MinPanelWidth,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithWidth sets the outer width.
func (p *Panel) WithWidth(width int) *Panel {
	p.Width = width
	return p
}

// WithHeight fixes the outer height. Zero lets the content decide.
func (p *Panel) WithHeight(height int) *Panel {
	p.Height = height
	return p
}

// WithAccent colours the border.
func (p *Panel) WithAccent(c lipgloss.TerminalColor) *Panel {
	p.Accent = c
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}

	style := design.PanelStyle
	if p.Focused {
		style = design.PanelFocusedStyle
	}
	if p.Accent != nil {
		style = style.BorderForeground(p.Accent)
	}

	innerWidth := p.Width - style.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}

	var lines []string
	if p.Title != "" {
		titleStyle := design.TitleStyle
		if p.Focused {
			titleStyle = titleStyle.Foreground(design.ColorPrimary)
		}
		lines = append(lines, titleStyle.MaxWidth(innerWidth).Render(p.Title))
	}
	if p.Content != "" {
		lines = append(lines, p.Content)
	}
	content := strings.Join(lines, "\n")

	// Width and Height exclude the border but include padding.
	style = style.Width(p.Width - style.GetHorizontalBorderSize())
	if p.Height > 0 {
		h := p.Height - style.GetVerticalBorderSize()
		if h < 1 {
			h = 1
		}
		content = FitHeight(content, h-style.GetVerticalPadding())
		style = style.Height(h).MaxHeight(p.Height)
	}
	return style.Render(content)
}
