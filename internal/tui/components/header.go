package components

import (
	"strings"

	"anchovy/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Header is the top line: product name on the left, theme on the right.
type Header struct {
	Title        string
	Subtitle     string
	Width        int
	RightContent string
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{Title: title, Width: 80}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	left := design.TitleStyle.Foreground(design.ColorPrimary).Render(h.Title)
	if h.Subtitle != "" {
		left += " " + design.TextSecondaryStyle.Render(h.Subtitle)
	}

	available := h.Width - design.HeaderStyle.GetHorizontalFrameSize()
	content := left
	if h.RightContent != "" {
		gap := available - lipgloss.Width(left) - lipgloss.Width(h.RightContent)
		if gap >= 2 {
			content = left + strings.Repeat(" ", gap) + h.RightContent
		}
	}

	return design.HeaderStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}
