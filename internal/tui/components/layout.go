package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout splits the terminal into header, navigation, body and status bar.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{Width: width, Height: height}
}

// CalculateContentArea returns the rows left after the fixed chrome.
func (l *Layout) CalculateContentArea(chromeHeights ...int) int {
	h := l.Height
	for _, c := range chromeHeights {
		h -= c
	}
	if h < 0 {
		return 0
	}
	return h
}

// Columns returns how many cells-wide items fit next to each other.
func (l *Layout) Columns(itemWidth, gap int) int {
	if itemWidth <= 0 {
		return 1
	}
	n := (l.Width + gap) / (itemWidth + gap)
	if n < 1 {
		return 1
	}
	return n
}

// JoinHorizontal joins components horizontally with optional gap
func JoinHorizontal(gap int, components ...string) string {
	if gap <= 0 || len(components) < 2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, components...)
	}
	spacer := strings.Repeat(" ", gap)
	parts := make([]string, 0, len(components)*2-1)
	for i, comp := range components {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, comp)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// FitHeight cuts or pads content to exactly height lines.
func FitHeight(content string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
