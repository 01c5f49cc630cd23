package components

import (
	"fmt"
	"strings"

	"anchovy/internal/tui/design"
	"anchovy/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// NavBar renders the page tabs with their number shortcuts.
type NavBar struct {
	Current model.Page
	Width   int
}

// NewNavBar creates a navigation bar highlighting current.
func NewNavBar(current model.Page, width int) *NavBar {
	return &NavBar{Current: current, Width: width}
}

// Render returns the tabs, dropping titles to numbers when space is short.
func (n *NavBar) Render() string {
	render := func(short bool) string {
		items := make([]string, 0, len(model.Pages))
		for i, p := range model.Pages {
			label := fmt.Sprintf("%d %s", i+1, p.Title())
			if short {
				label = fmt.Sprintf("%d", i+1)
			}
			style := design.NavItemStyle
			if p == n.Current {
				style = design.NavItemActiveStyle
			}
			items = append(items, style.Render(label))
		}
		return strings.Join(items, "")
	}

	bar := render(false)
	if n.Width > 0 && lipgloss.Width(bar) > n.Width {
		bar = render(true) + " " + design.TitleStyle.Render(n.Current.Title())
	}
	return lipgloss.NewStyle().MaxWidth(n.Width).Render(bar)
}
