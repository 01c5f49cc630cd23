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

func renderComponents(m *model.Model, width int) string {
	st := m.Components
	var b strings.Builder
	b.WriteString(sectionTitle("Components", "↑/↓ focus, enter activates, i edits the input, c copies the CSS."))
	b.WriteString("\n")

	index := 0
	for _, kind := range catalog.ComponentKinds {
		b.WriteString(design.TitleStyle.Render(kind.Title()) + "\n")
		for _, c := range catalog.ComponentsByKind(kind) {
			selected := index == st.Cursor
			line := cursor(selected) + renderPrimitive(m, c, selected)
			if badge := copyBadge(st.Copy, c.Key()); badge != "" {
				line = lipgloss.JoinHorizontal(lipgloss.Center, line, " ", badge)
			}
			b.WriteString(line + "\n")
			index++
		}
		b.WriteString("\n")
	}

	focused := st.Focused()
	b.WriteString(components.NewPanel(focused.Name+" · CSS").
		WithWidth(min(width-2, 80)).
		WithAccent(lipgloss.Color(focused.Accent)).
		WithContent(design.CodeStyle.Width(min(width-2, 80)-4).Render(focused.CSS)).
		Render())
	return b.String()
}

func renderPrimitive(m *model.Model, c catalog.ComponentSpec, selected bool) string {
	st := m.Components
	accent := lipgloss.Color(c.Accent)

	switch c.Kind {
	case catalog.KindButton:
		fg, _ := colormath.PickForeground(c.Accent)
		label := c.Name
		if c.Loading && st.Saving.IsCopied(c.Key()) {
			label = m.Spinner.View() + " Saving..."
		}
		style := lipgloss.NewStyle().Padding(0, 2).Background(accent).Foreground(lipgloss.Color(fg.Text))
		if selected {
			style = style.Bold(true).Underline(true)
		}
		return style.Render(label)

	case catalog.KindInput:
		frame := design.BorderStyle
		if st.Editing {
			frame = design.BorderFocusStyle
		}
		return lipgloss.JoinHorizontal(lipgloss.Center,
			design.TextSecondaryStyle.Render(c.Name+" "),
			frame.Render(st.Input.View()))

	case catalog.KindBadge:
		return lipgloss.NewStyle().Foreground(accent).Bold(selected).Render("● " + c.Name)

	case catalog.KindAlert:
		if st.Dismissed[c.Key()] {
			return design.TextMutedStyle.Render(c.Name + " dismissed (enter restores)")
		}
		bar := lipgloss.NewStyle().Foreground(accent).Render("▌")
		return bar + lipgloss.NewStyle().Foreground(accent).Bold(true).Render(c.Name) + "  " +
			design.TextSecondaryStyle.Render(c.Description) + design.TextMutedStyle.Render("  ✕")

	case catalog.KindCard:
		return components.NewPanel(c.Name).
			WithWidth(44).
			WithAccent(accent).
			SetFocused(selected).
			WithContent(design.TextSecondaryStyle.Width(38).Render(c.Description)).
			Render()

	case catalog.KindToggle:
		on := st.Toggles[c.Key()]
		knob := lipgloss.NewStyle().Foreground(design.ColorTextMuted).Render("○───")
		if on {
			knob = lipgloss.NewStyle().Foreground(accent).Render("───●")
		}
		state := "off"
		if on {
			state = "on"
		}
		return fmt.Sprintf("%s %-14s %s %s", knob, c.Name, design.TextMutedStyle.Render(c.Description), state)

	case catalog.KindSelect:
		choice := st.Choices[c.Key()]
		return design.TextSecondaryStyle.Render(c.Name+" ") +
			design.BorderStyle.Padding(0, 1).Render("‹ "+c.Options[choice]+" ›")

	case catalog.KindRadio:
		choice := st.Choices[c.Key()]
		parts := make([]string, len(c.Options))
		for i, opt := range c.Options {
			if i == choice {
				parts[i] = lipgloss.NewStyle().Foreground(accent).Render("(•) " + opt)
			} else {
				parts[i] = design.TextSecondaryStyle.Render("( ) " + opt)
			}
		}
		return design.TextSecondaryStyle.Render(fmt.Sprintf("%-6s", c.Name)) + strings.Join(parts, "  ")
	}
	return c.Name
}
