package controller

import (
	"anchovy/internal/catalog"
	"anchovy/internal/tokens"
	"anchovy/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const pageSubsystem = "Page"

// handlePageKey routes a key that no global binding consumed.
func handlePageKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch m.CurrentPage {
	case model.PageSpectrum:
		return m, handleSpectrumKey(m, keyMsg)
	case model.PageTypography:
		return m, handleTypographyKey(m, keyMsg)
	case model.PageGradients:
		return m, handleGradientsKey(m, keyMsg)
	case model.PageComponents:
		return m, handleComponentsKey(m, keyMsg)
	case model.PageSpacing:
		return m, handleSpacingKey(m, keyMsg)
	case model.PageTokens:
		return m, handleTokensKey(m, keyMsg)
	}
	return m, nil
}

func handleSpectrumKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	st := &m.Spectrum
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		st.Family = clamp(st.Family-1, len(catalog.Families))
	case key.Matches(keyMsg, m.Keys.Down):
		st.Family = clamp(st.Family+1, len(catalog.Families))
	case key.Matches(keyMsg, m.Keys.Left):
		st.Shade = clamp(st.Shade-1, len(catalog.Families[st.Family].Shades))
	case key.Matches(keyMsg, m.Keys.Right):
		st.Shade = clamp(st.Shade+1, len(catalog.Families[st.Family].Shades))
	case key.Matches(keyMsg, m.Keys.Enter), key.Matches(keyMsg, m.Keys.Copy):
		text, k := st.CopyTarget(false)
		return copyWithFeedback(m, st.Copy, text, k)
	case key.Matches(keyMsg, m.Keys.CopyAlt):
		text, k := st.CopyTarget(true)
		return copyWithFeedback(m, st.Copy, text, k)
	}
	return nil
}

func handleTypographyKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	st := &m.Typography
	switch {
	case key.Matches(keyMsg, m.Keys.Left):
		if st.Section > model.TypographyColors {
			st.Section--
			st.Row = clamp(st.Row, st.Rows())
		}
	case key.Matches(keyMsg, m.Keys.Right):
		if st.Section < model.TypographyWeights {
			st.Section++
			st.Row = clamp(st.Row, st.Rows())
		}
	case key.Matches(keyMsg, m.Keys.Up):
		st.Row = clamp(st.Row-1, st.Rows())
	case key.Matches(keyMsg, m.Keys.Down):
		st.Row = clamp(st.Row+1, st.Rows())
	case key.Matches(keyMsg, m.Keys.Enter), key.Matches(keyMsg, m.Keys.Copy):
		text, k := st.CopyTarget(m.IsDark, false)
		return copyWithFeedback(m, st.Copy, text, k)
	case key.Matches(keyMsg, m.Keys.CopyAlt):
		text, k := st.CopyTarget(m.IsDark, true)
		return copyWithFeedback(m, st.Copy, text, k)
	}
	return nil
}

func handleGradientsKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	st := &m.Gradients
	switch {
	case key.Matches(keyMsg, m.Keys.Up), key.Matches(keyMsg, m.Keys.Left):
		st.Cursor = clamp(st.Cursor-1, len(catalog.Gradients))
	case key.Matches(keyMsg, m.Keys.Down), key.Matches(keyMsg, m.Keys.Right):
		st.Cursor = clamp(st.Cursor+1, len(catalog.Gradients))
	case key.Matches(keyMsg, m.Keys.Enter), key.Matches(keyMsg, m.Keys.Copy), key.Matches(keyMsg, m.Keys.CopyAlt):
		text, k := st.CopyTarget()
		return copyWithFeedback(m, st.Copy, text, k)
	}
	return nil
}

func handleComponentsKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	st := &m.Components
	switch {
	case key.Matches(keyMsg, m.Keys.Up), key.Matches(keyMsg, m.Keys.Left):
		st.Cursor = clamp(st.Cursor-1, len(catalog.Components))
	case key.Matches(keyMsg, m.Keys.Down), key.Matches(keyMsg, m.Keys.Right):
		st.Cursor = clamp(st.Cursor+1, len(catalog.Components))
	case key.Matches(keyMsg, m.Keys.Copy), key.Matches(keyMsg, m.Keys.CopyAlt):
		text, k := st.CopyTarget()
		return copyWithFeedback(m, st.Copy, text, k)
	case key.Matches(keyMsg, m.Keys.Edit):
		if st.Focused().Kind == catalog.KindInput {
			return startEditing(m)
		}
	case key.Matches(keyMsg, m.Keys.Enter):
		return activateComponent(m)
	}
	return nil
}

// activateComponent gives the focused primitive its interactive behaviour.
func activateComponent(m *model.Model) tea.Cmd {
	st := &m.Components
	c := st.Focused()
	k := c.Key()

	switch c.Kind {
	case catalog.KindToggle:
		st.Toggles[k] = !st.Toggles[k]
	case catalog.KindSelect, catalog.KindRadio:
		if len(c.Options) > 0 {
			st.Choices[k] = (st.Choices[k] + 1) % len(c.Options)
		}
	case catalog.KindAlert:
		st.Dismissed[k] = !st.Dismissed[k]
	case catalog.KindInput:
		return startEditing(m)
	case catalog.KindButton:
		if !c.Loading {
			return m.SetStatusMessage(c.Name+" button pressed", model.StatusBarInfo, model.StatusMessageTimeout)
		}
		if st.Saving.Active() {
			return nil
		}
		LogInfo(pageSubsystem, "simulated save of %s started", k)
		return tea.Batch(st.Saving.Flash(k), m.Spinner.Tick)
	}
	return nil
}

func startEditing(m *model.Model) tea.Cmd {
	m.Components.Editing = true
	return m.Components.Input.Focus()
}

// handleInputKey sends keys to the text input while it is being edited.
func handleInputKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Esc) || keyMsg.Type == tea.KeyEnter {
		m.Components.Editing = false
		m.Components.Input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.Components.Input, cmd = m.Components.Input.Update(keyMsg)
	return m, cmd
}

// sizingFilters is the cycle order of the sizing category filter.
var sizingFilters = append([]catalog.SizingCategory{""}, catalog.SizingCategories...)

func handleSpacingKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	st := &m.Spacing
	switch {
	case key.Matches(keyMsg, m.Keys.Left):
		if st.Section > model.SpacingScale {
			st.Section--
			st.Row = 0
		}
	case key.Matches(keyMsg, m.Keys.Right):
		if st.Section < model.SpacingPlayground {
			st.Section++
			st.Row = 0
		}
	case key.Matches(keyMsg, m.Keys.Up):
		st.Row = clamp(st.Row-1, st.Rows())
	case key.Matches(keyMsg, m.Keys.Down):
		st.Row = clamp(st.Row+1, st.Rows())
	case key.Matches(keyMsg, m.Keys.Filter):
		st.Filter = nextFilter(st.Filter)
		if st.Section == model.SizingScale {
			st.Row = clamp(st.Row, st.Rows())
		}
		label := string(st.Filter)
		if label == "" {
			label = "all"
		}
		return m.SetStatusMessage("Sizing filter: "+label, model.StatusBarInfo, model.StatusMessageTimeout)
	case key.Matches(keyMsg, m.Keys.Increase):
		if st.Section == model.SpacingPlayground {
			st.Sliders[st.Row] = clamp(st.Sliders[st.Row]+1, len(catalog.PlaygroundScale))
		}
	case key.Matches(keyMsg, m.Keys.Decrease):
		if st.Section == model.SpacingPlayground {
			st.Sliders[st.Row] = clamp(st.Sliders[st.Row]-1, len(catalog.PlaygroundScale))
		}
	case key.Matches(keyMsg, m.Keys.Enter), key.Matches(keyMsg, m.Keys.Copy):
		if st.Rows() == 0 {
			return nil
		}
		text, k := st.CopyTarget(false)
		return copyWithFeedback(m, st.Copy, text, k)
	case key.Matches(keyMsg, m.Keys.CopyAlt):
		if st.Rows() == 0 {
			return nil
		}
		text, k := st.CopyTarget(true)
		return copyWithFeedback(m, st.Copy, text, k)
	}
	return nil
}

func nextFilter(cur catalog.SizingCategory) catalog.SizingCategory {
	for i, f := range sizingFilters {
		if f == cur {
			return sizingFilters[(i+1)%len(sizingFilters)]
		}
	}
	return ""
}

func handleTokensKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	st := &m.Tokens
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		st.Cursor = clamp(st.Cursor-1, len(tokens.References))
	case key.Matches(keyMsg, m.Keys.Down):
		st.Cursor = clamp(st.Cursor+1, len(tokens.References))
	case key.Matches(keyMsg, m.Keys.Copy), key.Matches(keyMsg, m.Keys.CopyAlt):
		text, k := st.CopyTarget()
		return copyWithFeedback(m, st.Copy, text, k)
	case key.Matches(keyMsg, m.Keys.Export), key.Matches(keyMsg, m.Keys.Enter):
		if st.Exporting {
			return nil
		}
		st.Exporting = true
		LogDebug(m, pageSubsystem, "exporting tokens to %s as %s", st.ExportDir, st.Format)
		return tea.Batch(model.ExportTokensCmd(st.ExportDir, st.Format), m.Spinner.Tick)
	default:
		var cmd tea.Cmd
		st.Preview, cmd = st.Preview.Update(keyMsg)
		return cmd
	}
	return nil
}

// clamp keeps i within [0, n).
func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
