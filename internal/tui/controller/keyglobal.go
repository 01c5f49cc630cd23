package controller

import (
	"strconv"
	"strings"

	"anchovy/internal/tui/design"
	"anchovy/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const keySubsystem = "KeyHandler"

// handleKeyMsgGlobal handles overlays and navigation, then hands the key to
// the current page.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.Type == tea.KeyCtrlC {
		return quit(m)
	}

	if m.CurrentPage == model.PageComponents && m.Components.Editing {
		return handleInputKey(m, keyMsg)
	}

	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case key.Matches(keyMsg, m.Keys.CopyAlt):
			if err := m.Clipboard.WriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(err, "failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, model.StatusMessageTimeout)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, model.StatusMessageTimeout)
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		default:
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
			return m, cmd
		}

	case model.ModeHelpOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.Help), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDark):
		m.IsDark = !m.IsDark
		design.Initialize(m.IsDark)
		mode := "light"
		if m.IsDark {
			mode = "dark"
		}
		LogDebug(m, keySubsystem, "switched to %s mode", mode)
		return m, m.SetStatusMessage("Switched to "+mode+" mode", model.StatusBarInfo, model.StatusMessageTimeout)
	case key.Matches(keyMsg, m.Keys.Tab):
		return m, switchPage(m, m.CurrentPage.Next())
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		return m, switchPage(m, m.CurrentPage.Prev())
	case key.Matches(keyMsg, m.Keys.JumpToPage):
		n, _ := strconv.Atoi(keyMsg.String())
		return m, switchPage(m, model.Pages[n-1])
	}

	return handlePageKey(m, keyMsg)
}

// switchPage leaves the current page, cancelling its pending timers.
func switchPage(m *model.Model, to model.Page) tea.Cmd {
	if to == m.CurrentPage {
		return nil
	}
	for _, ind := range m.Indicators(m.CurrentPage) {
		ind.Dispose()
	}
	if m.CurrentPage == model.PageComponents {
		m.Components.Editing = false
		m.Components.Input.Blur()
	}
	LogDebug(m, keySubsystem, "navigating %s -> %s", m.CurrentPage.Route(), to.Route())
	m.CurrentPage = to
	return nil
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	for _, ind := range m.AllIndicators() {
		ind.Dispose()
	}
	m.ClearStatusMessage()
	m.CurrentAppMode = model.ModeQuitting
	return m, tea.Quit
}
