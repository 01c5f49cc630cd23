package controller

import (
	"fmt"

	"anchovy/internal/tui/feedback"
	"anchovy/internal/tui/model"
	"anchovy/internal/tui/view"
	"anchovy/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const dispatchSubsystem = "Dispatch"

// Update is the central message router. All state changes happen here.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case feedback.ExpiredMsg:
		return handleExpired(m, msg)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()
		return m, nil

	case spinner.TickMsg:
		if !spinnerNeeded(m) {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case model.TokensExportedMsg:
		return handleTokensExported(m, msg)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		if m.CurrentPage == model.PageComponents && m.Components.Editing {
			var cmd tea.Cmd
			m.Components.Input, cmd = m.Components.Input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ActivityLogDirty {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		if m.CurrentAppMode != model.ModeLogOverlay || m.LogViewport.AtBottom() {
			m.LogViewport.GotoBottom()
		}
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	// header, navigation and status bar take one line each
	body := msg.Height - 3
	m.LogViewport.Width, m.LogViewport.Height = view.LogViewportSize(msg.Width, body)
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))

	m.Tokens.Preview.Width = msg.Width - 6
	m.Tokens.Preview.Height = view.TokensPreviewHeight(body)
	return m, nil
}

// handleExpired resets whichever indicator the message belongs to. A stale
// message, from a timer superseded by a newer copy, is ignored.
func handleExpired(m *model.Model, msg feedback.ExpiredMsg) (*model.Model, tea.Cmd) {
	if m.Components.Saving.ID() == msg.ID {
		key := m.Components.Saving.Key()
		if m.Components.Saving.Update(msg) {
			LogInfo(dispatchSubsystem, "simulated save of %s finished", key)
			return m, m.SetStatusMessage("Saved", model.StatusBarSuccess, model.StatusMessageTimeout)
		}
		return m, nil
	}
	for _, ind := range m.AllIndicators() {
		if ind.Update(msg) {
			LogDebug(m, dispatchSubsystem, "indicator %s reset", msg.ID)
			break
		}
	}
	return m, nil
}

func handleTokensExported(m *model.Model, msg model.TokensExportedMsg) (*model.Model, tea.Cmd) {
	m.Tokens.Exporting = false
	if msg.Err != nil {
		LogError(msg.Err, "token export failed")
		return m, tea.Batch(m.Tokens.Export.Fail("export"), m.SetStatusMessage(fmt.Sprintf("Export failed: %v", msg.Err), model.StatusBarError, model.StatusMessageTimeout))
	}
	m.Tokens.LastExport = msg.Path
	LogInfo(dispatchSubsystem, "design tokens written to %s", msg.Path)
	return m, tea.Batch(
		m.Tokens.Export.Flash("export"),
		m.SetStatusMessage("Saved "+msg.Path, model.StatusBarSuccess, model.StatusMessageTimeout),
	)
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	if msg.Entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, model.FormatLogEntry(msg.Entry))
	}
	return m
}

func spinnerNeeded(m *model.Model) bool {
	return m.Components.Saving.Active() || m.Tokens.Exporting
}
