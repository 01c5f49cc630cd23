package model

import (
	"anchovy/internal/tokens"
	"anchovy/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ClearStatusBarMsg is sent when a status message has been shown long enough.
type ClearStatusBarMsg struct{}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// TokensExportedMsg reports the outcome of a token export.
type TokensExportedMsg struct {
	Path string
	Err  error
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once the
// channel is closed, which ends the listening loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ExportTokensCmd writes the token file off the update loop.
func ExportTokensCmd(dir string, format tokens.Format) tea.Cmd {
	return func() tea.Msg {
		path, err := tokens.Export(dir, format)
		return TokensExportedMsg{Path: path, Err: err}
	}
}
