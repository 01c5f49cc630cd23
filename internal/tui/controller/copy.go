package controller

import (
	"strings"

	"anchovy/internal/tui/feedback"
	"anchovy/internal/tui/model"
	"anchovy/internal/tui/utils"

	tea "github.com/charmbracelet/bubbletea"
)

const copySubsystem = "Clipboard"

// copyWithFeedback writes text through the model's clipboard and drives the
// page's indicator and the status bar from the result.
func copyWithFeedback(m *model.Model, ind *feedback.Indicator, text, key string) tea.Cmd {
	cmd, err := ind.Copy(m.Clipboard, text, key)
	if err != nil {
		LogError(err, "copy of %s failed", key)
		return tea.Batch(cmd, m.SetStatusMessage("Copy failed: clipboard unavailable", model.StatusBarError, model.StatusMessageTimeout))
	}
	LogDebug(m, copySubsystem, "copied %s", key)
	return tea.Batch(cmd, m.SetStatusMessage("Copied "+preview(text), model.StatusBarSuccess, model.StatusMessageTimeout))
}

// preview shortens multi-line snippets for the status bar.
func preview(text string) string {
	first, _, multi := strings.Cut(text, "\n")
	if multi {
		first += " …"
	}
	return utils.TruncateString(first, 48)
}
