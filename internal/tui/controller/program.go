package controller

import (
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the catalog browser.
func NewProgram(opts model.Options) (*tea.Program, error) {
	m, err := model.InitializeModel(opts)
	if err != nil {
		return nil, err
	}
	design.Initialize(m.IsDark)

	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen()), nil
}
