package model

import (
	"fmt"

	"anchovy/internal/catalog"
	"anchovy/internal/clipboard"
	"anchovy/internal/config"
	"anchovy/internal/tokens"
	"anchovy/internal/tui/feedback"
	"anchovy/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configure a new Model.
type Options struct {
	Config     config.AnchovyConfig
	Clipboard  clipboard.Writer
	StartPage  Page
	IsDark     bool
	DebugMode  bool
	LogChannel <-chan logging.LogEntry
}

// InitializeModel builds the model for the first frame.
func InitializeModel(opts Options) (*Model, error) {
	cfg := opts.Config
	copyDelay := cfg.Feedback.CopyDuration
	if copyDelay <= 0 {
		copyDelay = config.DefaultCopyDuration
	}
	loadingDelay := cfg.Feedback.LoadingDuration
	if loadingDelay <= 0 {
		loadingDelay = config.DefaultLoadingDuration
	}

	format, err := tokens.ParseFormat(cfg.Tokens.Format)
	if err != nil {
		return nil, err
	}
	summary, err := tokens.Summarize()
	if err != nil {
		return nil, fmt.Errorf("failed to read design tokens: %w", err)
	}

	cb := opts.Clipboard
	if cb == nil {
		cb = clipboard.NewSystem(cfg.Clipboard.OSC52Enabled())
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	input := textinput.New()
	input.Placeholder = "Enter text..."
	input.CharLimit = 64
	input.Width = 30

	preview := viewport.New(0, 0)
	preview.SetContent(string(tokens.Raw()))

	m := &Model{
		CurrentPage:    opts.StartPage,
		CurrentAppMode: ModeMain,
		IsDark:         opts.IsDark,
		DebugMode:      opts.DebugMode,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		Spinner:        s,
		Clipboard:      cb,
		Config:         cfg,
		Spectrum: SpectrumState{
			Shade: catalog.PrimaryShadeIndex,
			Copy:  feedback.New("spectrum", copyDelay),
		},
		Typography: TypographyState{Copy: feedback.New("typography", copyDelay)},
		Gradients:  GradientsState{Copy: feedback.New("gradients", copyDelay)},
		Components: ComponentsState{
			Toggles:   map[string]bool{},
			Choices:   map[string]int{},
			Dismissed: map[string]bool{},
			Input:     input,
			Copy:      feedback.New("components", copyDelay),
			Saving:    feedback.New("components-save", loadingDelay),
		},
		Spacing: SpacingState{
			// 16px, 20px and 24px
			Sliders: [3]int{5, 6, 7},
			Copy:    feedback.New("spacing", copyDelay),
		},
		Tokens: TokensState{
			Summary:   summary,
			Preview:   preview,
			ExportDir: cfg.Tokens.ExportDir,
			Format:    format,
			Export:    feedback.New("tokens", copyDelay),
			Copy:      feedback.New("tokens-path", copyDelay),
		},
		LogViewport: viewport.New(0, 0),
		LogChannel:  opts.LogChannel,
	}

	for _, c := range catalog.Components {
		switch c.Kind {
		case catalog.KindToggle:
			m.Components.Toggles[c.Key()] = c.Default == 1
		case catalog.KindSelect, catalog.KindRadio:
			m.Components.Choices[c.Key()] = c.Default
		}
	}

	return m, nil
}

// Init starts listening for log entries.
func (m *Model) Init() tea.Cmd {
	return ListenForLogEntriesCmd(m.LogChannel)
}
