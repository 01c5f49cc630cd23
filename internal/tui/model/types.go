package model

import (
	"time"

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

// AppMode is the overlay currently shown on top of the page.
type AppMode int

const (
	ModeMain AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

func (m AppMode) String() string {
	switch m {
	case ModeHelpOverlay:
		return "Help"
	case ModeLogOverlay:
		return "Log"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Main"
	}
}

// MessageType defines the type of status bar message
type MessageType int

const (
	StatusBarDefault MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
	StatusBarInfo
)

const (
	MaxActivityLogLines  = 1000
	StatusMessageTimeout = 3 * time.Second
)

// SpectrumState is the cursor over the 7×10 swatch grid.
type SpectrumState struct {
	Family int
	Shade  int
	Copy   *feedback.Indicator
}

// Selected returns the focused family and shade.
func (s SpectrumState) Selected() (catalog.ColorFamily, catalog.ColorShade) {
	f := catalog.Families[s.Family]
	return f, f.Shades[s.Shade]
}

// ShadeKey identifies a swatch in copy feedback, e.g. "blue-500".
func ShadeKey(f catalog.ColorFamily, s catalog.ColorShade) string {
	return f.Slug() + "-" + s.Name
}

// TypographySection selects the table the cursor moves in.
type TypographySection int

const (
	TypographyColors TypographySection = iota
	TypographyScale
	TypographyWeights
)

// TypographyState is the cursor over the colour table, the type scale and
// the weight showcase.
type TypographyState struct {
	Section TypographySection
	Row     int
	Copy    *feedback.Indicator
}

// Rows returns the number of rows in the active section.
func (s TypographyState) Rows() int {
	switch s.Section {
	case TypographyScale:
		return len(catalog.TypeScale)
	case TypographyWeights:
		return len(catalog.FontWeights)
	default:
		return len(catalog.TypographyColors)
	}
}

// GradientsState is the cursor over the gradient presets.
type GradientsState struct {
	Cursor int
	Copy   *feedback.Indicator
}

// ComponentsState holds the local state of every showcased primitive.
type ComponentsState struct {
	Cursor    int
	Toggles   map[string]bool
	Choices   map[string]int
	Dismissed map[string]bool
	Input     textinput.Model
	Editing   bool
	Copy      *feedback.Indicator
	Saving    *feedback.Indicator
}

// Focused returns the primitive under the cursor.
func (s ComponentsState) Focused() catalog.ComponentSpec {
	return catalog.Components[s.Cursor]
}

// SpacingSection selects the part of the Spacing page the cursor is in.
type SpacingSection int

const (
	SpacingScale SpacingSection = iota
	SizingScale
	SpacingPlayground
)

// PlaygroundProperty is one slider of the spacing playground.
type PlaygroundProperty int

const (
	PlaygroundPadding PlaygroundProperty = iota
	PlaygroundGap
	PlaygroundMargin
)

func (p PlaygroundProperty) String() string {
	switch p {
	case PlaygroundGap:
		return "gap"
	case PlaygroundMargin:
		return "margin"
	default:
		return "padding"
	}
}

// SpacingState holds the cursor, the sizing filter and the playground sliders.
type SpacingState struct {
	Section SpacingSection
	Row     int
	// Filter is "" for all categories, or one of the sizing categories.
	Filter catalog.SizingCategory
	// Sliders are indexes into catalog.PlaygroundScale.
	Sliders [3]int
	Copy    *feedback.Indicator
}

// VisibleSizing returns the sizing tokens matching the filter.
func (s SpacingState) VisibleSizing() []catalog.SizingToken {
	if s.Filter == "" {
		return catalog.SizingScale
	}
	return catalog.SizingByCategory(s.Filter)
}

// Rows returns the number of rows in the active section.
func (s SpacingState) Rows() int {
	switch s.Section {
	case SizingScale:
		return len(s.VisibleSizing())
	case SpacingPlayground:
		return len(s.Sliders)
	default:
		return len(catalog.SpacingScale)
	}
}

// TokensState backs the Tokens page.
type TokensState struct {
	// Cursor is the focused row of the token path reference.
	Cursor     int
	Summary    tokens.Summary
	Preview    viewport.Model
	ExportDir  string
	Format     tokens.Format
	LastExport string
	Exporting  bool
	Export     *feedback.Indicator
	Copy       *feedback.Indicator
}

// Model represents the state of the TUI application.
type Model struct {
	Width  int
	Height int

	CurrentPage    Page
	CurrentAppMode AppMode
	LastAppMode    AppMode
	IsDark         bool
	DebugMode      bool

	Keys      KeyMap
	Help      help.Model
	Spinner   spinner.Model
	Clipboard clipboard.Writer
	Config    config.AnchovyConfig

	Spectrum   SpectrumState
	Typography TypographyState
	Gradients  GradientsState
	Components ComponentsState
	Spacing    SpacingState
	Tokens     TokensState

	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	LogChannel           <-chan logging.LogEntry

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}
}

// Indicators returns the feedback indicators owned by a page.
func (m *Model) Indicators(p Page) []*feedback.Indicator {
	switch p {
	case PageSpectrum:
		return []*feedback.Indicator{m.Spectrum.Copy}
	case PageTypography:
		return []*feedback.Indicator{m.Typography.Copy}
	case PageGradients:
		return []*feedback.Indicator{m.Gradients.Copy}
	case PageComponents:
		return []*feedback.Indicator{m.Components.Copy, m.Components.Saving}
	case PageSpacing:
		return []*feedback.Indicator{m.Spacing.Copy}
	case PageTokens:
		return []*feedback.Indicator{m.Tokens.Export, m.Tokens.Copy}
	default:
		return nil
	}
}

// AllIndicators returns every indicator in the model.
func (m *Model) AllIndicators() []*feedback.Indicator {
	var out []*feedback.Indicator
	for _, p := range Pages {
		out = append(out, m.Indicators(p)...)
	}
	return out
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage removes the status bar message.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	m.StatusBarMessageType = StatusBarDefault
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
}
