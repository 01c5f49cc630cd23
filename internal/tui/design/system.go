// Package design holds the colours, spacing and base styles the TUI is drawn
// with. Colours come from the catalog's own palette so the browser is styled
// with the system it documents.
package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Terminal cells are roughly 8px wide, so one cell stands in for two 4px
// spacing steps horizontally.
const (
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4

	MinPanelHeight = 6
	MinPanelWidth  = 20

	// SwatchWidth is the cell width of one colour swatch on the Spectrum page.
	SwatchWidth = 11
)

// Semantic colours. Light values are used on light terminals, Dark values on
// dark ones; see Initialize.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"} // neural 600 / 400
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"} // matrix 600 / 400

	ColorSuccess = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#CA8A04", Dark: "#FACC15"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}

	ColorBackground  = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F172A"}
	ColorSurface     = lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#1E293B"}
	ColorSurfaceAlt  = lipgloss.AdaptiveColor{Light: "#F1F5F9", Dark: "#334155"}
	ColorBorder      = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#475569"}
	ColorBorderFocus = ColorPrimary
	ColorHighlight   = lipgloss.AdaptiveColor{Light: "#EFF6FF", Dark: "#1E3A8A"}

	ColorText          = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#F8FAFC"}
	ColorTextSecondary = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#CBD5E1"}
	ColorTextMuted     = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"}
	ColorCode          = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#FDA4AF"}
)

// Base styles.
var (
	TextStyle          = lipgloss.NewStyle().Foreground(ColorText)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorTextSecondary)
	TextMutedStyle     = lipgloss.NewStyle().Foreground(ColorTextMuted)
	TextSuccessStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	TextWarningStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	TextInfoStyle      = lipgloss.NewStyle().Foreground(ColorInfo)
	CodeStyle          = lipgloss.NewStyle().Foreground(ColorCode)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	BorderFocusStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorBorderFocus)
)

// Component styles.
var (
	PanelStyle = BorderStyle.
			Padding(0, SpaceXS)

	PanelFocusedStyle = BorderFocusStyle.
				Padding(0, SpaceXS)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceXS)

	NavItemStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, SpaceXS)

	NavItemActiveStyle = NavItemStyle.
				Foreground(ColorBackground).
				Background(ColorPrimary).
				Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceXS)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)

	ListItemStyle         = lipgloss.NewStyle().PaddingLeft(SpaceXS)
	ListItemSelectedStyle = ListItemStyle.Foreground(ColorPrimary).Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	SubtitleStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorTextSecondary)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(1, 2)

	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Foreground(ColorText)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	CopiedBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorBackground).
				Background(ColorSuccess).
				Bold(true).
				Padding(0, 1)

	FailedBadgeStyle = CopiedBadgeStyle.
				Background(ColorError)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// CenterHorizontal pads content so it sits in the middle of width cells.
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

// Initialize selects the light or dark half of every adaptive colour.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// DetectDarkBackground asks the terminal for its background colour.
func DetectDarkBackground() bool {
	return lipgloss.HasDarkBackground()
}
