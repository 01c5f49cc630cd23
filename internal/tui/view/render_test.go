package view

import (
	"strings"
	"testing"
	"time"

	"anchovy/internal/clipboard"
	"anchovy/internal/config"
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/feedback"
	"anchovy/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, width, height int) *model.Model {
	t.Helper()
	design.Initialize(false)
	m, err := model.InitializeModel(model.Options{
		Config:    config.GetDefaultConfig(),
		Clipboard: clipboard.Func(func(string) error { return nil }),
	})
	require.NoError(t, err)
	m.Width, m.Height = width, height
	return m
}

func TestRender_EveryPageFitsTheTerminal(t *testing.T) {
	titles := map[model.Page]string{
		model.PageHome:       "Anchovy Design System",
		model.PageSpectrum:   "Spectrum",
		model.PageTypography: "Typography",
		model.PageGradients:  "Gradients",
		model.PageComponents: "Components",
		model.PageSpacing:    "Spacing & Sizing",
		model.PageTokens:     "Design Tokens",
	}
	for _, p := range model.Pages {
		t.Run(p.Route(), func(t *testing.T) {
			m := newTestModel(t, 120, 60)
			m.CurrentPage = p
			out := ansi.Strip(Render(m))

			assert.Contains(t, out, titles[p])
			assert.Contains(t, out, p.Route())
			assert.LessOrEqual(t, lipgloss.Height(out), 60)
		})
	}
}

func TestRender_Placeholders(t *testing.T) {
	m := newTestModel(t, 0, 0)
	assert.Equal(t, "Initializing...", Render(m))

	m.CurrentAppMode = model.ModeQuitting
	assert.Equal(t, "Goodbye.\n", Render(m))
}

func TestRender_CopiedBadge(t *testing.T) {
	m := newTestModel(t, 120, 60)
	m.CurrentPage = model.PageGradients
	m.Gradients.Copy = feedback.New("gradients", time.Hour)

	_, err := m.Gradients.Copy.Copy(clipboard.Func(func(string) error { return nil }), "x", "aurora")
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(Render(m)), "copied")

	m.Gradients.Copy.Dispose()
	assert.NotContains(t, ansi.Strip(Render(m)), "copied")
}

func TestRender_Overlays(t *testing.T) {
	m := newTestModel(t, 100, 40)
	m.CurrentAppMode = model.ModeHelpOverlay
	assert.Contains(t, ansi.Strip(Render(m)), "copy CMYK / rem")

	m.CurrentAppMode = model.ModeLogOverlay
	model.AddRawLineToActivityLog(m, "12:00:00.000 [INFO] [Test] hello")
	m.LogViewport.Width, m.LogViewport.Height = LogViewportSize(m.Width, 30)
	m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog))
	assert.Contains(t, ansi.Strip(Render(m)), "hello")
}

func TestScrollToFocus(t *testing.T) {
	var lines []string
	for i := 0; i < 30; i++ {
		prefix := "  "
		if i == 20 {
			prefix = focusMarker
		}
		lines = append(lines, prefix+"row")
	}
	content := strings.Join(lines, "\n")

	out := strings.Split(scrollToFocus(content, 9), "\n")
	require.Len(t, out, 9)
	assert.Equal(t, focusMarker+"row", out[3])

	// short content is left alone
	assert.Equal(t, "a\nb", scrollToFocus("a\nb", 9))

	// focus near the end clamps to the last window
	lines[20] = "  row"
	lines[29] = focusMarker + "row"
	out = strings.Split(scrollToFocus(strings.Join(lines, "\n"), 9), "\n")
	assert.Equal(t, focusMarker+"row", out[8])
}

func TestRender_SpectrumScrollsToFocusedFamily(t *testing.T) {
	m := newTestModel(t, 80, 20)
	m.CurrentPage = model.PageSpectrum
	m.Spectrum.Family = 6

	out := ansi.Strip(Render(m))
	assert.Contains(t, out, "▸ ")
	assert.LessOrEqual(t, lipgloss.Height(out), 20)
}

func TestRender_TypographyWeights(t *testing.T) {
	m := newTestModel(t, 120, 80)
	m.CurrentPage = model.PageTypography
	m.Typography.Section = model.TypographyWeights
	m.Typography.Copy = feedback.New("typography", time.Hour)

	_, err := m.Typography.Copy.Copy(clipboard.Func(func(string) error { return nil }), "font-weight: 800;", "weight-inter-800")
	require.NoError(t, err)

	out := ansi.Strip(Render(m))
	assert.Contains(t, out, "Font weights")
	assert.Contains(t, out, "font-weight: 800;")
	assert.Contains(t, out, "Extrabold")
	assert.Contains(t, out, "copied")
}

func TestRender_TokenPathReference(t *testing.T) {
	m := newTestModel(t, 120, 60)
	m.CurrentPage = model.PageTokens
	m.Tokens.Cursor = 2
	m.Tokens.Copy = feedback.New("tokens-path", time.Hour)

	out := ansi.Strip(Render(m))
	assert.Contains(t, out, "Token Path Reference")
	assert.Contains(t, out, "color.neural.500")
	assert.Contains(t, out, "Card radius")
	assert.Contains(t, out, "▸ color.semantic.body.dark")
	assert.NotContains(t, out, "copied")

	_, err := m.Tokens.Copy.Copy(clipboard.Func(func(string) error { return nil }), "color.semantic.body.dark", "color.semantic.body.dark")
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(Render(m)), "copied")
}
