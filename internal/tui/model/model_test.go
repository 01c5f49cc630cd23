package model

import (
	"errors"
	"testing"
	"time"

	"anchovy/internal/clipboard"
	"anchovy/internal/config"
	"anchovy/internal/tokens"
	"anchovy/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := InitializeModel(Options{
		Config:    config.GetDefaultConfig(),
		Clipboard: clipboard.Func(func(string) error { return nil }),
	})
	require.NoError(t, err)
	return m
}

func TestParseRoute(t *testing.T) {
	tests := []struct {
		in      string
		want    Page
		wantErr bool
	}{
		{in: "/", want: PageHome},
		{in: "", want: PageHome},
		{in: "overview", want: PageHome},
		{in: "/spectrum", want: PageSpectrum},
		{in: "Typography", want: PageTypography},
		{in: "gradients", want: PageGradients},
		{in: "/components", want: PageComponents},
		{in: "6", want: PageSpacing},
		{in: "/tokens", want: PageTokens},
		{in: "/palette", wantErr: true},
		{in: "8", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseRoute(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestPageCycling(t *testing.T) {
	assert.Equal(t, PageSpectrum, PageHome.Next())
	assert.Equal(t, PageHome, PageTokens.Next())
	assert.Equal(t, PageTokens, PageHome.Prev())

	seen := map[string]bool{}
	for _, p := range Pages {
		assert.NotEmpty(t, p.Route())
		assert.False(t, seen[p.Route()], "duplicate route %s", p.Route())
		seen[p.Route()] = true
	}
	assert.Len(t, seen, 7)
}

func TestInitializeModel(t *testing.T) {
	m := newTestModel(t)

	fam, shade := m.Spectrum.Selected()
	assert.Equal(t, "Red", fam.Name, "the grid starts at the top of the spectrum")
	assert.Equal(t, "500", shade.Name)

	assert.Equal(t, 167, m.Tokens.Summary.Total)
	assert.Equal(t, tokens.FormatJSON, m.Tokens.Format)
	assert.Equal(t, config.DefaultLoadingDuration, m.Components.Saving.Delay())
	assert.Equal(t, config.DefaultCopyDuration, m.Spectrum.Copy.Delay())

	assert.True(t, m.Components.Toggles["toggle-notifications"])
	assert.False(t, m.Components.Toggles["toggle-analytics"])
	assert.Equal(t, 1, m.Components.Choices["radio-plan"])
	assert.Equal(t, 4, m.Components.Choices["select-color-family"], "Neural (Blue)")

	assert.Len(t, m.AllIndicators(), 8)
	assert.Len(t, m.Indicators(PageTokens), 2)
	assert.Nil(t, m.Indicators(PageHome))
	assert.Nil(t, m.Init(), "no log channel, nothing to listen on")
}

func TestCopyTargets(t *testing.T) {
	m := newTestModel(t)

	text, key := m.Tokens.CopyTarget()
	assert.Equal(t, "color.neural.500", text)
	assert.Equal(t, text, key)

	m.Spacing.Section = SpacingPlayground
	text, key = m.Spacing.CopyTarget(false)
	assert.Equal(t, "padding: 16px;\ngap: 20px;\nmargin: 24px;", text)
	assert.Equal(t, "playground", key)

	m.Typography.Section = TypographyWeights
	m.Typography.Row = 5
	text, key = m.Typography.CopyTarget(false, false)
	assert.Equal(t, "font-weight: 800;", text)
	assert.Equal(t, "weight-inter-800", key)

	m.Gradients.Cursor = 0
	text, key = m.Gradients.CopyTarget()
	assert.Equal(t, "background: linear-gradient(135deg, #3B82F6, #6366F1, #8B5CF6);", text)
	assert.Equal(t, "aurora", key)
}

func TestInitializeModel_BadTokenFormat(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Tokens.Format = "toml"
	_, err := InitializeModel(Options{Config: cfg})
	assert.Error(t, err)
}

func TestSetStatusMessage(t *testing.T) {
	m := newTestModel(t)

	first := m.SetStatusMessage("one", StatusBarInfo, time.Millisecond)
	second := m.SetStatusMessage("two", StatusBarSuccess, time.Millisecond)

	assert.Equal(t, "two", m.StatusBarMessage)
	assert.Nil(t, first(), "superseded timer is cancelled")
	assert.Equal(t, ClearStatusBarMsg{}, second())

	m.ClearStatusMessage()
	assert.Empty(t, m.StatusBarMessage)
	assert.Nil(t, m.StatusBarClearCancel)
}

func TestActivityLog(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)

	line := FormatLogEntry(logging.LogEntry{
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:     logging.LevelWarn,
		Subsystem: "Clipboard",
		Message:   "copy failed",
		Err:       errors.New("no xclip"),
	})
	assert.Equal(t, "03:04:05.000 [WARN] [Clipboard] copy failed -- Error: no xclip", line)
}

func TestListenForLogEntriesCmd(t *testing.T) {
	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Message: "hello"}

	msg := ListenForLogEntriesCmd(ch)()
	require.IsType(t, NewLogEntryMsg{}, msg)
	assert.Equal(t, "hello", msg.(NewLogEntryMsg).Entry.Message)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}
