package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"anchovy/internal/config"
	"anchovy/internal/tokens"
	"anchovy/internal/tui/model"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs rootCmd with args against an empty home directory so
// no user config leaks into the test.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		tokensExportDir, tokensExportFormat, logLevelFlag = "", "", ""
	})

	_, err := rootCmd.ExecuteC()
	return ansi.Strip(out.String()), err
}

func TestColorCommand(t *testing.T) {
	out, err := executeCommand(t, "color", "#3B82F6", "#000000")
	require.NoError(t, err)
	assert.Contains(t, out, "76 / 47 / 0 / 4")
	assert.Contains(t, out, "0 / 0 / 0 / 100")
	assert.Contains(t, out, "21.00:1 AAA")
}

func TestColorCommand_InvalidHex(t *testing.T) {
	_, err := executeCommand(t, "color", "blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidColorFormat")
}

func TestTokensExportCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := executeCommand(t, "tokens", "export", "--dir", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, tokens.FileName)
	assert.Contains(t, out, "Saved "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, tokens.Raw(), data)
}

func TestTokensExportCommand_YAML(t *testing.T) {
	dir := t.TempDir()
	_, err := executeCommand(t, "tokens", "export", "--dir", dir, "--format", "yaml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "anchovy-design-tokens.yaml"))

	_, err = executeCommand(t, "tokens", "export", "--dir", dir, "--format", "toml")
	assert.Error(t, err)
}

func TestTokensSummaryAndGet(t *testing.T) {
	out, err := executeCommand(t, "tokens", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Anchovy Design Tokens")
	assert.Contains(t, out, "Colors")
	assert.Contains(t, out, "167")

	out, err = executeCommand(t, "tokens", "get", "color.neural.500")
	require.NoError(t, err)
	assert.Contains(t, out, `"#3B82F6"`)

	_, err = executeCommand(t, "tokens", "get", "color.neural")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := executeCommand(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "OK: 7 color families")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := executeCommand(t, "validate", "--log-level", "loud")
	assert.Error(t, err)
}

func TestServeUnknownTransport(t *testing.T) {
	_, err := executeCommand(t, "serve", "--transport", "carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
	serveTransport = ""
}

func TestBrowseOptions(t *testing.T) {
	cfg := config.GetDefaultConfig()

	opts, err := browseOptions(cfg, "/spectrum", "dark", true)
	require.NoError(t, err)
	assert.Equal(t, model.PageSpectrum, opts.StartPage)
	assert.True(t, opts.IsDark)
	assert.True(t, opts.DebugMode)

	cfg.StartPage = "tokens"
	opts, err = browseOptions(cfg, "", "light", false)
	require.NoError(t, err)
	assert.Equal(t, model.PageTokens, opts.StartPage)
	assert.False(t, opts.IsDark)

	_, err = browseOptions(cfg, "/palette", "light", false)
	assert.Error(t, err)

	_, err = browseOptions(cfg, "", "sepia", false)
	assert.Error(t, err)
}

func TestResolveDark(t *testing.T) {
	detected := func() bool { return true }
	assert.True(t, resolveDark(config.ThemeAuto, detected))
	assert.True(t, resolveDark(config.ThemeDark, detected))
	assert.False(t, resolveDark(config.ThemeLight, detected))
}
