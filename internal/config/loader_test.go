package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigPaths points the loader at files inside a temp dir.
func withConfigPaths(t *testing.T) (userPath, projectPath string) {
	t.Helper()
	dir := t.TempDir()
	userPath = filepath.Join(dir, "home", userConfigDir, configFileName)
	projectPath = filepath.Join(dir, "work", projectConfigDir, configFileName)

	originalUser, originalProject := getUserConfigPath, getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
	})
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
	return userPath, projectPath
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	withConfigPaths(t)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Equal(t, 1500*time.Millisecond, loaded.Feedback.CopyDuration)
	assert.True(t, loaded.Clipboard.OSC52Enabled())
}

func TestLoadConfig_UserThenProject(t *testing.T) {
	userPath, projectPath := withConfigPaths(t)

	writeFile(t, userPath, `
theme: dark
feedback:
  copyDuration: 3s
tokens:
  exportDir: /tmp/tokens
mcp:
  transport: sse
  port: 9000
`)
	writeFile(t, projectPath, `
theme: light
clipboard:
  osc52Fallback: false
tokens:
  format: yaml
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ThemeLight, loaded.Theme, "project overrides user")
	assert.Equal(t, 3*time.Second, loaded.Feedback.CopyDuration, "user overrides default")
	assert.Equal(t, DefaultLoadingDuration, loaded.Feedback.LoadingDuration, "untouched default")
	assert.False(t, loaded.Clipboard.OSC52Enabled(), "explicit false wins")
	assert.Equal(t, "/tmp/tokens", loaded.Tokens.ExportDir)
	assert.Equal(t, "yaml", loaded.Tokens.Format)
	assert.Equal(t, "sse", loaded.MCP.Transport)
	assert.Equal(t, 9000, loaded.MCP.Port)
	assert.Equal(t, DefaultMCPHost, loaded.MCP.Host)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "malformed yaml", content: "theme: [", wantErr: "error loading user config"},
		{name: "bad theme", content: "theme: sepia", wantErr: "theme must be"},
		{name: "bad transport", content: "mcp:\n  transport: grpc", wantErr: "mcp.transport"},
		{name: "bad log level", content: "log:\n  level: chatty", wantErr: "unknown log level"},
		{name: "bad format", content: "tokens:\n  format: toml", wantErr: "tokens.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userPath, _ := withConfigPaths(t)
			writeFile(t, userPath, tt.content)

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeConfigs_ZeroOverlayKeepsBase(t *testing.T) {
	base := GetDefaultConfig()
	assert.Equal(t, base, mergeConfigs(base, AnchovyConfig{}))
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/diver", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/diver", ".config", "anchovy"), dir)
}
