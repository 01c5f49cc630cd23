package config

import "time"

// Theme selects the colour scheme of the TUI.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// AnchovyConfig is the top-level configuration structure for anchovy.
type AnchovyConfig struct {
	Theme     Theme           `yaml:"theme,omitempty"`
	StartPage string          `yaml:"startPage,omitempty"`
	Feedback  FeedbackConfig  `yaml:"feedback,omitempty"`
	Clipboard ClipboardConfig `yaml:"clipboard,omitempty"`
	Tokens    TokensConfig    `yaml:"tokens,omitempty"`
	MCP       MCPConfig       `yaml:"mcp,omitempty"`
	Log       LogConfig       `yaml:"log,omitempty"`
}

// FeedbackConfig controls how long transient UI states last.
type FeedbackConfig struct {
	// CopyDuration is how long a "Copied" indicator stays visible.
	CopyDuration time.Duration `yaml:"copyDuration,omitempty"`
	// LoadingDuration is how long the simulated save on the Components page takes.
	LoadingDuration time.Duration `yaml:"loadingDuration,omitempty"`
}

// ClipboardConfig controls clipboard access.
type ClipboardConfig struct {
	// OSC52Fallback sends copied text as an OSC 52 escape sequence when the
	// system clipboard is not reachable. A pointer so that an explicit false
	// in a later layer wins over an earlier true.
	OSC52Fallback *bool `yaml:"osc52Fallback,omitempty"`
}

// TokensConfig controls the design token export.
type TokensConfig struct {
	ExportDir string `yaml:"exportDir,omitempty"`
	Format    string `yaml:"format,omitempty"` // json or yaml
}

// MCPConfig configures `anchovy serve`.
type MCPConfig struct {
	Transport string `yaml:"transport,omitempty"` // stdio or sse
	Host      string `yaml:"host,omitempty"`
	Port      int    `yaml:"port,omitempty"`
}

// LogConfig sets the minimum log level.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// OSC52Enabled reports whether the OSC 52 fallback is switched on.
func (c ClipboardConfig) OSC52Enabled() bool {
	return c.OSC52Fallback != nil && *c.OSC52Fallback
}
