package config

import "time"

const (
	DefaultCopyDuration    = 1500 * time.Millisecond
	DefaultLoadingDuration = 2000 * time.Millisecond
	DefaultMCPHost         = "localhost"
	DefaultMCPPort         = 8090
)

// GetDefaultConfig returns the configuration used when no files are present.
func GetDefaultConfig() AnchovyConfig {
	osc52 := true
	return AnchovyConfig{
		Theme:     ThemeAuto,
		StartPage: "overview",
		Feedback: FeedbackConfig{
			CopyDuration:    DefaultCopyDuration,
			LoadingDuration: DefaultLoadingDuration,
		},
		Clipboard: ClipboardConfig{OSC52Fallback: &osc52},
		Tokens: TokensConfig{
			ExportDir: ".",
			Format:    "json",
		},
		MCP: MCPConfig{
			Transport: "stdio",
			Host:      DefaultMCPHost,
			Port:      DefaultMCPPort,
		},
		Log: LogConfig{Level: "info"},
	}
}
