package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"anchovy/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/anchovy"
	projectConfigDir = ".anchovy"
	configFileName   = "config.yaml"
)

// LoadConfig layers the user and project files over the defaults.
func LoadConfig() (AnchovyConfig, error) {
	config := GetDefaultConfig()

	for _, layer := range []struct {
		name string
		path func() (string, error)
	}{
		{"user", getUserConfigPath},
		{"project", getProjectConfigPath},
	} {
		path, err := layer.path()
		if err != nil {
			logging.Warn("Config", "could not determine %s config path: %v", layer.name, err)
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return AnchovyConfig{}, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		logging.Debug("Config", "loaded %s config from %s", layer.name, path)
		config = mergeConfigs(config, overlay)
	}

	if err := config.Validate(); err != nil {
		return AnchovyConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadConfigFromFile(filePath string) (AnchovyConfig, error) {
	var config AnchovyConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return AnchovyConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return AnchovyConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay leave the base untouched.
func mergeConfigs(base, overlay AnchovyConfig) AnchovyConfig {
	merged := base

	if overlay.Theme != "" {
		merged.Theme = overlay.Theme
	}
	if overlay.StartPage != "" {
		merged.StartPage = overlay.StartPage
	}
	if overlay.Feedback.CopyDuration != 0 {
		merged.Feedback.CopyDuration = overlay.Feedback.CopyDuration
	}
	if overlay.Feedback.LoadingDuration != 0 {
		merged.Feedback.LoadingDuration = overlay.Feedback.LoadingDuration
	}
	if overlay.Clipboard.OSC52Fallback != nil {
		v := *overlay.Clipboard.OSC52Fallback
		merged.Clipboard.OSC52Fallback = &v
	}
	if overlay.Tokens.ExportDir != "" {
		merged.Tokens.ExportDir = overlay.Tokens.ExportDir
	}
	if overlay.Tokens.Format != "" {
		merged.Tokens.Format = overlay.Tokens.Format
	}
	if overlay.MCP.Transport != "" {
		merged.MCP.Transport = overlay.MCP.Transport
	}
	if overlay.MCP.Host != "" {
		merged.MCP.Host = overlay.MCP.Host
	}
	if overlay.MCP.Port != 0 {
		merged.MCP.Port = overlay.MCP.Port
	}
	if overlay.Log.Level != "" {
		merged.Log.Level = overlay.Log.Level
	}

	return merged
}

// Validate rejects values no command could act on.
func (c AnchovyConfig) Validate() error {
	var problems []string

	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		problems = append(problems, fmt.Sprintf("theme must be auto, light or dark, got %q", c.Theme))
	}
	if c.Feedback.CopyDuration < 0 || c.Feedback.LoadingDuration < 0 {
		problems = append(problems, "feedback durations must not be negative")
	}
	switch strings.ToLower(c.Tokens.Format) {
	case "json", "yaml", "yml":
	default:
		problems = append(problems, fmt.Sprintf("tokens.format must be json or yaml, got %q", c.Tokens.Format))
	}
	switch c.MCP.Transport {
	case "stdio", "sse":
	default:
		problems = append(problems, fmt.Sprintf("mcp.transport must be stdio or sse, got %q", c.MCP.Transport))
	}
	if c.MCP.Port < 0 || c.MCP.Port > 65535 {
		problems = append(problems, fmt.Sprintf("mcp.port %d out of range", c.MCP.Port))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
