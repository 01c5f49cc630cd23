package design

import (
	"testing"

	"anchovy/internal/catalog"
	"anchovy/internal/colormath"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
	}{
		{"set dark mode", true},
		{"set light mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			assert.Equal(t, tt.isDarkMode, lipgloss.HasDarkBackground())
		})
	}
}

func shade(t *testing.T, family, name string) string {
	t.Helper()
	f, ok := catalog.FamilyByName(family)
	require.True(t, ok, family)
	for _, s := range f.Shades {
		if s.Name == name {
			return s.Hex
		}
	}
	t.Fatalf("no shade %s/%s", family, name)
	return ""
}

// The browser is styled with the catalog's own colors.
func TestPaletteComesFromCatalog(t *testing.T) {
	assert.Equal(t, shade(t, "Blue", "600"), ColorPrimary.Light)
	assert.Equal(t, shade(t, "Blue", "400"), ColorPrimary.Dark)
	assert.Equal(t, shade(t, "Green", "600"), ColorAccent.Light)
	assert.Equal(t, shade(t, "Red", "600"), ColorError.Light)
	assert.Equal(t, shade(t, "Yellow", "600"), ColorWarning.Light)
	assert.Equal(t, shade(t, "Indigo", "600"), ColorInfo.Light)
	assert.Equal(t, colormath.LightBackground, ColorBackground.Light)
	assert.Equal(t, colormath.DarkBackground, ColorBackground.Dark)

	for _, c := range catalog.TypographyColors {
		if c.Name == "Heading Primary" {
			assert.Equal(t, c.LightHex, ColorText.Light)
			assert.Equal(t, c.DarkHex, ColorText.Dark)
		}
	}
}
