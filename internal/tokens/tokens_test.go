package tokens

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"anchovy/internal/catalog"
	"anchovy/internal/colormath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize()
	require.NoError(t, err)

	assert.Equal(t, "Anchovy Design Tokens", s.Name)
	assert.Equal(t, 167, s.Total)

	got := map[string]int{}
	var titles []string
	for _, c := range s.Categories {
		got[c.Key] = c.Count
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"Colors", "Gradients", "Typography", "Spacing", "Sizing", "Primitives"}, titles)
	assert.Equal(t, 85, got["colors"])
	assert.Equal(t, 8, got["gradients"])
	assert.Equal(t, 18, got["typography"])
	assert.Equal(t, 23, got["spacing"])
	assert.Equal(t, 17, got["sizing"])
	assert.Equal(t, 16, got["primitives"])
}

func TestSummarize_UnknownCategoriesAreKept(t *testing.T) {
	s, err := summarize([]byte(`{"name":"x","tokens":{"zeta":{"a":{"value":1}},"color":{"red":{"value":"#FF0000"}},"alpha":{"b":{"c":{"value":2}}}}}`))
	require.NoError(t, err)
	require.Len(t, s.Categories, 3)
	assert.Equal(t, "colors", s.Categories[0].Key)
	assert.Equal(t, "alpha", s.Categories[1].Key)
	assert.Equal(t, "zeta", s.Categories[2].Key)
	assert.Equal(t, 3, s.Total)

	_, err = summarize([]byte("not json"))
	assert.Error(t, err)
}

// The token file is authored separately; make sure its colors have not drifted
// from the reference tables.
func TestTokenFileMatchesCatalog(t *testing.T) {
	for _, f := range catalog.Families {
		for _, shade := range f.Shades {
			tok, err := Lookup("color." + f.TokenName() + "." + shade.Name)
			require.NoError(t, err)
			assert.Equal(t, shade.Hex, tok["value"], "%s/%s", f.Name, shade.Name)
			assert.Equal(t, colormath.MustHexToCMYK(shade.Hex), tok["cmyk"], "%s/%s", f.Name, shade.Name)
		}
	}
	for _, g := range catalog.Gradients {
		tok, err := Lookup("gradient." + g.Slug())
		require.NoError(t, err)
		assert.Equal(t, g.Published, tok["value"], g.Name)
	}
	for _, s := range catalog.SpacingScale {
		key := strings.ReplaceAll(strings.TrimPrefix(s.Name, "space-"), ".", "-")
		tok, err := Lookup("spacing." + key)
		require.NoError(t, err)
		assert.Equal(t, s.Rem(), tok["rem"], s.Name)
		assert.Equal(t, fmt.Sprintf("%gpx", s.Px), tok["value"], s.Name)
	}
	for _, s := range catalog.SizingScale {
		tok, err := Lookup(sizingPath(s.Name))
		require.NoError(t, err, s.Name)
		assert.Equal(t, fmt.Sprintf("%gpx", s.Px), tok["value"], s.Name)
	}
}

func sizingPath(name string) string {
	parts := strings.Split(strings.TrimPrefix(name, "size-"), "-")
	if parts[0] == "btn" {
		parts[0] = "button"
	}
	return "sizing." + strings.Join(parts, ".")
}

func TestTokenFileTypographyMatchesCatalog(t *testing.T) {
	keys := []string{
		"display-lg", "display-md", "display-sm",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"body-lg", "body", "body-sm", "caption", "overline",
		"code-inline", "code-block",
	}
	require.Len(t, catalog.TypeScale, len(keys))
	for i, l := range catalog.TypeScale {
		tok, err := Lookup("typography." + keys[i])
		require.NoError(t, err)
		v, ok := tok["value"].(map[string]interface{})
		require.True(t, ok, keys[i])
		assert.Equal(t, string(l.FontFamily), v["fontFamily"], l.Name)
		assert.Equal(t, fmt.Sprintf("%dpx", l.SizePx), v["fontSize"], l.Name)
		assert.Equal(t, float64(l.Weight), v["fontWeight"], l.Name)
		assert.Equal(t, l.LineHeight, v["lineHeight"], l.Name)
		assert.Equal(t, l.LetterSpacing, v["letterSpacing"], l.Name)
	}

	semantic := []string{
		"heading-primary", "heading-secondary", "body", "secondary", "muted",
		"link", "link-hover", "success", "warning", "error",
	}
	require.Len(t, catalog.TypographyColors, len(semantic))
	for i, c := range catalog.TypographyColors {
		tok, err := Lookup("color.semantic." + semantic[i])
		require.NoError(t, err)
		assert.Equal(t, c.LightHex, tok["value"], c.Name)
		dark, err := Lookup("color.semantic." + semantic[i] + ".dark")
		require.NoError(t, err)
		assert.Equal(t, c.DarkHex, dark["value"], c.Name)
		assert.Equal(t, c.DarkCMYK(), dark["cmyk"], c.Name)
	}
}

func TestReferencesResolve(t *testing.T) {
	require.Len(t, References, 8)
	for _, r := range References {
		_, err := Lookup(r.Path)
		assert.NoError(t, err, r.Path)
	}

	tok, err := Lookup("color.neural.500")
	require.NoError(t, err)
	assert.Equal(t, "#3B82F6", tok["value"])

	tok, err = Lookup("borderRadius.2xl")
	require.NoError(t, err)
	assert.Equal(t, "16px", tok["value"])
}

func TestLookup_Errors(t *testing.T) {
	_, err := Lookup("color.neural")
	assert.ErrorContains(t, err, "is a group")

	_, err = Lookup("color.chartreuse.500")
	assert.ErrorContains(t, err, "not found")

	_, err = Lookup("color.neural.500.value")
	assert.Error(t, err)
}

func TestExport_JSONIsByteIdentical(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")

	path, err := Export(dir, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Raw(), data)
}

func TestExport_YAML(t *testing.T) {
	dir := t.TempDir()

	path, err := Export(dir, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "anchovy-design-tokens.yaml", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "Anchovy Design Tokens", doc["name"])
	assert.NotContains(t, string(data), "{")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatJSON, "json": FormatJSON, "YAML": FormatYAML, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("toml")
	assert.Error(t, err)
}

func TestRawReturnsCopy(t *testing.T) {
	a := Raw()
	a[0] = 'X'
	assert.NotEqual(t, a[0], Raw()[0])
}
