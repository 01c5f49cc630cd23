// Package tokens ships the static design token file and offers it for
// download. The file is an external artifact: it is embedded and written out
// byte for byte, and only read here to summarise its contents.
package tokens

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name the token file is served and exported under.
const FileName = "anchovy-design-tokens.json"

//go:embed anchovy-design-tokens.json
var raw []byte

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown token format %q (want json or yaml)", s)
	}
}

// categoryOrder is the order categories are listed in, with their titles and
// the top-level groups of the file they are counted from.
var categoryOrder = []struct {
	key    string
	title  string
	groups []string
}{
	{"colors", "Colors", []string{"color"}},
	{"gradients", "Gradients", []string{"gradient"}},
	{"typography", "Typography", []string{"typography"}},
	{"spacing", "Spacing", []string{"spacing"}},
	{"sizing", "Sizing", []string{"sizing"}},
	{"primitives", "Primitives", []string{"borderRadius", "borderWidth", "opacity", "boxShadow"}},
}

// Reference is a token path documented alongside the file.
type Reference struct {
	Path        string
	Value       string
	Description string
}

// References are the example paths listed on the tokens page.
var References = []Reference{
	{Path: "color.neural.500", Value: "#3B82F6", Description: "Primary brand blue"},
	{Path: "color.signal.600", Value: "#E11D48", Description: "Destructive red"},
	{Path: "color.semantic.body.dark", Value: "#E2E8F0", Description: "Body text (dark mode)"},
	{Path: "typography.h1", Value: "Inter / 36px / 600", Description: "Heading 1 composite"},
	{Path: "spacing.4", Value: "16px", Description: "Base spacing unit x4"},
	{Path: "sizing.button.md", Value: "40px", Description: "Default button height"},
	{Path: "gradient.aurora", Value: "135deg, #3B82F6 > #8B5CF6", Description: "Primary gradient"},
	{Path: "borderRadius.2xl", Value: "16px", Description: "Card radius"},
}

// Raw returns the embedded file exactly as shipped.
func Raw() []byte {
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// Category is one top-level token group and the number of tokens in it.
type Category struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Summary describes the token file.
type Summary struct {
	Name       string     `json:"name"`
	Version    string     `json:"version"`
	Categories []Category `json:"categories"`
	Total      int        `json:"total"`
}

type document struct {
	Name    string                 `json:"name"`
	Version string                 `json:"version"`
	Tokens  map[string]interface{} `json:"tokens"`
}

// Summarize counts the tokens of the embedded file per category.
func Summarize() (Summary, error) {
	return summarize(raw)
}

func summarize(data []byte) (Summary, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Summary{}, fmt.Errorf("failed to parse token file: %w", err)
	}

	s := Summary{Name: doc.Name, Version: doc.Version}
	known := map[string]bool{}
	for _, c := range categoryOrder {
		found := false
		count := 0
		for _, g := range c.groups {
			known[g] = true
			if node, ok := doc.Tokens[g]; ok {
				found = true
				count += countTokens(node)
			}
		}
		if found {
			s.Categories = append(s.Categories, Category{Key: c.key, Title: c.title, Count: count})
		}
	}

	var extra []string
	for key := range doc.Tokens {
		if !known[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		s.Categories = append(s.Categories, Category{Key: key, Title: key, Count: countTokens(doc.Tokens[key])})
	}

	for _, c := range s.Categories {
		s.Total += c.Count
	}
	return s, nil
}

// countTokens counts leaf tokens, i.e. objects carrying a "value" key.
func countTokens(node interface{}) int {
	obj, ok := node.(map[string]interface{})
	if !ok {
		return 0
	}
	if _, isToken := obj["value"]; isToken {
		return 1
	}
	n := 0
	for _, child := range obj {
		n += countTokens(child)
	}
	return n
}

// Lookup returns the raw token object at a dotted path such as
// "color.neural.500".
func Lookup(path string) (map[string]interface{}, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	var node interface{} = doc.Tokens
	for _, part := range strings.Split(path, ".") {
		obj, ok := node.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("token %q not found", path)
		}
		if node, ok = obj[part]; !ok {
			return nil, fmt.Errorf("token %q not found", path)
		}
	}
	tok, ok := node.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("token %q not found", path)
	}
	if _, isToken := tok["value"]; !isToken {
		return nil, fmt.Errorf("%q is a group, not a token", path)
	}
	return tok, nil
}

// Encode returns the file in the requested format. JSON is returned unchanged.
func Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return Raw(), nil
	case FormatYAML:
		var doc yaml.Node
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to convert token file to yaml: %w", err)
		}
		clearStyle(&doc)
		out, err := yaml.Marshal(&doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert token file to yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown token format %q", format)
	}
}

// clearStyle drops the flow style yaml picks up from JSON input so the
// output reads as block yaml.
func clearStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// ExportFileName returns the file name for a format.
func ExportFileName(format Format) string {
	if format == FormatYAML {
		return strings.TrimSuffix(FileName, ".json") + ".yaml"
	}
	return FileName
}

// Export writes the token file into dir and returns the written path.
func Export(dir string, format Format) (string, error) {
	data, err := Encode(format)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, ExportFileName(format))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
