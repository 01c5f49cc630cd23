package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"anchovy/internal/catalog"
	"anchovy/internal/colormath"
	"anchovy/internal/tokens"
	"anchovy/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("hex_to_cmyk",
		mcp.WithDescription("Convert a #RRGGBB color to the catalog's CMYK string"),
		mcp.WithString("hex",
			mcp.Required(),
			mcp.Description("Color in #RRGGBB form"),
		),
	), handleHexToCMYK)

	s.mcp.AddTool(mcp.NewTool("pick_foreground",
		mcp.WithDescription("Choose the text and muted text colors that read best on a background"),
		mcp.WithString("hex",
			mcp.Required(),
			mcp.Description("Background color in #RRGGBB form"),
		),
	), handlePickForeground)

	s.mcp.AddTool(mcp.NewTool("contrast_ratio",
		mcp.WithDescription("WCAG contrast ratio and grade between two colors"),
		mcp.WithString("foreground",
			mcp.Required(),
			mcp.Description("Text color in #RRGGBB form"),
		),
		mcp.WithString("background",
			mcp.Required(),
			mcp.Description("Background color in #RRGGBB form"),
		),
	), handleContrastRatio)

	s.mcp.AddTool(mcp.NewTool("list_color_families",
		mcp.WithDescription("List the color families with their 500 shade"),
	), handleListColorFamilies)

	s.mcp.AddTool(mcp.NewTool("get_color_family",
		mcp.WithDescription("Get every shade of one color family with hex and CMYK values"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Family name, e.g. Blue"),
		),
	), handleGetColorFamily)

	s.mcp.AddTool(mcp.NewTool("list_gradients",
		mcp.WithDescription("List the gradient presets with their CSS"),
	), handleListGradients)

	s.mcp.AddTool(mcp.NewTool("list_spacing_tokens",
		mcp.WithDescription("List spacing or sizing tokens with px and rem values"),
		mcp.WithString("scale",
			mcp.Description("Which scale to list"),
			mcp.Enum("spacing", "sizing"),
		),
		mcp.WithString("category",
			mcp.Description("Sizing category filter"),
			mcp.Enum(string(catalog.SizingIcon), string(catalog.SizingComponent), string(catalog.SizingLayout)),
		),
	), handleListSpacingTokens)

	s.mcp.AddTool(mcp.NewTool("token_summary",
		mcp.WithDescription("Count the design tokens per category"),
	), handleTokenSummary)

	s.mcp.AddTool(mcp.NewTool("lookup_token",
		mcp.WithDescription("Look a token up by its dotted path, e.g. color.neural.500"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Dotted token path"),
		),
	), handleLookupToken)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func handleHexToCMYK(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, err := request.RequireString("hex")
	if err != nil {
		return mcp.NewToolResultError("hex parameter is required"), nil
	}
	cmyk, err := colormath.HexToCMYK(hex)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(cmyk), nil
}

func handlePickForeground(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, err := request.RequireString("hex")
	if err != nil {
		return mcp.NewToolResultError("hex parameter is required"), nil
	}
	fg, err := colormath.PickForeground(hex)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lightness, _ := colormath.PerceivedLightness(hex)
	return jsonResult(map[string]interface{}{
		"background": hex,
		"lightness":  lightness,
		"text":       fg.Text,
		"mutedText":  fg.MutedText,
	})
}

func handleContrastRatio(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fg, err := request.RequireString("foreground")
	if err != nil {
		return mcp.NewToolResultError("foreground parameter is required"), nil
	}
	bg, err := request.RequireString("background")
	if err != nil {
		return mcp.NewToolResultError("background parameter is required"), nil
	}
	ratio, err := colormath.ContrastRatio(fg, bg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{
		"ratio": colormath.FormatContrast(ratio),
		"level": colormath.WCAGLevel(ratio),
	})
}

type shadeInfo struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	CMYK string `json:"cmyk"`
}

type familyInfo struct {
	Name        string      `json:"name"`
	Subtitle    string      `json:"subtitle"`
	Description string      `json:"description"`
	Primary     string      `json:"primary"`
	Shades      []shadeInfo `json:"shades,omitempty"`
}

func handleListColorFamilies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := make([]familyInfo, len(catalog.Families))
	for i, f := range catalog.Families {
		out[i] = familyInfo{Name: f.Name, Subtitle: f.Subtitle, Description: f.Description, Primary: f.Primary().Hex}
	}
	return jsonResult(out)
}

func handleGetColorFamily(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	f, ok := catalog.FamilyByName(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Color family not found: %s", name)), nil
	}
	info := familyInfo{Name: f.Name, Subtitle: f.Subtitle, Description: f.Description, Primary: f.Primary().Hex}
	for _, shade := range f.Shades {
		info.Shades = append(info.Shades, shadeInfo{Name: shade.Name, Hex: shade.Hex, CMYK: shade.CMYK()})
	}
	return jsonResult(info)
}

func handleListGradients(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type gradientInfo struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Colors      []string `json:"colors"`
		Angle       int      `json:"angle"`
		CSS         string   `json:"css"`
	}
	out := make([]gradientInfo, len(catalog.Gradients))
	for i, g := range catalog.Gradients {
		out[i] = gradientInfo{Name: g.Name, Description: g.Description, Colors: g.Colors, Angle: g.Angle, CSS: g.CSS()}
	}
	return jsonResult(out)
}

type spacingInfo struct {
	Name     string  `json:"name"`
	CSSVar   string  `json:"cssVar"`
	Px       float64 `json:"px"`
	Rem      string  `json:"rem"`
	Usage    string  `json:"usage,omitempty"`
	Category string  `json:"category,omitempty"`
}

func handleListSpacingTokens(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	scale, _ := args["scale"].(string)
	category, _ := args["category"].(string)

	var out []spacingInfo
	switch scale {
	case "", "spacing":
		for _, t := range catalog.SpacingScale {
			out = append(out, spacingInfo{Name: t.Name, CSSVar: t.CSSVar, Px: t.Px, Rem: t.Rem()})
		}
	case "sizing":
		list := catalog.SizingScale
		if category != "" {
			list = catalog.SizingByCategory(catalog.SizingCategory(category))
			if len(list) == 0 {
				return mcp.NewToolResultError(fmt.Sprintf("Unknown sizing category: %s", category)), nil
			}
		}
		for _, t := range list {
			out = append(out, spacingInfo{Name: t.Name, CSSVar: t.CSSVar, Px: t.Px, Rem: t.Rem(), Usage: t.Usage, Category: string(t.Category)})
		}
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Unknown scale '%s', must be 'spacing' or 'sizing'", scale)), nil
	}
	return jsonResult(out)
}

func handleTokenSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := tokens.Summarize()
	if err != nil {
		logging.Error(subsystem, err, "token summary failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(summary)
}

func handleLookupToken(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path parameter is required"), nil
	}
	tok, err := tokens.Lookup(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(tok)
}
