package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"anchovy/internal/tokens"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHexToCMYK(t *testing.T) {
	tests := []struct {
		name    string
		hex     interface{}
		want    string
		wantErr bool
	}{
		{name: "blue 500", hex: "#3B82F6", want: "76 / 47 / 0 / 4"},
		{name: "black", hex: "#000000", want: "0 / 0 / 0 / 100"},
		{name: "white", hex: "#FFFFFF", want: "0 / 0 / 0 / 0"},
		{name: "malformed", hex: "3B82F6", wantErr: true},
		{name: "missing", hex: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]interface{}{}
			if tt.hex != nil {
				args["hex"] = tt.hex
			}
			result, err := handleHexToCMYK(context.Background(), newRequest("hex_to_cmyk", args))
			require.NoError(t, err)
			assert.Equal(t, tt.wantErr, result.IsError)
			if !tt.wantErr {
				assert.Equal(t, tt.want, resultText(t, result))
			}
		})
	}
}

func TestPickForeground(t *testing.T) {
	result, err := handlePickForeground(context.Background(), newRequest("pick_foreground", map[string]interface{}{"hex": "#EFF6FF"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, "#0F172A", got["text"])
	assert.Equal(t, "#475569", got["mutedText"])

	result, err = handlePickForeground(context.Background(), newRequest("pick_foreground", map[string]interface{}{"hex": "#1E3A8A"}))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, "#FFFFFF", got["text"])
}

func TestContrastRatio(t *testing.T) {
	result, err := handleContrastRatio(context.Background(), newRequest("contrast_ratio", map[string]interface{}{
		"foreground": "#000000",
		"background": "#FFFFFF",
	}))
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, "21.00:1", got["ratio"])
	assert.Equal(t, "AAA", got["level"])

	result, err = handleContrastRatio(context.Background(), newRequest("contrast_ratio", map[string]interface{}{"foreground": "#000000"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestColorFamilies(t *testing.T) {
	result, err := handleListColorFamilies(context.Background(), newRequest("list_color_families", nil))
	require.NoError(t, err)

	var families []familyInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &families))
	require.Len(t, families, 7)
	assert.Equal(t, "Red", families[0].Name)
	assert.Equal(t, "Signal", families[0].Subtitle)
	assert.Equal(t, "#F43F5E", families[0].Primary)
	assert.Empty(t, families[0].Shades)
	assert.Equal(t, "Blue", families[4].Name)
	assert.Equal(t, "#3B82F6", families[4].Primary)

	result, err = handleGetColorFamily(context.Background(), newRequest("get_color_family", map[string]interface{}{"name": "matrix"}))
	require.NoError(t, err)

	var family familyInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &family))
	require.Len(t, family.Shades, 10)
	assert.Equal(t, "Green", family.Name)
	assert.Equal(t, "50", family.Shades[0].Name)
	assert.Equal(t, "#10B981", family.Shades[5].Hex)

	result, err = handleGetColorFamily(context.Background(), newRequest("get_color_family", map[string]interface{}{"name": "chartreuse"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestListGradients(t *testing.T) {
	result, err := handleListGradients(context.Background(), newRequest("list_gradients", nil))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "linear-gradient(135deg, #10B981, #3B82F6)")
	assert.Contains(t, text, "Neon Pulse")
}

func TestListSpacingTokens(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		wantLen int
		wantErr bool
	}{
		{name: "default is spacing", args: nil, wantLen: 23},
		{name: "sizing", args: map[string]interface{}{"scale": "sizing"}, wantLen: 17},
		{name: "sizing icons", args: map[string]interface{}{"scale": "sizing", "category": "icon"}, wantLen: 4},
		{name: "unknown category", args: map[string]interface{}{"scale": "sizing", "category": "gutter"}, wantErr: true},
		{name: "unknown scale", args: map[string]interface{}{"scale": "radius"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleListSpacingTokens(context.Background(), newRequest("list_spacing_tokens", tt.args))
			require.NoError(t, err)
			require.Equal(t, tt.wantErr, result.IsError)
			if tt.wantErr {
				return
			}
			var got []spacingInfo
			require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestTokenSummaryAndLookup(t *testing.T) {
	result, err := handleTokenSummary(context.Background(), newRequest("token_summary", nil))
	require.NoError(t, err)

	var summary tokens.Summary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &summary))
	assert.Equal(t, 167, summary.Total)

	result, err = handleLookupToken(context.Background(), newRequest("lookup_token", map[string]interface{}{"path": "color.neural.500"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "#3B82F6")

	result, err = handleLookupToken(context.Background(), newRequest("lookup_token", map[string]interface{}{"path": "color.neural"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestReadTokensResource(t *testing.T) {
	contents, err := handleReadTokens(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, TokensURI, text.URI)
	assert.Equal(t, string(tokens.Raw()), text.Text)
}

func TestServerListsTools(t *testing.T) {
	s := New(Config{Version: "1.2.3"})
	assert.Equal(t, "localhost:8090", s.Addr())

	ctx := context.Background()
	s.MCP().HandleMessage(ctx, json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`))
	resp := s.MCP().HandleMessage(ctx, json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`))

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	var names []string
	for _, tool := range decoded.Result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"hex_to_cmyk", "pick_foreground", "contrast_ratio", "list_color_families",
		"get_color_family", "list_gradients", "list_spacing_tokens", "token_summary", "lookup_token",
	}, names)
}

func TestShutdownWithoutSSE(t *testing.T) {
	assert.NoError(t, New(Config{}).Shutdown(context.Background()))
}

func TestStartSSEAfterShutdownReturns(t *testing.T) {
	s := New(Config{Port: 1})
	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, s.StartSSE())
}
