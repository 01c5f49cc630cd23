package mcpserver

import (
	"context"

	"anchovy/internal/tokens"

	"github.com/mark3labs/mcp-go/mcp"
)

// TokensURI addresses the design token file.
const TokensURI = "anchovy://tokens.json"

func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource(TokensURI, tokens.FileName,
		mcp.WithResourceDescription("The design token file, byte for byte as exported"),
		mcp.WithMIMEType("application/json"),
	), handleReadTokens)
}

func handleReadTokens(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      TokensURI,
			MIMEType: "application/json",
			Text:     string(tokens.Raw()),
		},
	}, nil
}
