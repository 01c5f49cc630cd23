// Package mcpserver exposes the design catalog to MCP clients.
//
// The server is read-only: every tool answers from the compiled reference
// tables or the embedded token file, so no state is shared between sessions.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"anchovy/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCPServer"

// Transport names accepted by Config.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config controls how the server is exposed.
type Config struct {
	Name    string
	Version string
	Host    string
	Port    int
}

// Server wraps an MCP server carrying the catalog tools and resources.
type Server struct {
	config Config
	mcp    *server.MCPServer

	mu     sync.Mutex
	sse    *server.SSEServer
	closed bool
}

// New builds a server with every tool and resource registered.
func New(cfg Config) *Server {
	if cfg.Name == "" {
		cfg.Name = "anchovy"
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 8090
	}

	s := &Server{
		config: cfg,
		mcp: server.NewMCPServer(
			cfg.Name,
			cfg.Version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCP returns the underlying server.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

// Addr is the host:port the SSE transport listens on.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// ServeStdio speaks MCP over in/out until ctx is cancelled or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info(subsystem, "serving MCP over stdio")
	stdio := server.NewStdioServer(s.mcp)
	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio transport failed: %w", err)
	}
	return nil
}

// StartSSE serves MCP over SSE until the listener fails or Shutdown is
// called. It blocks, and returns at once if Shutdown already ran.
func (s *Server) StartSSE() error {
	baseURL := fmt.Sprintf("http://%s", s.Addr())
	sse := server.NewSSEServer(
		s.mcp,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.sse = sse
	s.mu.Unlock()

	logging.Info(subsystem, "serving MCP over SSE on %s/sse", baseURL)
	if err := sse.Start(s.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("sse transport failed: %w", err)
	}
	return nil
}

// Shutdown stops the SSE transport if it is running.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	sse := s.sse
	s.sse = nil
	s.closed = true
	s.mu.Unlock()

	if sse == nil {
		return nil
	}
	logging.Info(subsystem, "stopping SSE transport")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sse.Shutdown(shutdownCtx)
}
