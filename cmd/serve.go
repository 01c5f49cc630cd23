package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"anchovy/internal/mcpserver"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	serveTransport string
	serveHost      string
	servePort      int
)

func newServeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Expose the catalog to MCP clients",
		Long: `Starts an MCP server with tools for color conversion, contrast checks and
catalog lookups, and the token file as the resource anchovy://tokens.json.

The stdio transport (default) is meant to be launched by an MCP client. The
sse transport listens on host:port and serves /sse and /message.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	c.Flags().StringVarP(&serveTransport, "transport", "t", "", "stdio or sse")
	c.Flags().StringVar(&serveHost, "host", "", "Host for the sse transport")
	c.Flags().IntVar(&servePort, "port", 0, "Port for the sse transport")
	return c
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := appConfig.MCP
	if serveTransport != "" {
		cfg.Transport = serveTransport
	}
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv := mcpserver.New(mcpserver.Config{
		Name:    "anchovy",
		Version: rootCmd.Version,
		Host:    cfg.Host,
		Port:    cfg.Port,
	})

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Transport {
	case mcpserver.TransportStdio, "":
		return srv.ServeStdio(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	case mcpserver.TransportSSE:
		g, gctx := errgroup.WithContext(ctx)
		g.Go(srv.StartSSE)
		g.Go(func() error {
			<-gctx.Done()
			return srv.Shutdown(context.Background())
		})
		return g.Wait()
	default:
		return fmt.Errorf("unknown transport %q, must be stdio or sse", cfg.Transport)
	}
}
