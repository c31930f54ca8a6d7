package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/hostctl/internal/config"
	"github.com/mj1618/hostctl/internal/platform"
	"github.com/mj1618/hostctl/internal/server"
	"github.com/mj1618/hostctl/internal/version"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing hostctl tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes list_windows,
screenshot, click and open_browser as tools. AI agents can call them directly
without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  hostctl serve
  hostctl serve --transport streamable-http --port 8080
  hostctl serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", server.TransportStdio, "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Window list cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	provider, err := platform.NewProvider()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	defaults, err := defaultCaptureRequest(config.Current())
	if err != nil {
		return err
	}
	cfg := server.Config{
		Transport:  transport,
		Port:       port,
		CacheTTL:   time.Duration(cacheTTLMs) * time.Millisecond,
		Screenshot: defaults,
		Version:    version.Version,
	}
	return server.New(provider, cfg).Serve(cfg)
}
