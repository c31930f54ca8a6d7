// Package server exposes hostctl operations as Model Context Protocol tools.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/kataras/golog"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/hostctl/internal/capture"
	"github.com/mj1618/hostctl/internal/platform"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "streamable-http"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	// CacheTTL bounds how long window lists are reused between tool calls.
	CacheTTL time.Duration
	// Screenshot supplies defaults for the screenshot tool.
	Screenshot capture.Request
	Version    string
}

// Server wraps the MCP server with the platform provider.
type Server struct {
	provider *platform.Provider
	cache    *WindowCache
	defaults capture.Request
	// GDI and input calls share process-wide state; run one at a time.
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// New creates an MCP server with every hostctl tool registered.
func New(provider *platform.Provider, cfg Config) *Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	s := &Server{
		provider: provider,
		cache:    NewWindowCache(cfg.CacheTTL),
		defaults: cfg.Screenshot,
	}
	s.mcp = mcpserver.NewMCPServer("hostctl", version, mcpserver.WithToolCapabilities(false))
	s.mcp.AddTools(s.tools()...)
	return s
}

// Serve blocks serving the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case TransportStdio, "":
		golog.Infof("serving MCP over stdio")
		return mcpserver.ServeStdio(s.mcp)
	case TransportHTTP:
		addr := fmt.Sprintf(":%d", cfg.Port)
		golog.Infof("serving MCP over streamable HTTP on %s", addr)
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}
