// Package server exposes classname completion over the Model Context Protocol,
// so several editors or agents can share one warm stylesheet cache.
package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/yacobolo/classcomplete"
)

// Server is the MCP server backed by one completion provider
type Server struct {
	mcpServer *server.MCPServer
	provider  *classcomplete.Provider
	logger    *slog.Logger
}

// New creates an MCP server for provider
func New(provider *classcomplete.Provider, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{provider: provider, logger: logger}

	s.mcpServer = server.NewMCPServer(
		"classcomplete",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.loggingMiddleware()),
	)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: suggestClassnamesTool(), Handler: s.handleSuggestClassnames},
		server.ServerTool{Tool: listClassnamesTool(), Handler: s.handleListClassnames},
		server.ServerTool{Tool: stylesheetImportsTool(), Handler: s.handleStylesheetImports},
	)

	return s
}

// ServeStdio serves requests on stdin/stdout until stdin closes
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
