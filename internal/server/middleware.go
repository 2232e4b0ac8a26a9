package server

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// loggingMiddleware records every tool call at debug level, and failed calls
// at warn level
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)
			elapsed := time.Since(start)

			switch {
			case err != nil:
				s.logger.Warn("tool call failed", "tool", req.Params.Name, "duration", elapsed, "error", err)
			case result != nil && result.IsError:
				s.logger.Warn("tool call returned an error", "tool", req.Params.Name, "duration", elapsed)
			default:
				s.logger.Debug("tool call", "tool", req.Params.Name, "duration", elapsed)
			}

			return result, err
		}
	}
}
