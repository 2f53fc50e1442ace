package toolserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/server"
)

// ServeStdio serves the tool over newline-delimited JSON-RPC on in/out until
// ctx is cancelled or in is closed.
func (ts *ToolServer) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(ts.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(ts.logger.Handler(), slog.LevelError))

	ts.logger.Info("serving MCP over stdio", "tool", ToolName)
	return stdio.Listen(ctx, in, out)
}

// HTTPHandler returns the streamable HTTP transport of the MCP server, to be
// mounted on the application router.
func (ts *ToolServer) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(ts.mcp)
}
