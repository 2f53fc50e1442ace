// Package toolserver exposes the review queue as a Model Context Protocol tool.
package toolserver

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sevigo/review-radar/internal/config"
	"github.com/sevigo/review-radar/internal/core"
)

const (
	serverName    = "GitHub PR Reviewer"
	serverVersion = "1.0.0"

	// ToolName is the name the review queue tool is registered under.
	ToolName = "get_my_review_prs"
)

// ToolServer owns the MCP server and the review queue tool registered on it.
type ToolServer struct {
	mcp          *server.MCPServer
	reporter     core.ReviewReporter
	defaultLimit int
	logger       *slog.Logger
}

// New creates an MCP server with the review queue tool registered.
func New(cfg *config.Config, reporter core.ReviewReporter, logger *slog.Logger) *ToolServer {
	ts := &ToolServer{
		mcp: server.NewMCPServer(serverName, serverVersion,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		reporter:     reporter,
		defaultLimit: cfg.Review.DefaultLimit,
		logger:       logger,
	}

	tool := mcp.NewTool(ToolName,
		mcp.WithDescription("Fetch GitHub pull requests that need your review. "+
			"Returns a formatted list of open pull requests where you are a requested reviewer "+
			"and have not submitted a review yet, most recently updated first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of PRs to return"),
			mcp.DefaultNumber(float64(ts.defaultLimit)),
		),
	)
	ts.mcp.AddTool(tool, ts.Handle)

	return ts
}

// MCPServer returns the underlying MCP server for a transport to serve.
func (ts *ToolServer) MCPServer() *server.MCPServer {
	return ts.mcp
}

// Handle serves a call of the review queue tool. Failures are part of the text
// result, so a call never ends in a protocol error.
func (ts *ToolServer) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", ts.defaultLimit)
	ts.logger.Info("tool called", "tool", request.Params.Name, "limit", limit)

	return mcp.NewToolResultText(ts.reporter.Report(ctx, limit)), nil
}
