package core

import (
	"context"
)

// ReviewReporter produces the rendered review queue for the configured identity.
// It is the contract every transport (MCP, HTTP, CLI) is served through.
type ReviewReporter interface {
	// Report returns the rendered queue with at most limit entries. Failures are
	// reported in the returned text and never as an error, so callers always
	// have something to show.
	Report(ctx context.Context, limit int) string
}
