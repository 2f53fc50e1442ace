package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	// EmptyReportMessage is returned when nothing is waiting for a review.
	EmptyReportMessage = "🎉 No pull requests currently need your review!"
	// FailurePrefix starts every report that describes a failed query.
	FailurePrefix = "❌ Error fetching PRs: "

	timestampLayout = "2006-01-02 15:04 UTC"
)

// ReviewReport is the ordered list of candidates accepted for one query.
type ReviewReport struct {
	Candidates []*ReviewCandidate
}

// Len returns the number of candidates in the report.
func (r *ReviewReport) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Candidates)
}

// Render formats the report as Markdown. Field order and labels are consumed as
// display text by the callers, so they must stay stable.
func (r *ReviewReport) Render() string {
	if r.Len() == 0 {
		return EmptyReportMessage
	}

	var sb strings.Builder
	plural := "s"
	if r.Len() == 1 {
		plural = ""
	}
	fmt.Fprintf(&sb, "📋 **%d Pull Request%s Needing Your Review:**\n\n", r.Len(), plural)

	for i, c := range r.Candidates {
		writeCandidate(&sb, i+1, c)
	}
	return sb.String()
}

// FailureReport renders err as a single-line failure report.
func FailureReport(err error) string {
	return FailurePrefix + err.Error()
}

func writeCandidate(sb *strings.Builder, index int, c *ReviewCandidate) {
	draft := ""
	if c.Draft {
		draft = " 🚧 [DRAFT]"
	}
	fmt.Fprintf(sb, "**%d. %s%s**\n", index, c.Title, draft)
	fmt.Fprintf(sb, "   📁 Repository: %s\n", c.Repository)
	fmt.Fprintf(sb, "   👤 Author: %s\n", c.Author)
	fmt.Fprintf(sb, "   🔗 Link: %s\n", c.URL)
	fmt.Fprintf(sb, "   📅 Created: %s\n", formatTimestamp(c.CreatedAt))
	fmt.Fprintf(sb, "   📝 Updated: %s\n", formatTimestamp(c.UpdatedAt))
	fmt.Fprintf(sb, "   📊 Changes: +%d -%d (%d files)\n", c.Additions, c.Deletions, c.ChangedFiles)
	fmt.Fprintf(sb, "   📄 Summary: %s\n\n", c.Summary)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
