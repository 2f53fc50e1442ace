// Package core defines the essential interfaces and data structures that form the
// backbone of the application. They are independent of the transport the review
// queue is served over.
package core

import (
	"time"
	"unicode/utf8"

	"github.com/google/go-github/v73/github"
)

const (
	// summaryMaxRunes is how much of a pull request body is kept in a candidate's summary.
	summaryMaxRunes = 200
	// NoDescription replaces the summary of a pull request without a body.
	NoDescription = "No description provided"
)

// ReviewCandidate is a snapshot of an open pull request that is waiting for a
// review from the queried identity. It is taken at query time and never persisted.
type ReviewCandidate struct {
	Title        string
	URL          string
	Repository   string
	Author       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Summary      string
	Number       int
	Draft        bool
	Additions    int
	Deletions    int
	ChangedFiles int
}

// NewReviewCandidate projects a GitHub pull request into the application's
// ReviewCandidate. repoFullName is taken from the search hit, since the pull
// request payload nests it under the base branch.
func NewReviewCandidate(repoFullName string, pr *github.PullRequest) *ReviewCandidate {
	return &ReviewCandidate{
		Title:        pr.GetTitle(),
		URL:          pr.GetHTMLURL(),
		Repository:   repoFullName,
		Author:       pr.GetUser().GetLogin(),
		CreatedAt:    pr.GetCreatedAt().Time,
		UpdatedAt:    pr.GetUpdatedAt().Time,
		Summary:      Summarize(pr.GetBody()),
		Number:       pr.GetNumber(),
		Draft:        pr.GetDraft(),
		Additions:    pr.GetAdditions(),
		Deletions:    pr.GetDeletions(),
		ChangedFiles: pr.GetChangedFiles(),
	}
}

// Summarize shortens a pull request body to its first 200 characters, adding an
// ellipsis when something was cut off. An empty body yields NoDescription.
func Summarize(body string) string {
	if body == "" {
		return NoDescription
	}
	if utf8.RuneCountInString(body) <= summaryMaxRunes {
		return body
	}
	return string([]rune(body)[:summaryMaxRunes]) + "..."
}
