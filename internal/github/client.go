// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"
)

// maxPerPage is the largest page size the GitHub REST API accepts.
const maxPerPage = 100

// SearchOptions controls ordering and page size of an issue search.
type SearchOptions struct {
	Sort    string
	Order   string
	PerPage int
}

// Client defines the read-only GitHub operations needed to build a review queue.
//
//go:generate mockgen -destination=../../mocks/mock_github_client.go -package=mocks . Client
type Client interface {
	// SearchIssues yields search hits lazily. The next page is requested only
	// once the consumer has ranged past the current one.
	SearchIssues(ctx context.Context, query string, opts SearchOptions) iter.Seq2[*github.Issue, error]
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error)
	ListReviews(ctx context.Context, owner, repo string, number int) ([]*github.PullRequestReview, error)
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewGitHubClient wraps the official go-github client to provide a focused,
// testable interface for application-specific GitHub operations.
func NewGitHubClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// NewPATClient creates a new GitHub client authenticated with a Personal Access Token (PAT).
// A non-empty baseURL targets a GitHub Enterprise Server instead of github.com.
func NewPATClient(ctx context.Context, token, baseURL string, logger *slog.Logger) (Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", baseURL, err)
		}
		logger.Info("using GitHub Enterprise API", "base_url", client.BaseURL.String())
	}
	return &gitHubClient{client: client, logger: logger}, nil
}

// SearchIssues runs an issue search and pages through the results on demand.
// Iteration stops after the first error, which is yielded with a nil issue.
func (g *gitHubClient) SearchIssues(ctx context.Context, query string, opts SearchOptions) iter.Seq2[*github.Issue, error] {
	return func(yield func(*github.Issue, error) bool) {
		perPage := opts.PerPage
		if perPage <= 0 || perPage > maxPerPage {
			perPage = maxPerPage
		}
		searchOpts := &github.SearchOptions{
			Sort:        opts.Sort,
			Order:       opts.Order,
			ListOptions: github.ListOptions{PerPage: perPage},
		}

		for {
			result, resp, err := g.client.Search.Issues(ctx, query, searchOpts)
			if err != nil {
				g.logger.Error("failed to search issues", "query", query, "page", searchOpts.Page, "error", err)
				yield(nil, err)
				return
			}

			for _, issue := range result.Issues {
				if !yield(issue, nil) {
					return
				}
			}

			if resp.NextPage == 0 {
				return
			}
			searchOpts.Page = resp.NextPage
		}
	}
}

// GetPullRequest retrieves a single pull request by its number.
func (g *gitHubClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	pr, _, err := g.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		g.logger.Error("failed to get pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
		return nil, err
	}
	return pr, nil
}

// ListReviews retrieves every review submitted on a pull request.
// It follows pagination so that no review on record is missed.
func (g *gitHubClient) ListReviews(ctx context.Context, owner, repo string, number int) ([]*github.PullRequestReview, error) {
	var allReviews []*github.PullRequestReview
	opts := &github.ListOptions{PerPage: maxPerPage}

	for {
		reviews, resp, err := g.client.PullRequests.ListReviews(ctx, owner, repo, number, opts)
		if err != nil {
			g.logger.Error("failed to list reviews for pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
			return nil, err
		}
		allReviews = append(allReviews, reviews...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allReviews, nil
}
