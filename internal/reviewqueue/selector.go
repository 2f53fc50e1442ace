// Package reviewqueue selects the open pull requests that are waiting for a
// review from a given GitHub account.
package reviewqueue

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	gogithub "github.com/google/go-github/v73/github"
	"golang.org/x/sync/errgroup"

	"github.com/sevigo/review-radar/internal/config"
	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/github"
)

const (
	searchSort  = "updated"
	searchOrder = "desc"
	// searchPageSize matches GitHub's default page size. Small limits still
	// fetch a full page since some hits may be filtered out.
	searchPageSize = 30
)

var _ core.ReviewReporter = (*Selector)(nil)

// Selector finds review candidates for an identity. It holds no state between
// calls, so one Selector may serve concurrent invocations.
type Selector struct {
	client       github.Client
	identity     string
	defaultLimit int
	concurrency  int
	logger       *slog.Logger
}

// NewSelector creates a Selector for the identity configured in cfg.
func NewSelector(cfg *config.Config, client github.Client, logger *slog.Logger) *Selector {
	concurrency := cfg.Review.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Selector{
		client:       client,
		identity:     cfg.GitHub.Username,
		defaultLimit: cfg.Review.DefaultLimit,
		concurrency:  concurrency,
		logger:       logger,
	}
}

// DefaultLimit is the limit used when a caller does not pass one.
func (s *Selector) DefaultLimit() int {
	return s.defaultLimit
}

// Report runs Select for the configured identity and renders the outcome.
// Errors from GitHub are rendered as a failure report instead of being returned.
func (s *Selector) Report(ctx context.Context, limit int) string {
	report, err := s.Select(ctx, s.identity, limit)
	if err != nil {
		s.logger.Error("failed to build review queue", "identity", s.identity, "limit", limit, "error", err)
		return core.FailureReport(err)
	}
	return report.Render()
}

// Select returns up to limit open pull requests on which identity is a requested
// reviewer and has not submitted a review yet, most recently updated first.
//
// The search index can lag behind submitted reviews, so every hit is checked
// against its current review list before it is accepted. Hits are consumed
// lazily and no further GitHub calls are made once limit candidates are accepted.
func (s *Selector) Select(ctx context.Context, identity string, limit int) (*core.ReviewReport, error) {
	report := &core.ReviewReport{}
	if limit <= 0 {
		return report, nil
	}

	query := core.ReviewQuery{Reviewer: identity}.String()
	s.logger.Info("searching for pull requests awaiting review", "query", query, "limit", limit)

	next, stop := iter.Pull2(s.client.SearchIssues(ctx, query, github.SearchOptions{
		Sort:    searchSort,
		Order:   searchOrder,
		PerPage: max(limit, searchPageSize),
	}))
	defer stop()

	for len(report.Candidates) < limit {
		// Each hit yields at most one acceptance, so a batch of the remaining
		// count never resolves a hit a sequential walk would have skipped.
		need := limit - len(report.Candidates)
		batch := make([]*gogithub.Issue, 0, need)
		for len(batch) < need {
			issue, err, ok := next()
			if !ok {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("failed to search pull requests: %w", err)
			}
			batch = append(batch, issue)
		}
		if len(batch) == 0 {
			break
		}

		accepted, err := s.checkBatch(ctx, identity, batch)
		if err != nil {
			return nil, err
		}
		for _, c := range accepted {
			if c != nil {
				report.Candidates = append(report.Candidates, c)
			}
		}

		if len(batch) < need {
			break
		}
	}

	s.logger.Info("review queue built", "identity", identity, "count", report.Len())
	return report, nil
}

// checkBatch resolves every hit of a batch concurrently. The result keeps the
// order of batch; hits that were already reviewed are left nil.
func (s *Selector) checkBatch(ctx context.Context, identity string, batch []*gogithub.Issue) ([]*core.ReviewCandidate, error) {
	results := make([]*core.ReviewCandidate, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, issue := range batch {
		g.Go(func() error {
			candidate, err := s.resolve(gctx, identity, issue)
			if err != nil {
				return err
			}
			results[i] = candidate
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// resolve loads the pull request behind a search hit and returns it as a
// candidate, or nil if identity has already reviewed it.
func (s *Selector) resolve(ctx context.Context, identity string, issue *gogithub.Issue) (*core.ReviewCandidate, error) {
	owner, repo, err := github.RepoFromIssue(issue)
	if err != nil {
		return nil, err
	}
	number := issue.GetNumber()

	pr, err := s.client.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request %s/%s#%d: %w", owner, repo, number, err)
	}

	reviews, err := s.client.ListReviews(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for %s/%s#%d: %w", owner, repo, number, err)
	}

	if hasReviewed(reviews, identity) {
		s.logger.Debug("skipping already reviewed pull request", "repo", owner+"/"+repo, "pr", number)
		return nil, nil
	}

	s.logger.Debug("pull request awaits review", "repo", owner+"/"+repo, "pr", number)
	return core.NewReviewCandidate(owner+"/"+repo, pr), nil
}

// hasReviewed reports whether any review was authored by identity.
// GitHub logins are case-insensitive.
func hasReviewed(reviews []*gogithub.PullRequestReview, identity string) bool {
	for _, review := range reviews {
		if strings.EqualFold(review.GetUser().GetLogin(), identity) {
			return true
		}
	}
	return false
}
