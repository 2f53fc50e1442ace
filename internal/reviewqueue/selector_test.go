package reviewqueue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"
	"testing"
	"time"

	gogithub "github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/review-radar/internal/config"
	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/github"
	"github.com/sevigo/review-radar/mocks"
)

const aliceQuery = "type:pr state:open review-requested:alice"

func newTestSelector(t *testing.T, concurrency int) (*Selector, *mocks.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	cfg := &config.Config{
		GitHub: config.GitHubConfig{Username: "alice"},
		Review: config.ReviewConfig{DefaultLimit: 10, Concurrency: concurrency},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSelector(cfg, client, logger), client
}

func hit(repo string, number int) *gogithub.Issue {
	return &gogithub.Issue{
		Number:        gogithub.Ptr(number),
		RepositoryURL: gogithub.Ptr("https://api.github.com/repos/" + repo),
	}
}

// hits yields the issues in order and records how many were consumed.
func hits(consumed *int, issues ...*gogithub.Issue) iter.Seq2[*gogithub.Issue, error] {
	return func(yield func(*gogithub.Issue, error) bool) {
		for _, issue := range issues {
			*consumed++
			if !yield(issue, nil) {
				return
			}
		}
	}
}

func failingSearch(err error) iter.Seq2[*gogithub.Issue, error] {
	return func(yield func(*gogithub.Issue, error) bool) {
		yield(nil, err)
	}
}

func pullRequest(number int, title string) *gogithub.PullRequest {
	ts := &gogithub.Timestamp{Time: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return &gogithub.PullRequest{
		Number:       gogithub.Ptr(number),
		Title:        gogithub.Ptr(title),
		HTMLURL:      gogithub.Ptr(fmt.Sprintf("https://github.com/octo/api/pull/%d", number)),
		User:         &gogithub.User{Login: gogithub.Ptr("bob")},
		Body:         gogithub.Ptr("Body of " + title),
		CreatedAt:    ts,
		UpdatedAt:    ts,
		Additions:    gogithub.Ptr(5),
		Deletions:    gogithub.Ptr(1),
		ChangedFiles: gogithub.Ptr(2),
	}
}

func reviewBy(login string) *gogithub.PullRequestReview {
	return &gogithub.PullRequestReview{User: &gogithub.User{Login: gogithub.Ptr(login)}}
}

func expectPR(client *mocks.MockClient, number int, reviews ...*gogithub.PullRequestReview) {
	client.EXPECT().GetPullRequest(gomock.Any(), "octo", "api", number).
		Return(pullRequest(number, fmt.Sprintf("PR %d", number)), nil)
	client.EXPECT().ListReviews(gomock.Any(), "octo", "api", number).
		Return(reviews, nil)
}

func candidateNumbers(report *core.ReviewReport) []int {
	var numbers []int
	for _, c := range report.Candidates {
		numbers = append(numbers, c.Number)
	}
	return numbers
}

func TestSelect_NonPositiveLimitMakesNoCalls(t *testing.T) {
	for _, limit := range []int{0, -1, -100} {
		t.Run(fmt.Sprintf("limit %d", limit), func(t *testing.T) {
			selector, _ := newTestSelector(t, 2)

			report, err := selector.Select(context.Background(), "alice", limit)
			require.NoError(t, err)
			assert.Zero(t, report.Len())
			assert.Equal(t, core.EmptyReportMessage, selector.Report(context.Background(), limit))
		})
	}
}

func TestSelect_StopsAtLimitInSearchOrder(t *testing.T) {
	for _, concurrency := range []int{1, 4} {
		t.Run(fmt.Sprintf("concurrency %d", concurrency), func(t *testing.T) {
			selector, client := newTestSelector(t, concurrency)
			consumed := 0

			client.EXPECT().SearchIssues(gomock.Any(), aliceQuery, github.SearchOptions{
				Sort: "updated", Order: "desc", PerPage: 30,
			}).Return(hits(&consumed, hit("octo/api", 3), hit("octo/api", 1), hit("octo/api", 2)))
			// #2 is never resolved: the limit is reached first.
			expectPR(client, 3)
			expectPR(client, 1, reviewBy("carol"))

			report, err := selector.Select(context.Background(), "alice", 2)
			require.NoError(t, err)
			assert.Equal(t, []int{3, 1}, candidateNumbers(report))
			assert.Equal(t, 2, consumed)

			out := report.Render()
			assert.True(t, strings.HasPrefix(out, "📋 **2 Pull Requests Needing Your Review:**"))
			assert.Contains(t, out, "**1. PR 3**")
			assert.Contains(t, out, "**2. PR 1**")
			assert.Contains(t, out, "   📁 Repository: octo/api\n")
			assert.Contains(t, out, "   📄 Summary: Body of PR 1\n")
		})
	}
}

func TestSelect_SkipsAlreadyReviewed(t *testing.T) {
	selector, client := newTestSelector(t, 4)
	consumed := 0

	client.EXPECT().SearchIssues(gomock.Any(), aliceQuery, gomock.Any()).
		Return(hits(&consumed, hit("octo/api", 10), hit("octo/api", 11), hit("octo/api", 12), hit("octo/api", 13)))
	expectPR(client, 10, reviewBy("Alice"))
	expectPR(client, 11)
	expectPR(client, 12, reviewBy("carol"), reviewBy("alice"))
	expectPR(client, 13)

	report, err := selector.Select(context.Background(), "alice", 2)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 13}, candidateNumbers(report))
	assert.Equal(t, 4, consumed)
}

func TestSelect_AllReviewedYieldsEmptyReport(t *testing.T) {
	selector, client := newTestSelector(t, 2)
	consumed := 0

	client.EXPECT().SearchIssues(gomock.Any(), aliceQuery, gomock.Any()).
		Return(hits(&consumed, hit("octo/api", 7)))
	expectPR(client, 7, reviewBy("alice"))

	assert.Equal(t, core.EmptyReportMessage, selector.Report(context.Background(), 10))
}

func TestSelect_FewerHitsThanLimit(t *testing.T) {
	selector, client := newTestSelector(t, 2)
	consumed := 0

	client.EXPECT().SearchIssues(gomock.Any(), aliceQuery, gomock.Any()).
		Return(hits(&consumed, hit("octo/api", 1), hit("octo/api", 2)))
	expectPR(client, 1)
	expectPR(client, 2)

	report, err := selector.Select(context.Background(), "alice", 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, candidateNumbers(report))
}

func TestSelect_SearchFailure(t *testing.T) {
	selector, client := newTestSelector(t, 2)

	client.EXPECT().SearchIssues(gomock.Any(), aliceQuery, gomock.Any()).
		Return(failingSearch(errors.New("dial tcp 140.82.112.6:443: connection refused"))).
		Times(2)

	_, err := selector.Select(context.Background(), "alice", 5)
	require.Error(t, err)

	out := selector.Report(context.Background(), 5)
	assert.True(t, strings.HasPrefix(out, core.FailurePrefix), out)
	assert.Contains(t, out, "connection refused")
	assert.NotContains(t, out, "📋")
}

func TestSelect_ReviewListFailureAbortsWithoutPartialReport(t *testing.T) {
	selector, client := newTestSelector(t, 1)
	consumed := 0

	client.EXPECT().SearchIssues(gomock.Any(), aliceQuery, gomock.Any()).
		Return(hits(&consumed, hit("octo/api", 1), hit("octo/api", 2)))
	expectPR(client, 1)
	client.EXPECT().GetPullRequest(gomock.Any(), "octo", "api", 2).Return(pullRequest(2, "PR 2"), nil)
	client.EXPECT().ListReviews(gomock.Any(), "octo", "api", 2).Return(nil, errors.New("API rate limit exceeded"))

	out := selector.Report(context.Background(), 2)
	assert.Equal(t, "❌ Error fetching PRs: failed to list reviews for octo/api#2: API rate limit exceeded", out)
}

func TestSelect_UnparseableHitFails(t *testing.T) {
	selector, client := newTestSelector(t, 1)
	consumed := 0

	client.EXPECT().SearchIssues(gomock.Any(), aliceQuery, gomock.Any()).
		Return(hits(&consumed, &gogithub.Issue{Number: gogithub.Ptr(9)}))

	_, err := selector.Select(context.Background(), "alice", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#9")
}

func TestHasReviewed(t *testing.T) {
	assert.False(t, hasReviewed(nil, "alice"))
	assert.False(t, hasReviewed([]*gogithub.PullRequestReview{reviewBy("bob"), {}}, "alice"))
	assert.True(t, hasReviewed([]*gogithub.PullRequestReview{reviewBy("bob"), reviewBy("ALICE")}, "alice"))
}
