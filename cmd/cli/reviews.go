package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/wire"
)

var (
	reviewsLimit  int
	reviewsPretty bool
)

var errorColor = color.New(color.FgRed)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "List open pull requests that are waiting for your review",
	Long: `List open pull requests on which you are a requested reviewer and have
not submitted a review yet, most recently updated first.

Examples:
  review-radar-cli reviews
  review-radar-cli reviews --limit 5 --pretty`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runReviews,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewsCmd.Flags().IntVarP(&reviewsLimit, "limit", "n", 0, "Maximum number of pull requests to list (default from REVIEW_DEFAULT_LIMIT)")
	reviewsCmd.Flags().BoolVar(&reviewsPretty, "pretty", false, "Render the Markdown output for the terminal")
	rootCmd.AddCommand(reviewsCmd)
}

func runReviews(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer cleanup()

	limit := app.Reviews.DefaultLimit()
	if cmd.Flags().Changed("limit") {
		limit = reviewsLimit
	}

	report, err := app.Reviews.Select(ctx, app.Config().GitHub.Username, limit)
	if err != nil {
		_, _ = errorColor.Fprintln(os.Stderr, core.FailureReport(err))
		return err
	}

	out := report.Render()
	if reviewsPretty {
		out, err = renderMarkdown(out)
		if err != nil {
			return err
		}
	}
	fmt.Print(out)
	return nil
}

func renderMarkdown(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}
