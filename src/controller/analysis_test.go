package controller

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undextrois/techdebt-reviewer/src/config"
	"github.com/undextrois/techdebt-reviewer/src/model"
)

const securityReview = `# Code Review

## Security
1. **Hardcoded Secret**: found in config.py because credentials were committed.
2. **Missing Validation**: user input reaches the query builder unchecked.

## Testing
- There is no test coverage at all for the billing module
`

const cleanReview = `# Code Review

## Summary
All good.
`

func writeReview(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestAnalyzeEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeReview(t, dir, "payment_service_review.md", securityReview)
	writeReview(t, dir, "frontend_review.md", cleanReview)

	cfg := config.DefaultConfig()
	ctrl := NewAnalysisController(cfg)

	result, err := ctrl.Analyze(context.Background(), AnalyzeRequest{
		InputDir: dir,
		TopN:     10,
	})
	require.NoError(t, err)

	metrics := result.Metrics
	// The clean review produces no debt items and contributes no summary.
	assert.Equal(t, 1, metrics.TotalRepos)
	assert.Equal(t, 3, metrics.TotalDebtItems)
	assert.Equal(t, 2, metrics.CategoryCounts[model.CategorySecurity])
	assert.Equal(t, 1, metrics.CategoryCounts[model.CategoryTesting])

	// Every item carries a computed priority score and the repo total
	// matches the item sum.
	require.Len(t, result.Summaries, 1)
	summary := result.Summaries[0]
	assert.Equal(t, "Payment Service", summary.RepoName)
	sum := 0.0
	for _, item := range summary.DebtItems {
		assert.Greater(t, item.PriorityScore, 0.0)
		sum += item.PriorityScore
	}
	assert.InDelta(t, sum, summary.TotalPriorityScore, 1e-9)
}

func TestAnalyzeEmptyDirectory(t *testing.T) {
	cfg := config.DefaultConfig()
	ctrl := NewAnalysisController(cfg)

	_, err := ctrl.Analyze(context.Background(), AnalyzeRequest{InputDir: t.TempDir()})
	assert.Error(t, err)
}

func TestAnalyzeSkipsEmptyDocuments(t *testing.T) {
	dir := t.TempDir()
	writeReview(t, dir, "empty_review.md", "")
	writeReview(t, dir, "real_review.md", securityReview)

	cfg := config.DefaultConfig()
	result, err := NewAnalysisController(cfg).Analyze(context.Background(), AnalyzeRequest{
		InputDir: dir,
		TopN:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Metrics.TotalRepos)
}

func TestAnalyzeMinSeverityFilter(t *testing.T) {
	dir := t.TempDir()
	writeReview(t, dir, "mixed_review.md", `## Potential Bugs
- The importer crashes with a critical outage on malformed csv rows

## Code Quality
- Some variable names could be slightly more descriptive and cleaner here
`)

	cfg := config.DefaultConfig()
	cfg.Severity.MinSeverity = 4

	result, err := NewAnalysisController(cfg).Analyze(context.Background(), AnalyzeRequest{
		InputDir: dir,
		TopN:     10,
	})
	require.NoError(t, err)

	// The low-severity naming nit is filtered out before aggregation.
	require.Equal(t, 1, result.Metrics.TotalDebtItems)
	for _, ri := range result.Metrics.TopPriorityItems {
		assert.GreaterOrEqual(t, ri.Item.Severity, 4)
	}
}

func TestAnalyzeCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeReview(t, dir, "a_review.md", securityReview)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAnalysisController(config.DefaultConfig()).Analyze(ctx, AnalyzeRequest{
		InputDir: dir,
		TopN:     10,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeRespectsMaxFiles(t *testing.T) {
	dir := t.TempDir()
	writeReview(t, dir, "a_review.md", securityReview)
	writeReview(t, dir, "b_review.md", securityReview)

	cfg := config.DefaultConfig()
	result, err := NewAnalysisController(cfg).Analyze(context.Background(), AnalyzeRequest{
		InputDir: dir,
		MaxFiles: 1,
		TopN:     10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Metrics.TotalRepos)
}
