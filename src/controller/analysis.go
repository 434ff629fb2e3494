package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/undextrois/techdebt-reviewer/src/config"
	"github.com/undextrois/techdebt-reviewer/src/model"
	"github.com/undextrois/techdebt-reviewer/src/service/extract"
	"github.com/undextrois/techdebt-reviewer/src/service/markdown"
	"github.com/undextrois/techdebt-reviewer/src/service/scoring"
	"github.com/undextrois/techdebt-reviewer/src/util"
)

// AnalysisController orchestrates the debt analysis process: document
// discovery, per-document extraction and scoring, and aggregation.
type AnalysisController struct {
	cfg *config.Config
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg}
}

// AnalyzeRequest represents a request to analyze a directory of reviews
type AnalyzeRequest struct {
	InputDir string
	MaxFiles int
	TopN     int
}

// AnalysisResult holds the aggregated metrics plus the per-repository
// summaries they were built from.
type AnalysisResult struct {
	Metrics   *model.AggregatedMetrics
	Summaries []*model.RepoDebtSummary
}

// Analyze runs the full analysis pipeline over every review document found
// under the input directory. Documents are processed in parallel; each
// document's extraction run is independent, so results are collected in
// discovery order to keep aggregation deterministic.
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalysisResult, error) {
	startTime := time.Now()
	util.Info("Starting analysis of review documents in %s", req.InputDir)

	exclusions := util.NewExclusionMatcher(c.cfg.Exclusions)
	files, err := markdown.DiscoverFiles(req.InputDir, req.MaxFiles, exclusions)
	if err != nil {
		return nil, fmt.Errorf("discovering review documents: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no markdown files found in %s", req.InputDir)
	}
	util.Info("Found %d review documents", len(files))

	summaries := c.processDocuments(ctx, files)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	metrics := scoring.AggregateMetrics(summaries, req.TopN)

	util.Info("Analysis complete: %d debt items across %d repositories (took %v)",
		metrics.TotalDebtItems, metrics.TotalRepos, time.Since(startTime))

	return &AnalysisResult{Metrics: metrics, Summaries: summaries}, nil
}

// processDocuments runs the per-document pipeline with bounded parallelism.
// The results slice is indexed by file position so the output keeps
// discovery order regardless of completion order.
func (c *AnalysisController) processDocuments(ctx context.Context, files []string) []*model.RepoDebtSummary {
	maxParallel := c.cfg.Concurrency.MaxParallelFiles
	if maxParallel < 1 {
		maxParallel = 1
	}

	results := make([]*model.RepoDebtSummary, len(files))
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			// Workers queued behind the semaphore skip their document
			// once the deadline passes.
			if ctx.Err() != nil {
				return
			}
			results[idx] = c.processDocument(path)
		}(i, file)
	}

	wg.Wait()

	summaries := make([]*model.RepoDebtSummary, 0, len(results))
	for _, s := range results {
		if s != nil {
			summaries = append(summaries, s)
		}
	}
	return summaries
}

// processDocument extracts and scores one document. Unreadable or empty
// documents and documents without debt items yield nil, never an error.
func (c *AnalysisController) processDocument(path string) *model.RepoDebtSummary {
	content, repoName, err := markdown.ReadDocument(path)
	if err != nil {
		util.Error("Error reading %s: %v", path, err)
		return nil
	}
	if content == "" {
		util.Warn("Skipping empty document: %s", path)
		return nil
	}

	summary := extract.ExtractDebtSummary(content, repoName)
	summary.DebtItems = c.applyMinSeverity(summary.DebtItems)
	if len(summary.DebtItems) == 0 {
		util.Warn("No debt items found in %s", path)
		return nil
	}

	scoring.ScoreRepoSummary(summary)
	util.Info("Extracted %d debt items from %s", len(summary.DebtItems), repoName)
	return summary
}

// applyMinSeverity drops items below the configured severity floor
func (c *AnalysisController) applyMinSeverity(items []*model.DebtItem) []*model.DebtItem {
	minSeverity := c.cfg.Severity.MinSeverity
	if minSeverity <= 1 {
		return items
	}

	filtered := make([]*model.DebtItem, 0, len(items))
	for _, item := range items {
		if item.Severity >= minSeverity {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
