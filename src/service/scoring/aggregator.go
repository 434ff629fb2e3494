package scoring

import (
	"sort"

	"github.com/undextrois/techdebt-reviewer/src/model"
	"github.com/undextrois/techdebt-reviewer/src/util"
)

// AggregateMetrics merges scored repository summaries into the cross-repo
// rollup. topN bounds the top-priority-items list; zero and negative values
// yield an empty list. Zero repositories or zero items is a valid result
// with all counts and averages at zero.
func AggregateMetrics(summaries []*model.RepoDebtSummary, topN int) *model.AggregatedMetrics {
	util.Info("Aggregating metrics from %d repositories", len(summaries))

	var allItems []model.RepoItem
	for _, summary := range summaries {
		for _, item := range summary.DebtItems {
			allItems = append(allItems, model.RepoItem{RepoName: summary.RepoName, Item: item})
		}
	}

	totalItems := len(allItems)
	if totalItems == 0 {
		util.Warn("No debt items to aggregate")
		return &model.AggregatedMetrics{
			TotalRepos: len(summaries),
		}
	}

	categoryCounts := make(map[model.Category]int)
	severityDistribution := make(map[int]int)
	totalSeverity := 0
	totalPriority := 0.0
	for _, ri := range allItems {
		categoryCounts[ri.Item.Category]++
		severityDistribution[ri.Item.Severity]++
		totalSeverity += ri.Item.Severity
		totalPriority += ri.Item.PriorityScore
	}

	// Stable sorts keep the original flattened order (repo order, then item
	// order) for equal scores.
	topItems := make([]model.RepoItem, len(allItems))
	copy(topItems, allItems)
	sort.SliceStable(topItems, func(i, j int) bool {
		return topItems[i].Item.PriorityScore > topItems[j].Item.PriorityScore
	})
	if topN < 0 {
		topN = 0
	}
	if topN > len(topItems) {
		topN = len(topItems)
	}
	topItems = topItems[:topN]

	reposByPriority := make([]model.RepoScore, len(summaries))
	for i, summary := range summaries {
		reposByPriority[i] = model.RepoScore{
			RepoName:           summary.RepoName,
			TotalPriorityScore: summary.TotalPriorityScore,
		}
	}
	sort.SliceStable(reposByPriority, func(i, j int) bool {
		return reposByPriority[i].TotalPriorityScore > reposByPriority[j].TotalPriorityScore
	})

	avgSeverity := round2(float64(totalSeverity) / float64(totalItems))
	avgPriority := round2(totalPriority / float64(totalItems))

	util.Info("Aggregated %d items from %d repos. Avg severity: %.2f, avg priority: %.2f",
		totalItems, len(summaries), avgSeverity, avgPriority)

	return &model.AggregatedMetrics{
		TotalDebtItems:       totalItems,
		TotalRepos:           len(summaries),
		CategoryCounts:       categoryCounts,
		SeverityDistribution: severityDistribution,
		TopPriorityItems:     topItems,
		ReposByPriority:      reposByPriority,
		AverageSeverity:      avgSeverity,
		AveragePriority:      avgPriority,
	}
}
