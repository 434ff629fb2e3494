package model

// RepoItem pairs a debt item with the repository it came from. Aggregated
// views hold these as read-only references into the originating summaries.
type RepoItem struct {
	RepoName string    `json:"repo_name"`
	Item     *DebtItem `json:"item"`
}

// RepoScore pairs a repository with its total priority score
type RepoScore struct {
	RepoName           string  `json:"repo_name"`
	TotalPriorityScore float64 `json:"total_priority_score"`
}

// AggregatedMetrics is the cross-repository rollup handed to report renderers
type AggregatedMetrics struct {
	TotalDebtItems       int              `json:"total_debt_items"`
	TotalRepos           int              `json:"total_repos"`
	CategoryCounts       map[Category]int `json:"category_counts"`
	SeverityDistribution map[int]int      `json:"severity_distribution"`
	TopPriorityItems     []RepoItem       `json:"top_priority_items"`
	ReposByPriority      []RepoScore      `json:"repos_by_priority"`
	AverageSeverity      float64          `json:"average_severity"`
	AveragePriority      float64          `json:"average_priority"`
}
