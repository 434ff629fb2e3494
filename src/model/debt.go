package model

// Category represents the category of a technical debt item
type Category string

const (
	CategoryTesting      Category = "testing"
	CategorySecurity     Category = "security"
	CategoryPerformance  Category = "performance"
	CategoryArchitecture Category = "architecture"
	CategoryDocs         Category = "docs"
	CategoryCodeQuality  Category = "code_quality"
	CategoryBugs         Category = "bugs"
	CategoryTooling      Category = "tooling"
	CategoryOther        Category = "other"
)

// Categories lists every category in declaration order. The order is
// load-bearing: keyword matching and tie-breaks evaluate categories in
// this sequence.
var Categories = []Category{
	CategoryTesting,
	CategorySecurity,
	CategoryPerformance,
	CategoryArchitecture,
	CategoryDocs,
	CategoryCodeQuality,
	CategoryBugs,
	CategoryTooling,
	CategoryOther,
}

// DebtItem represents a single extracted technical debt issue
type DebtItem struct {
	ID               string   `json:"id"`
	Category         Category `json:"category"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Severity         int      `json:"severity"` // 1-5
	Urgency          int      `json:"urgency"`  // 1-5
	Effort           int      `json:"effort"`   // 1-5
	PriorityScore    float64  `json:"priority_score"` // 0-100, set by the scorer
	RootCause        string   `json:"root_cause,omitempty"`
	Impact           string   `json:"impact,omitempty"`
	SuggestedActions []string `json:"suggested_actions"`
	FileLocation     string   `json:"file_location,omitempty"`
}

// NewDebtItem creates a debt item with severity, urgency and effort clamped
// to the 1-5 scale. Out-of-range inputs are saturated, not rejected.
func NewDebtItem(id string, category Category, title, description string, severity, urgency, effort int) *DebtItem {
	return &DebtItem{
		ID:          id,
		Category:    category,
		Title:       title,
		Description: description,
		Severity:    clampRating(severity),
		Urgency:     clampRating(urgency),
		Effort:      clampRating(effort),
	}
}

func clampRating(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

// RepoDebtSummary holds all debt items extracted from one repository review
type RepoDebtSummary struct {
	RepoName           string      `json:"repo_name"`
	Summary            string      `json:"summary"`
	DebtItems          []*DebtItem `json:"debt_items"`
	TotalPriorityScore float64     `json:"total_priority_score"`
}

// NewRepoDebtSummary creates a summary and seeds the total priority score
// from the items' current scores. Callers must recompute the total after the
// priority scorer runs; scores are zero at extraction time.
func NewRepoDebtSummary(repoName, summary string, items []*DebtItem) *RepoDebtSummary {
	s := &RepoDebtSummary{
		RepoName:  repoName,
		Summary:   summary,
		DebtItems: items,
	}
	for _, item := range items {
		s.TotalPriorityScore += item.PriorityScore
	}
	return s
}
