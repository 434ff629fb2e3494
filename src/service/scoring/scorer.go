package scoring

import (
	"math"

	"github.com/undextrois/techdebt-reviewer/src/model"
	"github.com/undextrois/techdebt-reviewer/src/util"
)

// Weights for priority calculation. Effort is inverted so that low-effort
// items rank higher (quick wins).
const (
	severityWeight = 0.5
	urgencyWeight  = 0.3
	effortWeight   = 0.2
)

// CalculatePriorityScore maps severity, urgency and effort (each 1-5) to a
// priority score in [0, 100], rounded to two decimal places.
func CalculatePriorityScore(severity, urgency, effort int) float64 {
	normSeverity := float64(severity) / 5.0
	normUrgency := float64(urgency) / 5.0
	normEffort := float64(6-effort) / 5.0

	score := normSeverity*severityWeight + normUrgency*urgencyWeight + normEffort*effortWeight
	return round2(score * 100)
}

// ScoreDebtItem calculates and sets the priority score for one item
func ScoreDebtItem(item *model.DebtItem) {
	item.PriorityScore = CalculatePriorityScore(item.Severity, item.Urgency, item.Effort)
}

// ScoreRepoSummary scores every item in a repository summary and recomputes
// the summary's total priority score from the item scores.
func ScoreRepoSummary(summary *model.RepoDebtSummary) {
	total := 0.0
	for _, item := range summary.DebtItems {
		ScoreDebtItem(item)
		total += item.PriorityScore
	}
	summary.TotalPriorityScore = total

	util.Debug("Scored %d items for %s, total priority: %.2f",
		len(summary.DebtItems), summary.RepoName, summary.TotalPriorityScore)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
