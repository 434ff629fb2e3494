package extract

import (
	"fmt"
	"strings"

	"github.com/undextrois/techdebt-reviewer/src/model"
	"github.com/undextrois/techdebt-reviewer/src/service/markdown"
	"github.com/undextrois/techdebt-reviewer/src/util"
)

// ExtractDebtSummary runs the whole per-document pipeline: section splitting,
// per-section categorization and issue extraction, and debt item assembly.
// Empty or unparseable text yields a summary with zero items, never an error.
func ExtractDebtSummary(markdownText, repoName string) *model.RepoDebtSummary {
	util.Debug("Extracting debt from %s", repoName)

	sections := markdown.SplitSections(markdownText)
	extractor := NewIssueExtractor()
	builder := NewBuilder()

	var items []*model.DebtItem
	for _, section := range sections {
		category := Categorize(section.Title)
		for _, issue := range extractor.Extract(section.Body) {
			items = append(items, builder.Build(category, issue, section.Body))
		}
	}

	util.Debug("Extracted %d debt items from %s", len(items), repoName)

	return model.NewRepoDebtSummary(repoName, generateSummary(items), items)
}

// generateSummary produces the narrative abstract for a repository: item
// count, the top three categories, and a severity-band assessment.
func generateSummary(items []*model.DebtItem) string {
	if len(items) == 0 {
		return "No significant technical debt items identified in this review."
	}

	counts := make(map[model.Category]int)
	totalSeverity := 0
	for _, item := range items {
		counts[item.Category]++
		totalSeverity += item.Severity
	}

	// Rank categories by count; iterating the declaration-ordered list and
	// picking the max each round keeps ties in declaration order.
	var top []model.Category
	seen := make(map[model.Category]bool)
	for len(top) < 3 {
		var best model.Category
		bestCount := 0
		for _, cat := range model.Categories {
			if !seen[cat] && counts[cat] > bestCount {
				best = cat
				bestCount = counts[cat]
			}
		}
		if bestCount == 0 {
			break
		}
		seen[best] = true
		top = append(top, best)
	}

	names := make([]string, len(top))
	for i, cat := range top {
		names[i] = string(cat)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Identified %d technical debt items. ", len(items))
	fmt.Fprintf(&sb, "Primary concerns are %s. ", strings.Join(names, ", "))

	avgSeverity := float64(totalSeverity) / float64(len(items))
	switch {
	case avgSeverity >= 4:
		sb.WriteString("Overall severity is high and requires immediate attention.")
	case avgSeverity >= 3:
		sb.WriteString("Overall severity is moderate and should be addressed soon.")
	default:
		sb.WriteString("Overall severity is manageable with planned improvements.")
	}

	return sb.String()
}
