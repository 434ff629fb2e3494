package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/undextrois/techdebt-reviewer/src/model"
	"github.com/undextrois/techdebt-reviewer/src/util"
)

// Generator renders aggregated metrics in various formats
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a new report generator
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate renders the metrics in the specified format
func (g *Generator) Generate(metrics *model.AggregatedMetrics, format string) (string, error) {
	util.Debug("Generating report in %s format (%d items)", format, metrics.TotalDebtItems)
	switch format {
	case "markdown", "md":
		return g.generateMarkdown(metrics), nil
	case "json":
		return g.generateJSON(metrics)
	case "csv":
		return g.generateCSV(metrics)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateMarkdown(metrics *model.AggregatedMetrics) string {
	var sb strings.Builder

	sb.WriteString("# Technical Debt Analysis Report\n\n")
	fmt.Fprintf(&sb, "**Generated:** %s\n\n", g.now().Format("2006-01-02 15:04:05"))
	sb.WriteString("---\n\n")

	// Executive summary
	sb.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&sb, "- **Total Repositories Analyzed:** %d\n", metrics.TotalRepos)
	fmt.Fprintf(&sb, "- **Total Debt Items Identified:** %d\n", metrics.TotalDebtItems)
	fmt.Fprintf(&sb, "- **Average Severity:** %.2f / 5.0\n", metrics.AverageSeverity)
	fmt.Fprintf(&sb, "- **Average Priority Score:** %.2f / 100\n\n", metrics.AveragePriority)

	// Top priority items
	sb.WriteString("## Top Priority Items\n\n")
	sb.WriteString("These items should be addressed first based on severity, urgency, and effort.\n\n")
	for idx, ri := range metrics.TopPriorityItems {
		item := ri.Item
		fmt.Fprintf(&sb, "### %d. %s\n\n", idx+1, item.Title)
		fmt.Fprintf(&sb, "**Repository:** %s  \n", ri.RepoName)
		fmt.Fprintf(&sb, "**Category:** %s  \n", item.Category)
		fmt.Fprintf(&sb, "**Priority Score:** %.2f / 100  \n", item.PriorityScore)
		fmt.Fprintf(&sb, "**Severity:** %s  \n", severityBadge(item.Severity))
		fmt.Fprintf(&sb, "**Urgency:** %d/5  \n", item.Urgency)
		fmt.Fprintf(&sb, "**Effort:** %d/5  \n\n", item.Effort)
		fmt.Fprintf(&sb, "**Description:** %s\n\n", item.Description)

		if item.RootCause != "" {
			fmt.Fprintf(&sb, "**Root Cause:** %s\n\n", item.RootCause)
		}
		if item.Impact != "" {
			fmt.Fprintf(&sb, "**Impact:** %s\n\n", item.Impact)
		}
		if len(item.SuggestedActions) > 0 {
			sb.WriteString("**Suggested Actions:**\n")
			for _, action := range item.SuggestedActions {
				fmt.Fprintf(&sb, "- %s\n", action)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("---\n\n")
	}

	// Category breakdown
	sb.WriteString("## Category Breakdown\n\n")
	if len(metrics.CategoryCounts) == 0 {
		sb.WriteString("No categories found.\n\n")
	} else {
		sb.WriteString("| Category | Count | Percentage |\n")
		sb.WriteString("|----------|-------|------------|\n")
		for _, cc := range sortedCategoryCounts(metrics.CategoryCounts) {
			percentage := float64(cc.count) / float64(metrics.TotalDebtItems) * 100
			fmt.Fprintf(&sb, "| %s | %d | %.1f%% |\n", cc.category, cc.count, percentage)
		}
		sb.WriteString("\n")
	}

	// Repository rankings
	sb.WriteString("## Repository Rankings\n\n")
	sb.WriteString("Repositories ranked by total priority score (higher = more urgent debt).\n\n")
	sb.WriteString("| Rank | Repository | Total Priority Score |\n")
	sb.WriteString("|------|------------|---------------------|\n")
	for rank, rs := range metrics.ReposByPriority {
		fmt.Fprintf(&sb, "| %d | %s | %.2f |\n", rank+1, rs.RepoName, rs.TotalPriorityScore)
	}
	sb.WriteString("\n")

	// Severity distribution
	sb.WriteString("## Severity Distribution\n\n")
	if len(metrics.SeverityDistribution) == 0 {
		sb.WriteString("No severity data available.\n\n")
	} else {
		sb.WriteString("| Severity | Count | Percentage |\n")
		sb.WriteString("|----------|-------|------------|\n")
		for severity := 5; severity >= 1; severity-- {
			count := metrics.SeverityDistribution[severity]
			percentage := 0.0
			if metrics.TotalDebtItems > 0 {
				percentage = float64(count) / float64(metrics.TotalDebtItems) * 100
			}
			fmt.Fprintf(&sb, "| %d - %s | %d | %.1f%% |\n", severity, severityLabel(severity), count, percentage)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("---\n\n")
	sb.WriteString("*Report generated by techdebt-reviewer (rule-based)*\n")

	return sb.String()
}

type jsonItem struct {
	RepoName         string         `json:"repo_name"`
	ID               string         `json:"id"`
	Category         model.Category `json:"category"`
	Title            string         `json:"title"`
	Severity         int            `json:"severity"`
	Urgency          int            `json:"urgency"`
	Effort           int            `json:"effort"`
	PriorityScore    float64        `json:"priority_score"`
	Description      string         `json:"description"`
	RootCause        string         `json:"root_cause"`
	Impact           string         `json:"impact"`
	SuggestedActions []string       `json:"suggested_actions"`
}

type jsonRepoScore struct {
	RepoName           string  `json:"repo_name"`
	TotalPriorityScore float64 `json:"total_priority_score"`
}

type jsonSummary struct {
	TotalDebtItems  int     `json:"total_debt_items"`
	TotalRepos      int     `json:"total_repos"`
	AverageSeverity float64 `json:"average_severity"`
	AveragePriority float64 `json:"average_priority"`
}

type jsonReport struct {
	GeneratedAt          string          `json:"generated_at"`
	Summary              jsonSummary     `json:"summary"`
	CategoryCounts       map[string]int  `json:"category_counts"`
	SeverityDistribution map[string]int  `json:"severity_distribution"`
	TopPriorityItems     []jsonItem      `json:"top_priority_items"`
	ReposByPriority      []jsonRepoScore `json:"repos_by_priority"`
}

func (g *Generator) generateJSON(metrics *model.AggregatedMetrics) (string, error) {
	out := jsonReport{
		GeneratedAt: g.now().Format(time.RFC3339),
		Summary: jsonSummary{
			TotalDebtItems:  metrics.TotalDebtItems,
			TotalRepos:      metrics.TotalRepos,
			AverageSeverity: metrics.AverageSeverity,
			AveragePriority: metrics.AveragePriority,
		},
		CategoryCounts:       make(map[string]int, len(metrics.CategoryCounts)),
		SeverityDistribution: make(map[string]int, len(metrics.SeverityDistribution)),
		TopPriorityItems:     []jsonItem{},
		ReposByPriority:      []jsonRepoScore{},
	}

	for category, count := range metrics.CategoryCounts {
		out.CategoryCounts[string(category)] = count
	}
	for severity, count := range metrics.SeverityDistribution {
		out.SeverityDistribution[strconv.Itoa(severity)] = count
	}
	for _, ri := range metrics.TopPriorityItems {
		item := ri.Item
		out.TopPriorityItems = append(out.TopPriorityItems, jsonItem{
			RepoName:         ri.RepoName,
			ID:               item.ID,
			Category:         item.Category,
			Title:            item.Title,
			Severity:         item.Severity,
			Urgency:          item.Urgency,
			Effort:           item.Effort,
			PriorityScore:    item.PriorityScore,
			Description:      item.Description,
			RootCause:        item.RootCause,
			Impact:           item.Impact,
			SuggestedActions: item.SuggestedActions,
		})
	}
	for _, rs := range metrics.ReposByPriority {
		out.ReposByPriority = append(out.ReposByPriority, jsonRepoScore{
			RepoName:           rs.RepoName,
			TotalPriorityScore: rs.TotalPriorityScore,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// csvHeader is the fixed 11-column header; one row per top-priority item.
var csvHeader = []string{
	"Repo Name", "ID", "Category", "Title", "Severity", "Urgency",
	"Effort", "Priority Score", "Root Cause", "Impact", "Suggested Actions",
}

func (g *Generator) generateCSV(metrics *model.AggregatedMetrics) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for _, ri := range metrics.TopPriorityItems {
		item := ri.Item
		row := []string{
			ri.RepoName,
			item.ID,
			string(item.Category),
			item.Title,
			strconv.Itoa(item.Severity),
			strconv.Itoa(item.Urgency),
			strconv.Itoa(item.Effort),
			strconv.FormatFloat(item.PriorityScore, 'f', -1, 64),
			item.RootCause,
			item.Impact,
			strings.Join(item.SuggestedActions, "; "),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type categoryCount struct {
	category model.Category
	count    int
}

func sortedCategoryCounts(counts map[model.Category]int) []categoryCount {
	out := make([]categoryCount, 0, len(counts))
	// Walk the declaration-ordered category list so equal counts render in
	// a stable order.
	for _, cat := range model.Categories {
		if n, ok := counts[cat]; ok {
			out = append(out, categoryCount{cat, n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].count > out[j].count
	})
	return out
}

func severityBadge(severity int) string {
	return fmt.Sprintf("%s (%d/5)", severityLabel(severity), severity)
}

func severityLabel(severity int) string {
	switch severity {
	case 5:
		return "Critical"
	case 4:
		return "High"
	case 3:
		return "Medium"
	case 2:
		return "Low"
	case 1:
		return "Minimal"
	default:
		return "Unknown"
	}
}
