package extract

import "strings"

// Keyword signal lists for the severity, urgency and effort heuristics.
// Counts tally how many distinct keywords appear in the text, not total
// occurrences.
var (
	severityHighKeywords = []string{
		"critical", "severe", "major", "serious", "urgent", "blocker",
		"production", "outage", "crash", "data loss", "security breach",
	}

	severityMediumKeywords = []string{
		"important", "significant", "notable", "concerning", "issue",
		"problem", "bug", "error",
	}

	urgencyKeywords = []string{
		"urgent", "immediate", "asap", "now", "quickly", "soon",
		"before release", "must fix", "should fix",
	}

	effortHighKeywords = []string{
		"large", "big", "massive", "extensive", "major refactor",
		"rewrite", "redesign", "significant effort", "time-consuming",
	}

	effortLowKeywords = []string{
		"small", "minor", "quick", "simple", "easy", "trivial",
		"straightforward", "quick fix",
	}
)

// ScoreSeverity rates severity 1-5 from keyword signals in the issue text
// and its surrounding section body.
func ScoreSeverity(issueText, sectionBody string) int {
	text := combined(issueText, sectionBody)

	switch high := countPresent(text, severityHighKeywords); {
	case high >= 2:
		return 5
	case high == 1:
		return 4
	}

	switch medium := countPresent(text, severityMediumKeywords); {
	case medium >= 2:
		return 3
	case medium == 1:
		return 2
	}

	return 2
}

// ScoreUrgency rates urgency 1-5 from keyword signals
func ScoreUrgency(issueText, sectionBody string) int {
	text := combined(issueText, sectionBody)

	switch urgency := countPresent(text, urgencyKeywords); {
	case urgency >= 2:
		return 5
	case urgency == 1:
		return 4
	}

	if strings.Contains(text, "should") || strings.Contains(text, "needs") {
		return 3
	}
	if strings.Contains(text, "could") || strings.Contains(text, "consider") {
		return 2
	}

	return 2
}

// ScoreEffort rates remediation effort 1-5 from keyword signals
func ScoreEffort(issueText, sectionBody string) int {
	text := combined(issueText, sectionBody)

	if countPresent(text, effortHighKeywords) >= 1 {
		return 5
	}
	if countPresent(text, effortLowKeywords) >= 1 {
		return 2
	}

	for _, word := range []string{"refactor", "redesign", "rewrite"} {
		if strings.Contains(text, word) {
			return 4
		}
	}

	return 3
}

func combined(issueText, sectionBody string) string {
	return strings.ToLower(issueText) + " " + strings.ToLower(sectionBody)
}

// countPresent counts how many of the keywords occur in the text at least
// once. Each keyword contributes at most one to the count.
func countPresent(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}
