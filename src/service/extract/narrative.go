package extract

import (
	"regexp"
	"strings"
)

const narrativeMaxLen = 200

// Capture patterns tried in order; the first match against the section body
// wins. Captures stop at the next period or newline.
var (
	rootCausePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)because\s+(.+?)[.\n]`),
		regexp.MustCompile(`(?i)due to\s+(.+?)[.\n]`),
		regexp.MustCompile(`(?i)caused by\s+(.+?)[.\n]`),
		regexp.MustCompile(`(?i)reason:\s+(.+?)[.\n]`),
	}

	impactPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)impact[s]?:\s+(.+?)[.\n]`),
		regexp.MustCompile(`(?i)consequence[s]?:\s+(.+?)[.\n]`),
		regexp.MustCompile(`(?i)result[s]? in\s+(.+?)[.\n]`),
		regexp.MustCompile(`(?i)leads to\s+(.+?)[.\n]`),
	}
)

// InferRootCause extracts a root cause from the section body, or falls back
// to a generic sentence keyed by the issue text.
func InferRootCause(issueText, sectionBody string) string {
	if cause := firstCapture(rootCausePatterns, strings.ToLower(sectionBody)); cause != "" {
		return cause
	}

	issueLower := strings.ToLower(issueText)
	switch {
	case strings.Contains(issueLower, "no test") || strings.Contains(issueLower, "missing test"):
		return "Tests were not written or maintained alongside code development"
	case strings.Contains(issueLower, "security"):
		return "Security best practices not followed during implementation"
	case strings.Contains(issueLower, "performance"):
		return "Performance not considered in initial implementation"
	case strings.Contains(issueLower, "documentation") || strings.Contains(issueLower, "undocumented"):
		return "Documentation not prioritized or maintained"
	}

	return "Technical shortcuts taken or requirements evolved over time"
}

// InferImpact extracts an impact statement from the section body, or falls
// back to a generic sentence keyed by the issue text.
func InferImpact(issueText, sectionBody string) string {
	if impact := firstCapture(impactPatterns, strings.ToLower(sectionBody)); impact != "" {
		return impact
	}

	issueLower := strings.ToLower(issueText)
	switch {
	case strings.Contains(issueLower, "test"):
		return "Increases risk of bugs in production, makes refactoring difficult"
	case strings.Contains(issueLower, "security"):
		return "Potential security breach or data compromise"
	case strings.Contains(issueLower, "performance"):
		return "Poor user experience, increased infrastructure costs"
	case strings.Contains(issueLower, "documentation"):
		return "Slows down onboarding, increases maintenance difficulty"
	case strings.Contains(issueLower, "architecture"):
		return "Reduces code maintainability and extensibility"
	}

	return "Increases maintenance cost and development velocity"
}

func firstCapture(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return truncate(strings.TrimSpace(m[1]), narrativeMaxLen)
		}
	}
	return ""
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}
