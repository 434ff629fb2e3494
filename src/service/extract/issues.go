package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Per-section extraction caps. Structured and list extraction keep up to 15
// issues per section, the paragraph fallback keeps up to 10.
const (
	maxStructuredIssues = 15
	maxListIssues       = 15
	maxParagraphIssues  = 10

	// List entries at or below this cleaned length are noise, not issues.
	minListIssueLen = 20

	// Paragraph fallback bounds (exclusive).
	minParagraphLen = 30
	maxParagraphLen = 500
)

var (
	numberedBoldHeader = regexp.MustCompile(`(?m)^\s*\d+\.\s*\*\*([^*]+)\*\*:?`)
	bulletPattern      = regexp.MustCompile(`(?m)^\s*[-*+]\s+(.+)$`)
	numberPattern      = regexp.MustCompile(`(?m)^\s*\d+\.\s+(.+)$`)

	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)
	codePattern   = regexp.MustCompile("`(.+?)`")
	linkPattern   = regexp.MustCompile(`\[(.+?)\]\(.+?\)`)
)

// numberedBoldStrategy matches numbered items with bold headers, e.g.
// "1. **Input Validation**: description". The description runs until the
// next numbered line (bold-headed or plain) or the end of the section.
type numberedBoldStrategy struct{}

func (s *numberedBoldStrategy) Name() string { return "numbered_bold" }

func (s *numberedBoldStrategy) Extract(body string) []string {
	locs := numberedBoldHeader.FindAllStringSubmatchIndex(body, -1)
	if len(locs) == 0 {
		return nil
	}
	numbered := numberPattern.FindAllStringIndex(body, -1)

	var issues []string
	for _, loc := range locs {
		title := strings.TrimSpace(body[loc[2]:loc[3]])
		end := len(body)
		for _, n := range numbered {
			if n[0] > loc[0] {
				end = n[0]
				break
			}
		}
		description := strings.TrimSpace(body[loc[1]:end])
		issues = append(issues, title+": "+description)
	}
	return capIssues(issues, maxStructuredIssues)
}

// listItemStrategy matches plain bullet points and numbered list items.
// Bullets are collected first, then numbered items.
type listItemStrategy struct{}

func (s *listItemStrategy) Name() string { return "list_items" }

func (s *listItemStrategy) Extract(body string) []string {
	var raw []string
	for _, m := range bulletPattern.FindAllStringSubmatch(body, -1) {
		raw = append(raw, m[1])
	}
	for _, m := range numberPattern.FindAllStringSubmatch(body, -1) {
		raw = append(raw, m[1])
	}

	var issues []string
	for _, text := range raw {
		cleaned := CleanText(text)
		if utf8.RuneCountInString(cleaned) > minListIssueLen {
			issues = append(issues, cleaned)
		}
	}
	return capIssues(issues, maxListIssues)
}

// paragraphStrategy is the fallback: blank-line-delimited paragraphs of
// moderate length are treated as one issue each.
type paragraphStrategy struct{}

func (s *paragraphStrategy) Name() string { return "paragraphs" }

func (s *paragraphStrategy) Extract(body string) []string {
	var issues []string
	for _, p := range strings.Split(body, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n := utf8.RuneCountInString(p)
		if n > minParagraphLen && n < maxParagraphLen {
			issues = append(issues, CleanText(p))
		}
	}
	return capIssues(issues, maxParagraphIssues)
}

func capIssues(issues []string, max int) []string {
	if len(issues) > max {
		return issues[:max]
	}
	return issues
}

// CleanText strips inline Markdown formatting (bold, italic, code, links)
// and collapses whitespace runs into single spaces.
func CleanText(text string) string {
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = codePattern.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")
	return strings.Join(strings.Fields(text), " ")
}
