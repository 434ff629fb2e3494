package markdown

import (
	"regexp"
	"strings"
)

// Section is a heading-delimited span of a review document
type Section struct {
	Title string
	Body  string
}

// headingPattern matches a Markdown heading line: one or more '#' characters,
// whitespace, then the title text.
var headingPattern = regexp.MustCompile(`^#+\s+(.+)$`)

// SplitSections splits raw Markdown into an ordered list of (title, body)
// sections. Text before the first heading is collected under the synthetic
// title "General". A heading immediately followed by another heading emits
// no section; the final accumulated section is always emitted.
func SplitSections(text string) []Section {
	var sections []Section

	currentTitle := "General"
	var currentLines []string

	flush := func() {
		if len(currentLines) > 0 {
			sections = append(sections, Section{
				Title: currentTitle,
				Body:  strings.Join(currentLines, "\n"),
			})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if m := headingPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			flush()
			currentTitle = strings.TrimSpace(m[1])
			currentLines = nil
			continue
		}
		currentLines = append(currentLines, line)
	}

	flush()
	return sections
}
