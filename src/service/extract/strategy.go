package extract

// Strategy extracts issue statements from one section body. Strategies run
// in registration order and the first one to return a non-empty result wins;
// later strategies are never consulted for that section.
type Strategy interface {
	// Name returns the strategy name
	Name() string

	// Extract returns the issue texts found in the section body
	Extract(body string) []string
}

// IssueExtractor runs the extraction strategy cascade over section bodies
type IssueExtractor struct {
	strategies []Strategy
}

// NewIssueExtractor creates an extractor with the standard strategy cascade:
// numbered-bold items, then bullet/numbered list items, then paragraphs.
func NewIssueExtractor() *IssueExtractor {
	return &IssueExtractor{
		strategies: []Strategy{
			&numberedBoldStrategy{},
			&listItemStrategy{},
			&paragraphStrategy{},
		},
	}
}

// Extract returns the issues found by the first strategy that yields any
func (e *IssueExtractor) Extract(body string) []string {
	for _, s := range e.strategies {
		if issues := s.Extract(body); len(issues) > 0 {
			return issues
		}
	}
	return nil
}

// Strategies returns the names of the registered strategies in order
func (e *IssueExtractor) Strategies() []string {
	names := make([]string, len(e.strategies))
	for i, s := range e.strategies {
		names[i] = s.Name()
	}
	return names
}
