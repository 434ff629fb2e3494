package extract

import (
	"fmt"

	"github.com/undextrois/techdebt-reviewer/src/model"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 200
)

// Builder composes debt items from extracted issues. Identifiers are
// sequential within one document's extraction run, so each pipeline run
// owns its own Builder.
type Builder struct {
	seq int
}

// NewBuilder creates a builder with a fresh identifier sequence
func NewBuilder() *Builder {
	return &Builder{}
}

// Build creates the debt item for one extracted issue
func (b *Builder) Build(category model.Category, issueText, sectionBody string) *model.DebtItem {
	b.seq++

	item := model.NewDebtItem(
		fmt.Sprintf("DEBT-%03d", b.seq),
		category,
		truncate(issueText, maxTitleLen),
		truncate(issueText, maxDescriptionLen),
		ScoreSeverity(issueText, sectionBody),
		ScoreUrgency(issueText, sectionBody),
		ScoreEffort(issueText, sectionBody),
	)
	item.RootCause = InferRootCause(issueText, sectionBody)
	item.Impact = InferImpact(issueText, sectionBody)
	item.SuggestedActions = SuggestActions(category, issueText)

	return item
}
