package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/undextrois/techdebt-reviewer/src/config"
)

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.md", "review.md", true},
		{"*.md", "review.txt", false},
		{"**/node_modules/**", "repo/node_modules/pkg/readme.md", true},
		{"**/node_modules/**", "repo/src/readme.md", false},
		{"**/draft.md", "reviews/2024/draft.md", true},
		{"**/draft.md", "reviews/2024/final.md", false},
		{"archive/**", "archive/old_review.md", true},
		{"archive/**", "current/old_review.md", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchGlob(tt.pattern, tt.path),
			"pattern %q against %q", tt.pattern, tt.path)
	}
}

func TestExclusionMatcher(t *testing.T) {
	m := NewExclusionMatcher(config.ExclusionsConfig{
		FilePatterns: []string{"**/vendor/**"},
		Files:        []string{"reviews/skip_me.md"},
	})

	assert.True(t, m.Matches("reviews/skip_me.md"))
	assert.True(t, m.Matches("x/vendor/y/review.md"))
	assert.False(t, m.Matches("reviews/keep_me.md"))
}
