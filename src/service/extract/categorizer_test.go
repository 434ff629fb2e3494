package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/undextrois/techdebt-reviewer/src/model"
)

func TestCategorizeDirectMappings(t *testing.T) {
	tests := []struct {
		title string
		want  model.Category
	}{
		{"Code Quality", model.CategoryCodeQuality},
		{"Potential Bugs", model.CategoryBugs},
		{"Security", model.CategorySecurity},
		{"Security Concerns", model.CategorySecurity},
		{"Performance", model.CategoryPerformance},
		{"Best Practices", model.CategoryCodeQuality},
		{"Maintainability", model.CategoryCodeQuality},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.title))
		})
	}
}

func TestCategorizeDirectMappingOrder(t *testing.T) {
	// "code quality" is checked before "bugs", so a title containing both
	// phrases resolves to code_quality.
	assert.Equal(t, model.CategoryCodeQuality, Categorize("Code Quality and Bugs"))
}

func TestCategorizeKeywordFallback(t *testing.T) {
	tests := []struct {
		title string
		want  model.Category
	}{
		{"Test Coverage Gaps", model.CategoryTesting},
		{"Missing Documentation", model.CategoryDocs},
		{"Build and Deployment", model.CategoryTooling},
		{"Tight Coupling Everywhere", model.CategoryArchitecture},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.title))
		})
	}
}

func TestCategorizeKeywordTieKeepsEarlierCategory(t *testing.T) {
	// "token" (security) and "cache" (performance) match once each;
	// security is declared first so it keeps the tie.
	assert.Equal(t, model.CategorySecurity, Categorize("Token Cache"))
}

func TestCategorizeNoMatch(t *testing.T) {
	assert.Equal(t, model.CategoryOther, Categorize("Miscellaneous Observations"))
	assert.Equal(t, model.CategoryOther, Categorize("General"))
}
