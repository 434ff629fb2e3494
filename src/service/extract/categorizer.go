package extract

import (
	"strings"

	"github.com/undextrois/techdebt-reviewer/src/model"
)

// sectionMappings maps well-known review section phrases directly to a
// category. Entries are checked in order against the lower-cased title;
// the first substring match wins.
var sectionMappings = []struct {
	phrase   string
	category model.Category
}{
	{"code quality", model.CategoryCodeQuality},
	{"potential bugs", model.CategoryBugs},
	{"security", model.CategorySecurity},
	{"performance", model.CategoryPerformance},
	{"best practices", model.CategoryCodeQuality},
	{"bugs", model.CategoryBugs},
	{"quality", model.CategoryCodeQuality},
	{"maintainability", model.CategoryCodeQuality},
}

// categoryKeywords holds the keyword vocabulary per category. Declaration
// order is the tie-break order: on equal keyword counts the earlier category
// keeps the match.
var categoryKeywords = []struct {
	category model.Category
	keywords []string
}{
	{model.CategoryTesting, []string{
		"test", "testing", "unit test", "integration test", "no tests",
		"missing tests", "test coverage", "untested", "mock", "stub",
		"test cases", "coverage",
	}},
	{model.CategorySecurity, []string{
		"security", "vulnerability", "vulnerable", "injection", "xss",
		"csrf", "authentication", "authorization", "access control",
		"input validation", "sql injection", "command injection",
		"data exposure", "sensitive data", "cryptography", "hardcoded",
		"secrets", "encryption", "password", "credential", "token",
		"dependencies", "vulnerable libraries",
	}},
	{model.CategoryPerformance, []string{
		"performance", "slow", "bottleneck", "inefficient", "optimization",
		"cache", "memory leak", "n+1", "query", "latency", "timeout",
		"response time", "load time", "algorithm complexity", "o(n)",
		"memory usage", "allocation", "i/o operations", "blocking",
		"concurrency", "database", "indices", "batch operations",
		"resource management", "connection pooling", "buffering",
	}},
	{model.CategoryArchitecture, []string{
		"architecture", "design", "coupling", "cohesion", "monolith",
		"refactor", "structure", "pattern", "dependency", "layering",
		"separation of concerns", "solid", "tight coupling", "modularity",
		"design patterns", "code structure", "organization",
	}},
	{model.CategoryDocs, []string{
		"documentation", "docs", "comment", "readme", "undocumented",
		"no documentation", "missing docs", "api docs", "outdated docs",
		"maintainability documentation",
	}},
	{model.CategoryCodeQuality, []string{
		"code quality", "clean code", "readable", "readability",
		"maintainability", "technical debt", "code smell", "duplication",
		"complexity", "spaghetti", "messy", "inconsistent", "style",
		"linting", "naming", "formatting", "god class", "long method",
		"best practices",
	}},
	{model.CategoryBugs, []string{
		"bug", "bugs", "error", "logic error", "off-by-one", "null safety",
		"null pointer", "exception handling", "resource leak", "edge case",
		"boundary condition", "type safety", "casting", "concurrency issue",
		"race condition", "deadlock", "potential bug",
	}},
	{model.CategoryTooling, []string{
		"tooling", "build", "ci/cd", "pipeline", "deployment", "devops",
		"automation", "script", "configuration", "environment",
	}},
}

// Categorize maps a section title to a debt category. Direct section
// mappings take precedence; otherwise the category whose keywords appear
// most often in the title wins, and titles matching nothing fall back to
// the "other" category.
func Categorize(sectionTitle string) model.Category {
	titleLower := strings.ToLower(sectionTitle)

	for _, m := range sectionMappings {
		if strings.Contains(titleLower, m.phrase) {
			return m.category
		}
	}

	best := model.CategoryOther
	maxMatches := 0
	for _, ck := range categoryKeywords {
		matches := 0
		for _, kw := range ck.keywords {
			if strings.Contains(titleLower, kw) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			best = ck.category
		}
	}

	return best
}
