package extract

import (
	"strings"

	"github.com/undextrois/techdebt-reviewer/src/model"
)

const maxSuggestedActions = 3

// categoryActions maps each category to its remediation playbook. Categories
// without an entry get the generic fallback actions.
var categoryActions = map[model.Category][]string{
	model.CategoryTesting: {
		"Write comprehensive unit tests for core functionality",
		"Set up CI/CD to enforce minimum test coverage",
	},
	model.CategorySecurity: {
		"Conduct security audit of affected components",
		"Implement security best practices and validation",
		"Add security scanning to CI/CD pipeline",
	},
	model.CategoryPerformance: {
		"Profile and identify performance bottlenecks",
		"Implement caching where appropriate",
		"Optimize database queries and indexes",
	},
	model.CategoryArchitecture: {
		"Create refactoring plan with clear milestones",
		"Introduce abstraction layers to reduce coupling",
		"Document architectural decisions (ADRs)",
	},
	model.CategoryDocs: {
		"Update documentation to match current implementation",
		"Add inline code comments for complex logic",
		"Create/update README with setup instructions",
	},
	model.CategoryCodeQuality: {
		"Run linter and fix code style issues",
		"Refactor large functions into smaller units",
		"Remove dead code and unused dependencies",
	},
	model.CategoryTooling: {
		"Automate manual processes",
		"Update build and deployment scripts",
		"Document tooling setup and usage",
	},
}

var genericActions = []string{
	"Prioritize and schedule time to address this issue",
	"Create detailed tickets for tracking",
}

// SuggestActions returns up to three remediation actions for a category.
// Testing issues that mention integration get an extra integration-test
// action before the cap is applied.
func SuggestActions(category model.Category, issueText string) []string {
	base, ok := categoryActions[category]
	if !ok {
		base = genericActions
	}

	actions := make([]string, len(base))
	copy(actions, base)

	if category == model.CategoryTesting && strings.Contains(strings.ToLower(issueText), "integration") {
		actions = append(actions, "Add integration tests for critical paths")
	}

	if len(actions) > maxSuggestedActions {
		actions = actions[:maxSuggestedActions]
	}
	return actions
}
