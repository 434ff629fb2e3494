package util

import (
	"path/filepath"
	"strings"

	"github.com/undextrois/techdebt-reviewer/src/config"
)

// ExclusionMatcher matches review-document paths against exclusion patterns
type ExclusionMatcher struct {
	filePatterns []string
	files        []string
}

// NewExclusionMatcher creates a new exclusion matcher from config
func NewExclusionMatcher(cfg config.ExclusionsConfig) *ExclusionMatcher {
	return &ExclusionMatcher{
		filePatterns: cfg.FilePatterns,
		files:        cfg.Files,
	}
}

// Matches checks if a document path should be excluded from discovery
func (m *ExclusionMatcher) Matches(filePath string) bool {
	// Check exact file matches
	for _, f := range m.files {
		if filePath == f {
			return true
		}
	}

	// Check file patterns (glob)
	for _, pattern := range m.filePatterns {
		if MatchGlob(pattern, filePath) {
			return true
		}
	}

	return false
}

// MatchGlob matches a path against a glob pattern, including ** patterns
func MatchGlob(pattern, path string) bool {
	if strings.Contains(pattern, "**") {
		return matchDoubleGlob(pattern, path)
	}
	matched, _ := filepath.Match(pattern, path)
	return matched
}

// matchDoubleGlob handles ** patterns in globs. The literal segments between
// ** markers must appear in the path in order; a leading segment anchors at
// the start and a trailing segment at the end.
func matchDoubleGlob(pattern, path string) bool {
	parts := strings.Split(pattern, "**")

	rest := path
	for i, part := range parts {
		if part == "" {
			continue
		}
		switch i {
		case 0:
			if !strings.HasPrefix(rest, part) {
				return false
			}
			rest = rest[len(part):]
		case len(parts) - 1:
			trimmed := strings.TrimPrefix(part, "/")
			if !strings.HasSuffix(rest, trimmed) && !strings.Contains(rest, "/"+trimmed) {
				return false
			}
		default:
			idx := strings.Index(rest, part)
			if idx < 0 {
				return false
			}
			rest = rest[idx+len(part):]
		}
	}

	return true
}
