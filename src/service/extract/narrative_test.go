package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferRootCauseCaptures(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"because", "The module broke because the schema changed. More text.", "the schema changed"},
		{"due to", "Slow responses due to missing indexes\nnext line", "missing indexes"},
		{"caused by", "Outage caused by connection exhaustion.", "connection exhaustion"},
		{"reason", "Reason: the deadline forced shortcuts.", "the deadline forced shortcuts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferRootCause("irrelevant", tt.body))
		})
	}
}

func TestInferRootCauseFirstPatternWins(t *testing.T) {
	body := "failed because of the cache due to eviction."
	assert.Equal(t, "of the cache due to eviction", InferRootCause("x", body))
}

func TestInferRootCauseTruncates(t *testing.T) {
	body := "It broke because " + strings.Repeat("a", 300) + "."
	cause := InferRootCause("x", body)
	assert.Len(t, cause, 200)
}

func TestInferRootCauseFallbacks(t *testing.T) {
	tests := []struct {
		issue string
		want  string
	}{
		{"there are missing tests for the handler", "Tests were not written or maintained alongside code development"},
		{"security checks absent", "Security best practices not followed during implementation"},
		{"performance degrades with load", "Performance not considered in initial implementation"},
		{"the API is undocumented", "Documentation not prioritized or maintained"},
		{"misc shortcoming", "Technical shortcuts taken or requirements evolved over time"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InferRootCause(tt.issue, "no capture phrases here"))
	}
}

func TestInferImpactCaptures(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"impact", "Impact: users see stale data.", "users see stale data"},
		{"consequences", "Consequences: slower deploys\nand more", "slower deploys"},
		{"results in", "This results in duplicate charges.", "duplicate charges"},
		{"leads to", "Unbounded growth leads to memory exhaustion.", "memory exhaustion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferImpact("irrelevant", tt.body))
		})
	}
}

func TestInferImpactFallbacks(t *testing.T) {
	tests := []struct {
		issue string
		want  string
	}{
		{"untested error paths", "Increases risk of bugs in production, makes refactoring difficult"},
		{"weak security posture", "Potential security breach or data compromise"},
		{"poor performance under load", "Poor user experience, increased infrastructure costs"},
		{"documentation is stale", "Slows down onboarding, increases maintenance difficulty"},
		{"architecture is tangled", "Reduces code maintainability and extensibility"},
		{"generic debt", "Increases maintenance cost and development velocity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InferImpact(tt.issue, "nothing to capture"))
	}
}
