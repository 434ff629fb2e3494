package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNumberedBoldItems(t *testing.T) {
	body := "1. **Input Validation**: user input is not validated anywhere.\n" +
		"2. **Hardcoded Secret**: credentials live in the config file\n" +
		"   and are committed to the repository.\n"

	issues := NewIssueExtractor().Extract(body)
	require.Len(t, issues, 2)

	assert.Equal(t, "Input Validation: user input is not validated anywhere.", issues[0])
	// The description spans to the next numbered item or end of text.
	assert.Equal(t, "Hardcoded Secret: credentials live in the config file\n   and are committed to the repository.", issues[1])
}

func TestExtractNumberedBoldStopsAtPlainNumberedItem(t *testing.T) {
	body := "1. **Hardcoded Secret**: found in config.py.\n" +
		"2. plain follow-up item without bold header\n"

	issues := NewIssueExtractor().Extract(body)
	require.Len(t, issues, 1)
	// The plain numbered line bounds the description; it is not swallowed.
	assert.Equal(t, "Hardcoded Secret: found in config.py.", issues[0])
}

func TestExtractNumberedBoldMixedList(t *testing.T) {
	body := "1. **First**: the cache is never invalidated.\n" +
		"2. a plain entry between the bold ones\n" +
		"3. **Second**: retries hammer the upstream service\n" +
		"   across two lines.\n"

	issues := NewIssueExtractor().Extract(body)
	require.Len(t, issues, 2)
	assert.Equal(t, "First: the cache is never invalidated.", issues[0])
	assert.Equal(t, "Second: retries hammer the upstream service\n   across two lines.", issues[1])
}

func TestExtractCascadeShortCircuits(t *testing.T) {
	// When numbered-bold items exist, bullets are ignored entirely.
	body := "- this bullet would otherwise qualify as an extracted issue\n" +
		"1. **Missing Tests**: no unit tests exist for the payment module.\n"

	issues := NewIssueExtractor().Extract(body)
	require.Len(t, issues, 1)
	assert.True(t, strings.HasPrefix(issues[0], "Missing Tests:"))
}

func TestExtractListItems(t *testing.T) {
	body := "- Needs more logging around the payment gateway calls\n" +
		"- ok\n" +
		"* The API client retries are not configurable at all\n"

	issues := NewIssueExtractor().Extract(body)
	require.Len(t, issues, 2)
	assert.Equal(t, "Needs more logging around the payment gateway calls", issues[0])
	assert.Equal(t, "The API client retries are not configurable at all", issues[1])
}

func TestExtractListItemsBulletsBeforeNumbered(t *testing.T) {
	body := "1. The configuration loader silently swallows parse errors\n" +
		"- Database connections are never returned to the pool\n"

	issues := NewIssueExtractor().Extract(body)
	require.Len(t, issues, 2)
	// Bullets collect first even when a numbered item appears earlier.
	assert.Equal(t, "Database connections are never returned to the pool", issues[0])
	assert.Equal(t, "The configuration loader silently swallows parse errors", issues[1])
}

func TestExtractListItemsCleansFormatting(t *testing.T) {
	body := "- The **billing** module calls `chargeCard` twice, see [issue](https://example.com/42)\n"

	issues := NewIssueExtractor().Extract(body)
	require.Len(t, issues, 1)
	assert.Equal(t, "The billing module calls chargeCard twice, see issue", issues[0])
}

func TestExtractParagraphFallback(t *testing.T) {
	long := strings.Repeat("x", 600)
	body := "The error handling in the upload handler swallows failures silently.\n" +
		"\n" +
		"short\n" +
		"\n" +
		long + "\n"

	issues := NewIssueExtractor().Extract(body)
	require.Len(t, issues, 1)
	assert.Equal(t, "The error handling in the upload handler swallows failures silently.", issues[0])
}

func TestExtractStructuredCap(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&sb, "%d. **Issue %d**: description of problem number %d.\n", i, i, i)
	}

	issues := NewIssueExtractor().Extract(sb.String())
	assert.Len(t, issues, 15)
}

func TestExtractParagraphCap(t *testing.T) {
	var paragraphs []string
	for i := 0; i < 12; i++ {
		paragraphs = append(paragraphs, fmt.Sprintf("Paragraph %d is long enough to qualify as an extracted issue.", i))
	}

	issues := NewIssueExtractor().Extract(strings.Join(paragraphs, "\n\n"))
	assert.Len(t, issues, 10)
}

func TestExtractEmptyBody(t *testing.T) {
	assert.Empty(t, NewIssueExtractor().Extract(""))
	assert.Empty(t, NewIssueExtractor().Extract("\n\n\n"))
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold** and *italic*", "bold and italic"},
		{"`code` span", "code span"},
		{"[text](http://example.com)", "text"},
		{"  collapse    whitespace \n runs ", "collapse whitespace runs"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanText(tt.in))
	}
}
