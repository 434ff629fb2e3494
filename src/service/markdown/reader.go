package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/undextrois/techdebt-reviewer/src/util"
)

// ReadDocument reads a review document and derives its repository name from
// the filename. Content that is not valid UTF-8 is surfaced as an empty
// string rather than an error; the pipeline treats empty input as producing
// zero debt items.
func ReadDocument(path string) (content, repoName string, err error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return "", stem, fmt.Errorf("reading %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		util.Error("Failed to decode %s as UTF-8", path)
		return "", stem, nil
	}

	util.Debug("Read %d bytes from %s", len(data), filepath.Base(path))
	return string(data), RepoNameFromStem(stem), nil
}

// RepoNameFromStem turns a filename stem like "payment_service_review" into
// a display name like "Payment Service".
func RepoNameFromStem(stem string) string {
	name := strings.ReplaceAll(stem, "_review", "")
	name = strings.ReplaceAll(name, "_", " ")
	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
