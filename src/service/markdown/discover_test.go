package markdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undextrois/techdebt-reviewer/src/config"
	"github.com/undextrois/techdebt-reviewer/src/util"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("# Review\n"), 0644))
	}
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b_review.md", "a_review.md", "notes.txt", "sub/c_review.md")

	files, err := DiscoverFiles(dir, 0, nil)
	require.NoError(t, err)
	require.Len(t, files, 3)

	// Sorted for deterministic order; non-markdown files skipped.
	assert.Equal(t, filepath.Join(dir, "a_review.md"), files[0])
	assert.Equal(t, filepath.Join(dir, "b_review.md"), files[1])
	assert.Equal(t, filepath.Join(dir, "sub", "c_review.md"), files[2])
}

func TestDiscoverFilesMaxFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.md", "b.md", "c.md")

	files, err := DiscoverFiles(dir, 2, nil)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestDiscoverFilesExclusions(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "keep.md", "node_modules/skip.md")

	matcher := util.NewExclusionMatcher(config.ExclusionsConfig{
		FilePatterns: []string{"**/node_modules/**"},
	})

	files, err := DiscoverFiles(dir, 0, matcher)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "keep.md"), files[0])
}

func TestDiscoverFilesMissingDir(t *testing.T) {
	_, err := DiscoverFiles(filepath.Join(t.TempDir(), "missing"), 0, nil)
	assert.Error(t, err)
}
