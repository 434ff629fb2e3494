package markdown

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/undextrois/techdebt-reviewer/src/util"
)

// DiscoverFiles finds Markdown review documents under inputDir, recursively.
// Results are sorted for deterministic processing order. maxFiles limits the
// result when positive; excluded paths are skipped.
func DiscoverFiles(inputDir string, maxFiles int, exclusions *util.ExclusionMatcher) ([]string, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, fmt.Errorf("input directory %s: %w", inputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", inputDir)
	}

	var files []string
	err = filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		if exclusions != nil && exclusions.Matches(path) {
			util.Debug("Excluded by pattern: %s", path)
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", inputDir, err)
	}

	sort.Strings(files)

	if maxFiles > 0 && len(files) > maxFiles {
		files = files[:maxFiles]
	}

	util.Debug("Discovered %d markdown files in %s", len(files), inputDir)
	return files, nil
}
