// Package glob expands doublestar patterns over an afero filesystem.
package glob

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Value is a set of include patterns minus a set of exclude patterns.
type Value struct {
	Patterns []string
	Excludes []string
}

// Apply returns the sorted, de-duplicated regular files of fsys matching g.
// An include pattern that matches nothing is an error.
func Apply(fsys afero.Fs, g Value) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range g.Patterns {
		matches, err := match(fsys, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] || excluded(m, g.Excludes) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	slices.Sort(files)
	return files, nil
}

// match globs pattern from its literal prefix, so absolute patterns work on
// an io/fs view of fsys.
func match(fsys afero.Fs, pattern string) ([]string, error) {
	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
	root := fsys
	if base != "." {
		root = afero.NewBasePathFs(fsys, base)
	}
	matches, err := doublestar.Glob(afero.NewIOFS(root), rest, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}
	if base != "." {
		for i, m := range matches {
			matches[i] = filepath.Join(base, m)
		}
	}
	return matches, nil
}

func excluded(filename string, excludes []string) bool {
	for _, pattern := range excludes {
		if ok, _ := doublestar.PathMatch(pattern, filename); ok {
			return true
		}
	}
	return false
}
