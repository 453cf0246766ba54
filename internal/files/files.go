// Package files expands glob patterns into the stylesheet paths the CLI
// operates on.
package files

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Stats tracks pattern expansion results.
type Stats struct {
	Discovered int // files matched by the glob patterns
	Selected   int // files kept after filtering
	Skipped    int // files dropped by .gitignore
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads .gitignore from the current directory once.
// Gracefully degrades if no .gitignore exists.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkip reports whether path is excluded from processing. Gitignore
// rules only apply to relative paths: absolute paths (like /tmp/...) are
// outside the project and never filtered.
func shouldSkip(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// Expand resolves glob patterns to deduplicated file paths, skipping
// directories and gitignored files.
func Expand(patterns []string) ([]string, Stats, error) {
	var selected []string
	seen := make(map[string]bool)
	stats := Stats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.Discovered++

			if shouldSkip(match) {
				stats.Skipped++
				continue
			}
			selected = append(selected, match)
			stats.Selected++
		}
	}

	return selected, stats, nil
}
