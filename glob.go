package classcomplete

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ExpandStats tracks glob expansion statistics
type ExpandStats struct {
	FilesDiscovered int // Files matched by glob patterns
	FilesSkipped    int // Files dropped by .gitignore
}

// ExpandStylesheets turns stylesheet patterns into file paths.
//
// Relative patterns are taken from root. A pattern without glob syntax is
// kept even when the file does not exist yet, so it is picked up once it is
// created. Glob matches are filtered through root's .gitignore, if any.
// Results keep pattern order and contain no duplicates.
func ExpandStylesheets(root string, patterns []string) ([]string, ExpandStats, error) {
	var files []string
	var stats ExpandStats
	seen := make(map[string]bool)
	gi := loadGitIgnore(root)

	for _, pattern := range patterns {
		full := pattern
		if !filepath.IsAbs(full) {
			full = filepath.Join(root, pattern)
		}

		if !hasGlobMeta(pattern) {
			if !seen[full] {
				seen[full] = true
				files = append(files, full)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, stats, fmt.Errorf("%w: bad pattern %q: %w", ErrInvalidConfig, pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++
			seen[match] = true

			if shouldSkipFile(gi, root, match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
		}
	}

	return files, stats, nil
}

// hasGlobMeta reports whether pattern uses any doublestar syntax
func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// loadGitIgnore loads root's .gitignore.
// Gracefully degrades if it doesn't exist.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile reports whether a globbed file is ignored by the project.
// Only files inside root are checked.
func shouldSkipFile(gi *ignore.GitIgnore, root, file string) bool {
	if gi == nil {
		return false
	}
	rel, err := filepath.Rel(root, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	return gi.MatchesPath(filepath.ToSlash(rel))
}
