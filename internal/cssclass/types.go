package cssclass

import (
	"io/fs"
	"os"
	"sort"
	"time"
)

// ClassSet is a set of CSS class names without the leading dot.
// Sets returned by the cache are shared and must be treated as read-only.
type ClassSet map[string]struct{}

// NewClassSet builds a set from the given names
func NewClassSet(names ...string) ClassSet {
	s := make(ClassSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts a class name
func (s ClassSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set
func (s ClassSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Merge adds every name of other to s
func (s ClassSet) Merge(other ClassSet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Clone returns a copy of s that can be modified freely
func (s ClassSet) Clone() ClassSet {
	out := make(ClassSet, len(s))
	for n := range s {
		out[n] = struct{}{}
	}
	return out
}

// Sorted returns the names in lexical order
func (s ClassSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Stylesheet is the result of parsing a single CSS file, before imports are followed
type Stylesheet struct {
	Classes ClassSet // Class selectors defined by the file's own rules
	Imports []string // @import specifiers in source order, quotes stripped
}

// Entry is a cached extraction result for one stylesheet path
type Entry struct {
	Path     string
	Classes  ClassSet             // Own classes plus everything transitively imported
	LastRead time.Time            // Clock time taken before the content was read
	ModTime  time.Time            // Modification time observed before the read
	Deps     map[string]time.Time // Every file consulted (self included); zero time = missing
}

// Limits bound the work done by a single top-level extraction.
// Zero or negative values disable the corresponding limit.
type Limits struct {
	MaxDepth int // Maximum @import nesting depth
	MaxFiles int // Maximum stylesheet reads per request
}

// DefaultLimits returns the limits used when none are configured
func DefaultLimits() Limits {
	return Limits{
		MaxDepth: 32,
		MaxFiles: 1024,
	}
}

// FileSystem is the read-only view of the disk the extractor works on
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// OSFileSystem reads from the host filesystem
type OSFileSystem struct{}

// Stat implements FileSystem
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile implements FileSystem
func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	// #nosec G304 - paths come from the user's own project
	return os.ReadFile(name)
}

// CacheStats tracks cache effectiveness
type CacheStats struct {
	Hits     int64 // Lookups answered from a fresh entry
	Misses   int64 // Lookups with no entry
	Reparses int64 // Lookups that found a stale entry and re-extracted
	Entries  int   // Live entries
}
