package cssclass

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of stylesheets kept when no size is configured
const DefaultCacheSize = 4096

// unboundedCacheSize stands in for "no limit" since the LRU needs a size
const unboundedCacheSize = 1 << 30

// CacheOptions configure a Cache
type CacheOptions struct {
	// Size is the maximum number of cached stylesheets. 0 means unbounded.
	Size int

	// RememberMissing stops re-probing paths that did not exist. A file
	// created later is then never picked up until Invalidate or
	// InvalidateIfStale is called for it.
	RememberMissing bool

	// Logger for cache activity. If nil, uses slog.Default().
	Logger *slog.Logger
}

// Cache memoizes extraction results per stylesheet path.
//
// An entry stays valid while every file it was built from keeps the
// modification time observed when it was read. Checking that costs one stat
// per file and never reads content.
//
// Thread-safe: fresh hits run concurrently; recomputation is serialized so
// callers racing on the same stale path share one re-parse.
type Cache struct {
	extractor *Extractor
	entries   *lru.Cache[string, *Entry]
	logger    *slog.Logger

	rememberMissing bool
	missingMu       sync.RWMutex
	missing         map[string]struct{}

	computeMu sync.Mutex

	hits     atomic.Int64
	misses   atomic.Int64
	reparses atomic.Int64
}

// NewCache creates a cache in front of extractor
func NewCache(extractor *Extractor, opts CacheOptions) (*Cache, error) {
	if opts.Size < 0 {
		return nil, fmt.Errorf("cache size must not be negative: %d", opts.Size)
	}
	size := opts.Size
	if size == 0 {
		size = unboundedCacheSize
	}

	entries, err := lru.New[string, *Entry](size)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Cache{
		extractor:       extractor,
		entries:         entries,
		logger:          logger,
		rememberMissing: opts.RememberMissing,
		missing:         make(map[string]struct{}),
	}, nil
}

// GetOrCompute returns the class names reachable from the stylesheet at p,
// re-extracting when p or anything it imports changed on disk.
func (c *Cache) GetOrCompute(p string) ClassSet {
	if c.isKnownMissing(p) {
		return ClassSet{}
	}

	if entry, ok := c.entries.Get(p); ok && c.fresh(entry) {
		c.hits.Add(1)
		c.logger.Debug("stylesheet cache hit", "path", p)
		return entry.Classes
	}

	c.computeMu.Lock()
	defer c.computeMu.Unlock()

	w := newWalk(c.extractor.limits, c.lookup)
	return w.visit(p).classes
}

// lookup answers one node of a walk from the cache, extracting on a miss.
// It runs with computeMu held, so the freshness re-check here is what lets
// waiters reuse a result computed while they were blocked.
func (c *Cache) lookup(w *walk, p string) *extraction {
	if c.isKnownMissing(p) {
		return newExtraction()
	}

	entry, ok := c.entries.Get(p)
	if ok && c.fresh(entry) {
		c.hits.Add(1)
		return entry.extraction()
	}
	if ok {
		c.reparses.Add(1)
		c.logger.Debug("stylesheet changed, re-parsing", "path", p)
	} else {
		c.misses.Add(1)
		c.logger.Debug("stylesheet cache miss", "path", p)
	}

	res := c.extractor.extract(w, p)

	switch {
	case res.missing:
		c.entries.Remove(p)
		if c.rememberMissing {
			c.missingMu.Lock()
			c.missing[p] = struct{}{}
			c.missingMu.Unlock()
		}
	case res.complete():
		c.entries.Add(p, &Entry{
			Path:     p,
			Classes:  res.classes,
			LastRead: res.lastRead,
			ModTime:  res.deps[p],
			Deps:     res.deps,
		})
	default:
		// Depends on where this walk started or was cut short; keeping it
		// would serve an incomplete set to the next caller
		c.entries.Remove(p)
	}

	return res
}

// InvalidateIfStale drops the entry for p if any file it depends on changed,
// and reports whether it did. A remembered missing path that now exists is
// forgotten and also counts as invalidated.
func (c *Cache) InvalidateIfStale(p string) bool {
	if c.isKnownMissing(p) {
		if info, err := c.extractor.fs.Stat(p); err == nil && !info.IsDir() {
			c.forgetMissing(p)
			return true
		}
		return false
	}

	entry, ok := c.entries.Peek(p)
	if !ok || c.fresh(entry) {
		return false
	}
	c.entries.Remove(p)
	return true
}

// Invalidate drops any entry or missing marker for p
func (c *Cache) Invalidate(p string) {
	c.entries.Remove(p)
	c.forgetMissing(p)
}

// Purge drops every entry
func (c *Cache) Purge() {
	c.entries.Purge()
	c.missingMu.Lock()
	c.missing = make(map[string]struct{})
	c.missingMu.Unlock()
}

// Len returns the number of cached stylesheets
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Entry returns the cached entry for p without checking freshness
func (c *Cache) Entry(p string) (*Entry, bool) {
	return c.entries.Peek(p)
}

// Stats returns current cache counters
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Reparses: c.reparses.Load(),
		Entries:  c.entries.Len(),
	}
}

// Extractor returns the extractor backing the cache
func (c *Cache) Extractor() *Extractor {
	return c.extractor
}

// fresh reports whether every file the entry was built from is unchanged
func (c *Cache) fresh(entry *Entry) bool {
	for p, seen := range entry.Deps {
		info, err := c.extractor.fs.Stat(p)
		exists := err == nil && !info.IsDir()

		if seen.IsZero() {
			if exists {
				return false
			}
			continue
		}
		if !exists || !info.ModTime().Equal(seen) {
			return false
		}
	}
	return true
}

func (c *Cache) isKnownMissing(p string) bool {
	if !c.rememberMissing {
		return false
	}
	c.missingMu.RLock()
	defer c.missingMu.RUnlock()
	_, ok := c.missing[p]
	return ok
}

func (c *Cache) forgetMissing(p string) {
	c.missingMu.Lock()
	delete(c.missing, p)
	c.missingMu.Unlock()
}

// extraction converts a fresh entry back into a walk result so a parent can
// absorb its classes and dependencies
func (e *Entry) extraction() *extraction {
	res := newExtraction()
	res.classes = e.Classes
	for p, m := range e.Deps {
		res.deps[p] = m
	}
	res.lastRead = e.LastRead
	return res
}
