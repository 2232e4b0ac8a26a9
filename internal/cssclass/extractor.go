package cssclass

import (
	"log/slog"
	"path"
	"strings"
	"time"
)

// Extractor reads a stylesheet and returns the class names reachable from it,
// following @import chains through the Resolver.
//
// Missing, unreadable or malformed files never produce an error: they
// contribute whatever could be recovered, possibly nothing.
type Extractor struct {
	fs       FileSystem
	resolver *Resolver
	limits   Limits
	logger   *slog.Logger
	now      func() time.Time
}

// ExtractorOption customizes an Extractor
type ExtractorOption func(*Extractor)

// WithFileSystem replaces the host filesystem
func WithFileSystem(fsys FileSystem) ExtractorOption {
	return func(e *Extractor) { e.fs = fsys }
}

// WithLimits bounds depth and file reads per top-level call
func WithLimits(limits Limits) ExtractorOption {
	return func(e *Extractor) { e.limits = limits }
}

// WithLogger sets the logger used for swallowed failures
func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) { e.logger = logger }
}

// WithClock replaces time.Now when stamping reads
func WithClock(now func() time.Time) ExtractorOption {
	return func(e *Extractor) { e.now = now }
}

// NewExtractor creates an Extractor resolving imports with resolver
func NewExtractor(resolver *Resolver, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		fs:       OSFileSystem{},
		resolver: resolver,
		limits:   DefaultLimits(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.resolver == nil {
		e.resolver = NewResolver(nil)
	}
	return e
}

// Resolver returns the resolver used for @import specifiers
func (e *Extractor) Resolver() *Resolver {
	return e.resolver
}

// Extract returns every class name defined in the stylesheet at p and in
// everything it transitively imports. Nothing is cached.
func (e *Extractor) Extract(p string) ClassSet {
	w := newWalk(e.limits, e.extract)
	return w.visit(p).classes
}

// extraction is the result of extracting one path inside a walk
type extraction struct {
	classes  ClassSet
	deps     map[string]time.Time // files consulted, mtime observed (zero = missing)
	cuts     map[string]struct{}  // ancestors short-circuited by the cycle guard
	partial  bool                 // a limit or read failure cut work short below this node
	missing  bool                 // the path itself does not exist
	lastRead time.Time
}

func newExtraction() *extraction {
	return &extraction{
		classes: make(ClassSet),
		deps:    make(map[string]time.Time),
		cuts:    make(map[string]struct{}),
	}
}

// absorb unions a child result into r
func (r *extraction) absorb(child *extraction) {
	r.classes.Merge(child.classes)
	for p, m := range child.deps {
		r.deps[p] = m
	}
	for p := range child.cuts {
		r.cuts[p] = struct{}{}
	}
	if child.partial {
		r.partial = true
	}
}

// complete reports whether r is independent of where the walk started
func (r *extraction) complete() bool {
	return len(r.cuts) == 0 && !r.partial
}

// walk is the state of one top-level extraction: the stack of paths being
// visited and the read budget
type walk struct {
	visiting map[string]bool
	depth    int
	reads    int
	limits   Limits
	lookup   func(w *walk, p string) *extraction
}

func newWalk(limits Limits, lookup func(w *walk, p string) *extraction) *walk {
	return &walk{
		visiting: make(map[string]bool),
		limits:   limits,
		lookup:   lookup,
	}
}

// visit extracts p unless it is already on the current import chain or the
// depth limit is reached
func (w *walk) visit(p string) *extraction {
	if w.visiting[p] {
		res := newExtraction()
		res.cuts[p] = struct{}{}
		return res
	}
	if w.limits.MaxDepth > 0 && w.depth >= w.limits.MaxDepth {
		res := newExtraction()
		res.partial = true
		return res
	}

	w.visiting[p] = true
	w.depth++
	defer func() {
		delete(w.visiting, p)
		w.depth--
	}()

	return w.lookup(w, p)
}

// extract parses p and follows its imports through w
func (e *Extractor) extract(w *walk, p string) *extraction {
	res := newExtraction()

	info, err := e.fs.Stat(p)
	if err != nil || info.IsDir() {
		res.deps[p] = time.Time{}
		res.missing = true
		return res
	}
	// Stamp before reading: a write racing with the read changes the mtime
	// and is caught by the next freshness check
	res.deps[p] = info.ModTime()

	if w.limits.MaxFiles > 0 && w.reads >= w.limits.MaxFiles {
		e.logger.Warn("stylesheet read limit reached", "path", p, "limit", w.limits.MaxFiles)
		res.partial = true
		return res
	}
	w.reads++

	res.lastRead = e.now()
	content, err := e.fs.ReadFile(p)
	if err != nil {
		e.logger.Warn("failed to read stylesheet", "path", p, "error", err)
		res.partial = true
		return res
	}

	sheet, err := ParseStylesheet(content)
	if err != nil {
		e.logger.Warn("stylesheet parsed partially", "path", p, "error", err)
	}
	res.classes.Merge(sheet.Classes)

	dir := path.Dir(strings.ReplaceAll(p, "\\", "/"))
	for _, spec := range sheet.Imports {
		for _, candidate := range e.resolver.Resolve(spec, dir) {
			res.absorb(w.visit(candidate))
		}
	}

	// A cycle that closes on p is fully accounted for once p is done
	delete(res.cuts, p)

	return res
}
