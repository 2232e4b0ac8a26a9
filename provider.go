package classcomplete

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/classcomplete/internal/cssclass"
)

// ClassSet is a set of CSS class names without the leading dot
type ClassSet = cssclass.ClassSet

// CacheStats tracks stylesheet cache effectiveness
type CacheStats = cssclass.CacheStats

// ImportGraph is the @import structure reachable from one stylesheet
type ImportGraph = cssclass.ImportGraph

// FileSystem is the read-only view of the disk stylesheets are read from
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// Config holds provider configuration
type Config struct {
	Root              string   // Project root; relative paths below are taken from here
	GlobalCSS         []string // Stylesheets whose classes are always suggested (globs allowed)
	ModuleSearchPaths []string // Prefixes tried, in order, for bare import specifiers
	Scanner           string   // Import scanner: "lexical" (default) or "syntax"
	CacheSize         int      // Max cached stylesheets, 0 = unbounded
	RememberMissing   bool     // Never re-probe stylesheets found missing
	MaxDepth          int      // Max @import nesting per request, 0 = unlimited
	MaxFiles          int      // Max stylesheet reads per request, 0 = unlimited
	Logger            *slog.Logger
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	limits := cssclass.DefaultLimits()
	return Config{
		Root:      ".",
		Scanner:   ScannerLexical,
		CacheSize: cssclass.DefaultCacheSize,
		MaxDepth:  limits.MaxDepth,
		MaxFiles:  limits.MaxFiles,
	}
}

// Option customizes a Provider
type Option func(*options)

type options struct {
	scanner ImportScanner
	fs      FileSystem
}

// WithScanner replaces the scanner selected by Config.Scanner
func WithScanner(scanner ImportScanner) Option {
	return func(o *options) { o.scanner = scanner }
}

// WithFileSystem replaces the host filesystem
func WithFileSystem(fsys FileSystem) Option {
	return func(o *options) { o.fs = fsys }
}

// Request is one completion request from an editor
type Request struct {
	LinePrefix   string // Current line up to the cursor
	DocumentPath string // Path of the document being edited
	DocumentText string // Full text of the document
}

// ResolvedImport is one stylesheet import of a document with its candidates
type ResolvedImport struct {
	Specifier  string      `json:"specifier"`
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one possible location of an imported stylesheet
type Candidate struct {
	Path       string `json:"path"`
	Exists     bool   `json:"exists"`
	Classnames int    `json:"classnames"`
}

// WarmedStylesheet reports the classes found while warming one stylesheet
type WarmedStylesheet struct {
	Path       string `json:"path"`
	Classnames int    `json:"classnames"`
}

// Provider assembles classname suggestions for documents.
// It owns its stylesheet cache; independent providers share nothing.
// Safe for concurrent use.
type Provider struct {
	root      string
	globals   []string
	scanner   ImportScanner
	cache     *cssclass.Cache
	extractor *cssclass.Extractor
	resolver  *cssclass.Resolver
	fs        FileSystem
	logger    *slog.Logger
}

// New creates a provider from cfg
func New(cfg Config, opts ...Option) (*Provider, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("%w: cache size must not be negative, got %d", ErrInvalidConfig, cfg.CacheSize)
	}
	if cfg.MaxDepth < 0 || cfg.MaxFiles < 0 {
		return nil, fmt.Errorf("%w: limits must not be negative", ErrInvalidConfig)
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "resolve project root"), "root", cfg.Root)
	}

	scanner := o.scanner
	if scanner == nil {
		if scanner, err = NewImportScanner(cfg.Scanner, logger); err != nil {
			return nil, err
		}
	}

	searchPaths := make([]string, len(cfg.ModuleSearchPaths))
	for i, prefix := range cfg.ModuleSearchPaths {
		searchPaths[i] = toSlash(joinRoot(root, prefix))
	}
	resolver := cssclass.NewResolver(searchPaths)

	fsys := o.fs
	if fsys == nil {
		fsys = cssclass.OSFileSystem{}
	}

	extractor := cssclass.NewExtractor(resolver,
		cssclass.WithFileSystem(fsys),
		cssclass.WithLimits(cssclass.Limits{MaxDepth: cfg.MaxDepth, MaxFiles: cfg.MaxFiles}),
		cssclass.WithLogger(logger),
	)

	cache, err := cssclass.NewCache(extractor, cssclass.CacheOptions{
		Size:            cfg.CacheSize,
		RememberMissing: cfg.RememberMissing,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	globals, stats, err := ExpandStylesheets(root, cfg.GlobalCSS)
	if err != nil {
		return nil, err
	}
	for i := range globals {
		globals[i] = toSlash(globals[i])
	}
	logger.Debug("global stylesheets loaded",
		"count", len(globals),
		"skipped", stats.FilesSkipped)

	return &Provider{
		root:      root,
		globals:   globals,
		scanner:   scanner,
		cache:     cache,
		extractor: extractor,
		resolver:  resolver,
		fs:        fsys,
		logger:    logger,
	}, nil
}

// Root returns the absolute project root
func (p *Provider) Root() string {
	return p.root
}

// GlobalStylesheets returns the expanded global stylesheet paths
func (p *Provider) GlobalStylesheets() []string {
	out := make([]string, len(p.globals))
	copy(out, p.globals)
	return out
}

// Complete answers an editor completion request.
//
// It returns nil when the cursor is not inside a className string. Any
// unexpected failure is reported as an ErrInternal error with no suggestions.
func (p *Provider) Complete(ctx context.Context, req Request) (suggestions []string, err error) {
	defer zerr.Defer(func(perr error) {
		p.logger.Error("completion request failed", "document", req.DocumentPath, "error", perr)
		suggestions = nil
		err = fmt.Errorf("%w: %w", ErrInternal, perr)
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !ShouldTrigger(req.LinePrefix) {
		return nil, nil
	}
	return p.Suggest(req.DocumentPath, req.DocumentText), nil
}

// Suggest returns every classname available in a document without checking
// the trigger condition: global classnames first, sorted, then the classnames
// of each imported stylesheet in import order, each import sorted. A name is
// listed once, at its first position.
func (p *Provider) Suggest(docPath, docText string) []string {
	seen := make(map[string]bool)
	var out []string
	appendNew := func(classes ClassSet) {
		for _, name := range classes.Sorted() {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}

	appendNew(p.Globals())

	dir := path.Dir(toSlash(p.absolute(docPath)))
	for _, spec := range p.scanner.Scan(docText) {
		classes := make(ClassSet)
		for _, candidate := range p.resolver.Resolve(spec, dir) {
			classes.Merge(p.cache.GetOrCompute(candidate))
		}
		appendNew(classes)
	}

	return out
}

// Globals returns the classnames of all global stylesheets.
// Changed global stylesheets are re-read on the next call.
func (p *Provider) Globals() ClassSet {
	classes := make(ClassSet)
	for _, g := range p.globals {
		classes.Merge(p.cache.GetOrCompute(g))
	}
	return classes
}

// Classnames returns the classnames reachable from one stylesheet.
// The set is a copy; changing it does not affect the cache.
func (p *Provider) Classnames(stylesheet string) ClassSet {
	return p.cache.GetOrCompute(toSlash(p.absolute(stylesheet))).Clone()
}

// Imports lists the stylesheet imports of a document and where each could
// be found
func (p *Provider) Imports(docPath, docText string) []ResolvedImport {
	dir := path.Dir(toSlash(p.absolute(docPath)))

	var out []ResolvedImport
	for _, spec := range p.scanner.Scan(docText) {
		imp := ResolvedImport{Specifier: spec, Candidates: []Candidate{}}
		for _, candidate := range p.resolver.Resolve(spec, dir) {
			info, err := p.fs.Stat(candidate)
			exists := err == nil && !info.IsDir()
			c := Candidate{Path: candidate, Exists: exists}
			if exists {
				c.Classnames = len(p.cache.GetOrCompute(candidate))
			}
			imp.Candidates = append(imp.Candidates, c)
		}
		out = append(out, imp)
	}
	return out
}

// Warm parses stylesheets ahead of the first completion request
func (p *Provider) Warm(ctx context.Context, stylesheets []string) ([]WarmedStylesheet, error) {
	out := make([]WarmedStylesheet, len(stylesheets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, s := range stylesheets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			full := toSlash(p.absolute(s))
			out[i] = WarmedStylesheet{
				Path:       full,
				Classnames: len(p.cache.GetOrCompute(full)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("warm stylesheets: %w", err)
	}
	return out, nil
}

// Graph builds the import graph rooted at a stylesheet
func (p *Provider) Graph(stylesheet string) (*ImportGraph, error) {
	return p.extractor.BuildImportGraph(toSlash(p.absolute(stylesheet)))
}

// InvalidateIfStale drops the cached classes of a stylesheet if it or
// anything it imports changed, and reports whether it did
func (p *Provider) InvalidateIfStale(stylesheet string) bool {
	return p.cache.InvalidateIfStale(toSlash(p.absolute(stylesheet)))
}

// Stats returns the stylesheet cache counters
func (p *Provider) Stats() CacheStats {
	return p.cache.Stats()
}

// absolute anchors a relative path at the project root
func (p *Provider) absolute(name string) string {
	return joinRoot(p.root, name)
}

func joinRoot(root, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(root, name)
}

func toSlash(p string) string {
	return filepath.ToSlash(p)
}
