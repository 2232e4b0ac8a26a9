package cssclass

import (
	"strings"
)

// Resolver turns an import specifier into candidate stylesheet paths.
//
// Relative specifiers ("./", "../") produce exactly one candidate. Anything
// else is a module-style specifier and produces one candidate per module
// search path, in configured order. Paths are "/"-separated strings; no
// filesystem access happens here.
type Resolver struct {
	searchPaths []string
}

// NewResolver creates a resolver over the given module search paths
func NewResolver(searchPaths []string) *Resolver {
	paths := make([]string, len(searchPaths))
	copy(paths, searchPaths)
	return &Resolver{searchPaths: paths}
}

// SearchPaths returns a copy of the configured module search paths
func (r *Resolver) SearchPaths() []string {
	paths := make([]string, len(r.searchPaths))
	copy(paths, r.searchPaths)
	return paths
}

// Resolve returns the candidate paths for specifier imported from a file
// living in fromDir.
//
// Too many "../" segments underflow to the top of the path instead of
// failing; the resulting candidate simply won't exist on disk.
func (r *Resolver) Resolve(specifier, fromDir string) []string {
	spec := strings.ReplaceAll(specifier, "\\", "/")
	dir := strings.ReplaceAll(fromDir, "\\", "/")

	if spec == "" || isRemote(spec) {
		return nil
	}

	switch {
	case strings.HasPrefix(spec, "./"):
		return []string{dir + "/" + strings.TrimPrefix(spec, "./")}

	case strings.HasPrefix(spec, "../"):
		parts := strings.Split(dir, "/")
		for strings.HasPrefix(spec, "../") {
			spec = spec[len("../"):]
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		}
		return []string{strings.Join(parts, "/") + "/" + spec}
	}

	candidates := make([]string, 0, len(r.searchPaths))
	for _, prefix := range r.searchPaths {
		candidates = append(candidates, prefix+"/"+spec)
	}
	return candidates
}

// isRemote reports whether the specifier points off the local disk
func isRemote(spec string) bool {
	lower := strings.ToLower(spec)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//") ||
		strings.HasPrefix(lower, "data:")
}
