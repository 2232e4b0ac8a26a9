package cssclass

import (
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// ImportEdge is one @import relation discovered while walking stylesheets
type ImportEdge struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Specifier string `json:"specifier"`
}

// ImportGraph is the @import structure reachable from one stylesheet.
//
// The graph itself is kept acyclic: an import that would close a cycle is
// recorded in Cycles instead of being added as an edge. Candidates that do
// not exist on disk are recorded in Unresolved.
type ImportGraph struct {
	Root       string
	Cycles     []ImportEdge
	Unresolved []ImportEdge

	g        graph.Graph[string, string]
	children map[string][]ImportEdge // insertion-ordered adjacency for rendering
}

// BuildImportGraph walks the imports of root without touching any cache
func (e *Extractor) BuildImportGraph(root string) (*ImportGraph, error) {
	ig := &ImportGraph{
		Root:     root,
		g:        graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles()),
		children: make(map[string][]ImportEdge),
	}

	if info, err := e.fs.Stat(root); err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrStylesheetNotFound, root)
	}
	if err := ig.g.AddVertex(root); err != nil {
		return nil, fmt.Errorf("add vertex %s: %w", root, err)
	}

	visited := map[string]bool{root: true}
	queue := []string{root}
	reads := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if e.limits.MaxFiles > 0 && reads >= e.limits.MaxFiles {
			e.logger.Warn("import graph truncated", "root", root, "limit", e.limits.MaxFiles)
			break
		}
		reads++

		content, err := e.fs.ReadFile(current)
		if err != nil {
			e.logger.Warn("failed to read stylesheet", "path", current, "error", err)
			continue
		}
		sheet, err := ParseStylesheet(content)
		if err != nil {
			e.logger.Warn("stylesheet parsed partially", "path", current, "error", err)
		}

		dir := path.Dir(strings.ReplaceAll(current, "\\", "/"))
		for _, spec := range sheet.Imports {
			for _, candidate := range e.resolver.Resolve(spec, dir) {
				edge := ImportEdge{From: current, To: candidate, Specifier: spec}

				if info, err := e.fs.Stat(candidate); err != nil || info.IsDir() {
					ig.Unresolved = append(ig.Unresolved, edge)
					continue
				}

				if err := ig.g.AddVertex(candidate); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
					return nil, fmt.Errorf("add vertex %s: %w", candidate, err)
				}

				err := ig.g.AddEdge(current, candidate)
				switch {
				case errors.Is(err, graph.ErrEdgeCreatesCycle):
					ig.Cycles = append(ig.Cycles, edge)
					continue
				case errors.Is(err, graph.ErrEdgeAlreadyExists):
					continue
				case err != nil:
					return nil, fmt.Errorf("add edge %s -> %s: %w", current, candidate, err)
				}
				ig.children[current] = append(ig.children[current], edge)

				if !visited[candidate] {
					visited[candidate] = true
					queue = append(queue, candidate)
				}
			}
		}
	}

	return ig, nil
}

// Children returns the stylesheets imported by p, in import order
func (ig *ImportGraph) Children(p string) []string {
	edges := ig.children[p]
	out := make([]string, len(edges))
	for i, edge := range edges {
		out[i] = edge.To
	}
	return out
}

// Stylesheets returns every stylesheet in the graph
func (ig *ImportGraph) Stylesheets() ([]string, error) {
	adjacency, err := ig.g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("adjacency map: %w", err)
	}
	out := make([]string, 0, len(adjacency))
	for v := range adjacency {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

// Edges returns the acyclic import edges in import order
func (ig *ImportGraph) Edges() []ImportEdge {
	var edges []ImportEdge
	seen := map[string]bool{}
	var walkFrom func(p string)
	walkFrom = func(p string) {
		if seen[p] {
			return
		}
		seen[p] = true
		for _, edge := range ig.children[p] {
			edges = append(edges, edge)
			walkFrom(edge.To)
		}
	}
	walkFrom(ig.Root)
	return edges
}

// WriteDOT renders the graph in Graphviz DOT format
func (ig *ImportGraph) WriteDOT(w io.Writer) error {
	return draw.DOT(ig.g, w)
}
