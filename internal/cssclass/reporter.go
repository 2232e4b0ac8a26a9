package cssclass

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Reporter renders extraction results for terminals
type Reporter struct {
	w         io.Writer
	useColors bool
	base      string // paths are shown relative to this directory when possible
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, useColors bool, base string) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
		base:      base,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// FORCE_COLOR is honoured by most CI systems
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintClasses lists the classes reachable from one stylesheet
func (r *Reporter) PrintClasses(stylesheet string, classes ClassSet) {
	fmt.Fprintf(r.w, "%s %s\n",
		RenderStyle(StyleCyan, r.display(stylesheet), r.useColors),
		RenderStyle(StyleGray, fmt.Sprintf("(%s)", pluralizeCount(len(classes), "class", "classes")), r.useColors))
	for _, name := range classes.Sorted() {
		fmt.Fprintf(r.w, "  %s\n", name)
	}
}

// PrintTree draws the import graph as an indented tree, followed by any
// cycles and unresolved imports
func (r *Reporter) PrintTree(ig *ImportGraph) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, r.display(ig.Root), r.useColors))

	printed := map[string]bool{ig.Root: true}
	r.printChildren(ig, ig.Root, "", printed)

	if len(ig.Cycles) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Cycles:", r.useColors))
		for _, edge := range ig.Cycles {
			fmt.Fprintf(r.w, "  %s -> %s (%q)\n", r.display(edge.From), r.display(edge.To), edge.Specifier)
		}
	}

	if len(ig.Unresolved) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Unresolved:", r.useColors))
		for _, edge := range ig.Unresolved {
			fmt.Fprintf(r.w, "  %s -> %s (%q)\n", r.display(edge.From), r.display(edge.To), edge.Specifier)
		}
	}
}

func (r *Reporter) printChildren(ig *ImportGraph, p, indent string, printed map[string]bool) {
	children := ig.Children(p)
	for i, child := range children {
		branch, next := "├── ", "│   "
		if i == len(children)-1 {
			branch, next = "└── ", "    "
		}

		label := r.display(child)
		if printed[child] {
			fmt.Fprintf(r.w, "%s%s %s\n", RenderStyle(StyleGray, indent+branch, r.useColors), label,
				RenderStyle(StyleGray, "(see above)", r.useColors))
			continue
		}
		printed[child] = true

		fmt.Fprintf(r.w, "%s%s\n", RenderStyle(StyleGray, indent+branch, r.useColors), label)
		r.printChildren(ig, child, indent+next, printed)
	}
}

// display shortens p relative to the reporter's base directory
func (r *Reporter) display(p string) string {
	if r.base == "" {
		return filepath.ToSlash(p)
	}
	rel, err := filepath.Rel(r.base, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
