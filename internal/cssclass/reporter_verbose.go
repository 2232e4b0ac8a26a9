package cssclass

import (
	"fmt"
	"io"
)

// VerboseReporter prints cache statistics after a command
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintCacheStats outputs the cache counters
func (r *VerboseReporter) PrintCacheStats(stats CacheStats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Stylesheet Cache", r.useColors))
	fmt.Fprintln(r.w, "----------------")

	fmt.Fprintf(r.w, "Entries:   %d\n", stats.Entries)
	fmt.Fprintf(r.w, "Hits:      %d\n", stats.Hits)
	fmt.Fprintf(r.w, "Misses:    %d\n", stats.Misses)
	fmt.Fprintf(r.w, "Re-parses: %d\n", stats.Reparses)

	if total := stats.Hits + stats.Misses + stats.Reparses; total > 0 {
		fmt.Fprintf(r.w, "Hit rate:  %.1f%%\n", float64(stats.Hits)/float64(total)*100)
	}
}
