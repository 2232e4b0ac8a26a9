package classcomplete

import (
	"fmt"
	"io"

	"github.com/yacobolo/classcomplete/internal/cssclass"
)

// OutputFormat selects how command results are written
type OutputFormat string

const (
	OutputText OutputFormat = "text" // One item per line, for people and shell pipes
	OutputJSON OutputFormat = "json" // Versioned JSON envelope, for tools
)

// DetermineOutputFormat selects the output format from the --format flag
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "text", "":
		return OutputText
	default:
		// Invalid format, fall back to the default
		return OutputText
	}
}

// StylesheetClasses pairs a stylesheet with the classnames reachable from it
type StylesheetClasses struct {
	Path    string
	Classes ClassSet
}

// WriteSuggestions writes the suggestions for one document
func WriteSuggestions(w io.Writer, document string, suggestions []string, format OutputFormat) error {
	if format == OutputJSON {
		return WriteJSON(w, buildSuggestionsJSON(document, suggestions))
	}
	for _, s := range suggestions {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// WriteClasses writes the classnames of several stylesheets
func WriteClasses(w io.Writer, sheets []StylesheetClasses, format OutputFormat, reporter *cssclass.Reporter) error {
	if format == OutputJSON {
		return WriteJSON(w, buildClassesJSON(sheets))
	}
	for _, sheet := range sheets {
		reporter.PrintClasses(sheet.Path, sheet.Classes)
	}
	return nil
}

// WriteImports writes the resolved stylesheet imports of one document
func WriteImports(w io.Writer, document string, imports []ResolvedImport, format OutputFormat) error {
	if format == OutputJSON {
		return WriteJSON(w, buildImportsJSON(document, imports))
	}
	for _, imp := range imports {
		fmt.Fprintf(w, "%s\n", imp.Specifier)
		if len(imp.Candidates) == 0 {
			fmt.Fprintln(w, "  (no candidates)")
		}
		for _, c := range imp.Candidates {
			if c.Exists {
				fmt.Fprintf(w, "  %s (%s)\n", c.Path, pluralize(c.Classnames, "class", "classes"))
			} else {
				fmt.Fprintf(w, "  %s (missing)\n", c.Path)
			}
		}
	}
	return nil
}

// pluralize returns a formatted string with count and singular/plural form
func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
