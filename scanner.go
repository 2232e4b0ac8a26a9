package classcomplete

import (
	"fmt"
	"log/slog"
	"strings"
)

// ImportScanner finds the stylesheet import specifiers in a source document,
// in document order. Duplicates are kept.
type ImportScanner interface {
	Scan(text string) []string
}

// Scanner names accepted by NewImportScanner
const (
	ScannerLexical = "lexical"
	ScannerSyntax  = "syntax"
)

// NewImportScanner returns the scanner registered under name.
// An empty name selects the lexical scanner. Scanners that can fail on a
// document report it through logger.
func NewImportScanner(name string, logger *slog.Logger) (ImportScanner, error) {
	switch name {
	case "", ScannerLexical:
		return LexicalScanner{}, nil
	case ScannerSyntax:
		return NewSyntaxScanner(logger)
	default:
		return nil, fmt.Errorf("%w: unknown scanner %q (want %s or %s)", ErrInvalidConfig, name, ScannerLexical, ScannerSyntax)
	}
}

// LexicalScanner treats every line mentioning both "import" and ".css" as a
// stylesheet import and takes the text between the line's first and last
// double quote as its specifier.
//
// It is a text heuristic: commented-out imports still match, imports split
// over several lines and single-quoted specifiers do not.
type LexicalScanner struct{}

// Scan implements ImportScanner
func (LexicalScanner) Scan(text string) []string {
	var specs []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "import") || !strings.Contains(line, ".css") {
			continue
		}

		first := strings.Index(line, `"`)
		last := strings.LastIndex(line, `"`)
		if first < 0 || last <= first {
			continue
		}
		specs = append(specs, line[first+1:last])
	}
	return specs
}
