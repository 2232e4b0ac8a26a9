package classcomplete

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// importSourceQuery captures the module specifier of every import declaration
const importSourceQuery = `(import_statement source: (string) @source)`

// SyntaxScanner parses the document as TSX and reports the source of every
// import declaration that names a .css file. Comments, strings and other
// statements never match, and single quotes and multi-line imports work.
//
// The compiled query is shared by every Scan; parsers and cursors are created
// per call.
type SyntaxScanner struct {
	lang   *sitter.Language
	query  *sitter.Query
	logger *slog.Logger
}

// NewSyntaxScanner creates a tree-sitter backed scanner. If logger is nil,
// uses slog.Default().
func NewSyntaxScanner(logger *slog.Logger) (*SyntaxScanner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	lang := tsx.GetLanguage()

	query, err := sitter.NewQuery([]byte(importSourceQuery), lang)
	if err != nil {
		return nil, fmt.Errorf("compile import query: %w", err)
	}

	return &SyntaxScanner{
		lang:   lang,
		query:  query,
		logger: logger,
	}, nil
}

// Scan implements ImportScanner
func (s *SyntaxScanner) Scan(text string) []string {
	source := []byte(text)

	// Parsers are not safe for concurrent use
	parser := sitter.NewParser()
	parser.SetLanguage(s.lang)

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		s.logger.Warn("failed to parse document", "error", err)
		return nil
	}
	defer tree.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(s.query, tree.RootNode())

	var specs []string
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			spec := trimQuotes(capture.Node.Content(source))
			if strings.Contains(spec, ".css") {
				specs = append(specs, spec)
			}
		}
	}
	return specs
}

// trimQuotes removes the quotes around a string literal
func trimQuotes(s string) string {
	if len(s) >= 2 {
		switch s[0] {
		case '"', '\'', '`':
			if s[len(s)-1] == s[0] {
				return s[1 : len(s)-1]
			}
		}
	}
	return s
}
