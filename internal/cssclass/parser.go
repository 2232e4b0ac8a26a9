package cssclass

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// parserState maintains context while walking the CSS tokens
type parserState struct {
	sheet     Stylesheet
	depth     int         // open { blocks
	statement []css.Token // tokens since the last {, } or ;
	firstErr  error
}

// ParseStylesheet parses CSS content and returns the class names it defines
// and the @import specifiers it references.
//
// Every statement is buffered until the {, ; or } that ends it. A statement
// ended by { is a rule prelude and its class selectors are collected, which
// covers rules nested inside other rules as well as inside at-rules. A
// statement ended by ; or } is a declaration or a block-less at-rule.
//
// A non-nil error reports the first syntax error; parsing carries on past it,
// so the returned Stylesheet holds every rule that could be recovered.
func ParseStylesheet(content []byte) (Stylesheet, error) {
	state := &parserState{
		sheet: Stylesheet{Classes: make(ClassSet)},
	}

	lexer := css.NewLexer(parse.NewInputBytes(content))

	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			// ErrorToken at EOF is normal
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return state.sheet, fmt.Errorf("read stylesheet: %w", err)
			}
			state.endStatement()
			return state.sheet, state.firstErr

		case css.CommentToken, css.CDOToken, css.CDCToken:
			continue

		case css.WhitespaceToken:
			// Kept inside a statement so `. a` is not mistaken for a class
			if len(state.statement) > 0 {
				state.statement = append(state.statement, css.Token{TokenType: tt, Data: data})
			}

		case css.LeftBraceToken:
			state.beginBlock()

		case css.RightBraceToken:
			state.endStatement()
			if state.depth == 0 {
				state.syntaxError("unexpected }")
				continue
			}
			state.depth--

		case css.SemicolonToken:
			state.endStatement()

		case css.BadStringToken, css.BadURLToken:
			state.syntaxError("unterminated " + tt.String())
			state.statement = append(state.statement, css.Token{TokenType: tt, Data: data})

		default:
			state.statement = append(state.statement, css.Token{TokenType: tt, Data: data})
		}
	}
}

// beginBlock handles the prelude of a rule or at-rule that opens a block
func (s *parserState) beginBlock() {
	if len(s.statement) > 0 && s.statement[0].TokenType != css.AtKeywordToken {
		s.handleSelector(s.statement)
	}
	s.statement = s.statement[:0]
	s.depth++
}

// endStatement handles a statement that has no block: a declaration, which
// is ignored, or an at-rule such as @import
func (s *parserState) endStatement() {
	if len(s.statement) > 0 && s.statement[0].TokenType == css.AtKeywordToken &&
		bytes.EqualFold(s.statement[0].Data, []byte("@import")) {
		s.handleImport(s.statement[1:])
	}
	s.statement = s.statement[:0]
}

func (s *parserState) syntaxError(msg string) {
	if s.firstErr == nil {
		s.firstErr = fmt.Errorf("parse stylesheet: %s", msg)
	}
}

// handleImport records the specifier of an @import rule.
// Only a leading string or url() is an import location; media queries and
// layer()/supports() conditions after it are ignored.
func (s *parserState) handleImport(values []css.Token) {
	tokens := significant(values)
	if len(tokens) == 0 {
		return
	}

	var spec string
	switch first := tokens[0]; first.TokenType {
	case css.StringToken:
		spec = unquote(string(first.Data))
	case css.URLToken:
		spec = urlValue(string(first.Data))
	case css.FunctionToken:
		// url("x.css") may lex as a function with a string argument
		if !strings.EqualFold(string(first.Data), "url(") || len(tokens) < 2 || tokens[1].TokenType != css.StringToken {
			return
		}
		spec = unquote(string(tokens[1].Data))
	default:
		return
	}

	if spec != "" {
		s.sheet.Imports = append(s.sheet.Imports, spec)
	}
}

// handleSelector collects every class selector in a selector prelude,
// including the ones nested in :not(), :is(), :where() and friends
func (s *parserState) handleSelector(values []css.Token) {
	for i := 0; i+1 < len(values); i++ {
		tok := values[i]
		if tok.TokenType != css.DelimToken || len(tok.Data) != 1 || tok.Data[0] != '.' {
			continue
		}
		next := values[i+1]
		if next.TokenType != css.IdentToken {
			continue
		}
		s.sheet.Classes.Add(unescapeIdent(string(next.Data)))
		i++
	}
}

// significant drops whitespace and comments
func significant(values []css.Token) []css.Token {
	out := make([]css.Token, 0, len(values))
	for _, v := range values {
		if v.TokenType == css.WhitespaceToken || v.TokenType == css.CommentToken {
			continue
		}
		out = append(out, v)
	}
	return out
}

// unquote strips one pair of matching single or double quotes
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return strings.Trim(s, `"'`)
}

// urlValue extracts the location from a url(...) token
func urlValue(s string) string {
	if len(s) >= 4 && strings.EqualFold(s[:4], "url(") {
		s = s[4:]
	}
	s = strings.TrimSuffix(s, ")")
	return unquote(strings.TrimSpace(s))
}

// unescapeIdent resolves CSS escapes so `.sm\:flex` yields "sm:flex"
func unescapeIdent(ident string) string {
	if !strings.Contains(ident, `\`) {
		return ident
	}

	var b strings.Builder
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if c != '\\' || i+1 >= len(ident) {
			b.WriteByte(c)
			continue
		}

		// Hex escape: up to 6 hex digits, optionally followed by one space
		j := i + 1
		for j < len(ident) && j-i-1 < 6 && isHex(ident[j]) {
			j++
		}
		if j > i+1 {
			if r, err := strconv.ParseUint(ident[i+1:j], 16, 32); err == nil {
				b.WriteRune(rune(r))
			}
			if j < len(ident) && ident[j] == ' ' {
				j++
			}
			i = j - 1
			continue
		}

		b.WriteByte(ident[i+1])
		i++
	}
	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
