// Package sunaba is the public entry point to the Sunaba front end: a
// pipeline from source text to a typed Program AST, plus the
// stable JSON/YAML dump shapes the CLI and the snapshot tests share.
package sunaba

import (
	"github.com/sunabalang/sunaba/internal/ast"
	"github.com/sunabalang/sunaba/internal/lexer"
	"github.com/sunabalang/sunaba/internal/parser"
	"github.com/sunabalang/sunaba/internal/token"
)

// LineToken and Token re-export the tokeniser's line-grouped token shape
// so callers outside this module never need to import an internal
// package to hold onto Tokenise's result.
type (
	LineToken = token.LineToken
	Token     = token.Token
)

// Program re-exports the parser's AST root.
type Program = ast.Program

// Tokenise converts source into Sunaba's line-token sequence, or returns
// a *ParseError.
func Tokenise(source string) ([]LineToken, error) {
	return lexer.Tokenise(source)
}

// Parse builds the typed Program AST from a tokenised line sequence, or
// returns a *ParseError.
func Parse(lines []LineToken) (*Program, error) {
	return parser.Parse(lines)
}

// Compile runs the full pipeline: Parse(Tokenise(source)).
func Compile(source string) (*Program, error) {
	lines, err := Tokenise(source)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
