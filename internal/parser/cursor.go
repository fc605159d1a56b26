package parser

import (
	"github.com/sunabalang/sunaba/internal/errs"
	"github.com/sunabalang/sunaba/internal/token"
)

// cursor walks the flat token sequence of a single source line.
// Expressions never span lines, so one cursor is scoped to one
// token.LineToken's Tokens slice (or a sub-slice carved out of it by
// balancedRegion).
type cursor struct {
	tokens []token.Token
	pos    int
	column int // the enclosing line's column, for error reporting
}

func newCursor(tokens []token.Token, column int) *cursor {
	return &cursor{tokens: tokens, column: column}
}

func (c *cursor) atEnd() bool { return c.pos >= len(c.tokens) }

func (c *cursor) peek() (token.Token, bool) {
	if c.atEnd() {
		return token.Token{}, false
	}
	return c.tokens[c.pos], true
}

func (c *cursor) next() (token.Token, bool) {
	t, ok := c.peek()
	if ok {
		c.pos++
	}
	return t, ok
}

// balancedRegion scans forward from the cursor's current position
// (immediately after an already-consumed opening token) for the token
// that closes it, honouring nesting between open and close. It returns
// the tokens strictly between the open and its match and leaves the
// cursor positioned just past the close. openRow locates the opening
// token for the unclosed-region error.
func (c *cursor) balancedRegion(open, close token.Type, openRow int, unclosedMsg string) ([]token.Token, error) {
	depth := 1
	start := c.pos
	for !c.atEnd() {
		t := c.tokens[c.pos]
		switch t.Type {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				content := c.tokens[start:c.pos]
				c.pos++
				return content, nil
			}
		}
		c.pos++
	}
	return nil, errs.NewAt(c.column, openRow, unclosedMsg)
}

// splitOnTopLevelCommas partitions tokens on Separator tokens that sit at
// nesting depth zero relative to tokens' own brackets/parens: only a
// comma outside any nested bracket or parenthesis delimits an
// argument/parameter slot.
func splitOnTopLevelCommas(tokens []token.Token) [][]token.Token {
	var groups [][]token.Token
	depth := 0
	start := 0
	for i, t := range tokens {
		switch t.Type {
		case token.ParentheseStart, token.BracketStart:
			depth++
		case token.ParentheseEnd, token.BracketEnd:
			depth--
		case token.Separator:
			if depth == 0 {
				groups = append(groups, tokens[start:i])
				start = i + 1
			}
		}
	}
	groups = append(groups, tokens[start:])
	return groups
}
