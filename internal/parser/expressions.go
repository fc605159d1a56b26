package parser

import (
	"fmt"
	"math"
	"math/big"

	"github.com/sunabalang/sunaba/internal/ast"
	"github.com/sunabalang/sunaba/internal/errs"
	"github.com/sunabalang/sunaba/internal/token"
)

var (
	minInt32 = big.NewInt(math.MinInt32)
	maxInt32 = big.NewInt(math.MaxInt32)
)

// parseTokens parses a full expression out of tokens (a single line's
// tokens, or a sub-slice carved out by balancedRegion) and requires every
// token to be consumed.
func parseTokens(tokens []token.Token, column int) (ast.Expression, error) {
	return parseExpression(newCursor(tokens, column))
}

// parseExpression parses an operand followed by zero or more (operator,
// operand) pairs, combined directly into left-associative normal form as
// they're read. All binary operators sit at one precedence level, so
// there's no climbing to do: building the chain this way is equivalent,
// for every unparenthesised run of operators, to a right-recursive parse
// followed by a left-rotation post-pass (see rotate.go for that
// algorithm applied in isolation) — but it never risks a generic
// rotation reaching into an explicitly parenthesised right operand and
// renormalising it, which would silently corrupt non-commutative
// expressions like `1 - (2 - 3)`.
func parseExpression(c *cursor) (ast.Expression, error) {
	left, err := parseOperand(c, "")
	if err != nil {
		return nil, err
	}
	for {
		if c.atEnd() {
			return left, nil
		}
		tok, _ := c.peek()
		if tok.Type != token.Operator {
			return nil, errs.NewAt(c.column, tok.Row, "Expected an operator")
		}
		c.next()
		right, err := parseOperand(c, "")
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Operator: tok.Value, Left: left, Right: right}
	}
}

// parseOperand consumes one operand, optionally preceded by a run of
// unary prefix operators. unaryOp is the pending prefix operator, if
// any: a second prefix operator encountered while one is already
// pending simply replaces it rather than stacking.
func parseOperand(c *cursor, unaryOp string) (ast.Expression, error) {
	tok, ok := c.peek()
	if !ok {
		return nil, errs.New(c.column, "Expected an expression")
	}

	switch tok.Type {
	case token.Identifier:
		c.next()
		id := &ast.Identifier{Value: tok.Value}
		expr, err := applyMemberOrCall(c, id)
		if err != nil {
			return nil, err
		}
		return wrapUnary(unaryOp, expr), nil

	case token.Memory:
		c.next()
		next, ok := c.peek()
		if !ok || next.Type != token.BracketStart {
			return nil, errs.NewAt(c.column, tok.Row, "'memory' must be followed by '['")
		}
		c.next()
		prop, err := parseBracketProperty(c, next.Row)
		if err != nil {
			return nil, err
		}
		member := &ast.Member{Target: &ast.Identifier{Value: "memory"}, Property: prop}
		return wrapUnary(unaryOp, member), nil

	case token.NumericLiteral:
		c.next()
		value, err := parseIntLiteral(tok.Value, unaryOp == "-", c.column, tok.Row)
		if err != nil {
			return nil, err
		}
		return &ast.NumericLiteral{Value: value}, nil

	case token.Operator:
		if tok.Value != "+" && tok.Value != "-" {
			return nil, errs.NewAt(c.column, tok.Row, fmt.Sprintf("Unexpected operator %q in expression", tok.Value))
		}
		c.next()
		return parseOperand(c, tok.Value)

	case token.ParentheseStart:
		c.next()
		content, err := c.balancedRegion(token.ParentheseStart, token.ParentheseEnd, tok.Row, "Unclosed '('")
		if err != nil {
			return nil, err
		}
		if len(content) == 0 {
			return nil, errs.NewAt(c.column, tok.Row, "Empty parenthesised expression")
		}
		inner, err := parseTokens(content, c.column)
		if err != nil {
			return nil, err
		}
		return wrapUnary(unaryOp, inner), nil

	default:
		return nil, errs.NewAt(c.column, tok.Row, unexpectedOperandMessage(tok))
	}
}

func wrapUnary(op string, expr ast.Expression) ast.Expression {
	if op == "" {
		return expr
	}
	return &ast.Unary{Operator: op, Argument: expr}
}

// applyMemberOrCall checks for a trailing '[' or '(' after an identifier,
// producing a Member or Call node; otherwise id is returned bare.
func applyMemberOrCall(c *cursor, id *ast.Identifier) (ast.Expression, error) {
	next, ok := c.peek()
	if !ok {
		return id, nil
	}
	switch next.Type {
	case token.BracketStart:
		c.next()
		prop, err := parseBracketProperty(c, next.Row)
		if err != nil {
			return nil, err
		}
		return &ast.Member{Target: id, Property: prop}, nil
	case token.ParentheseStart:
		c.next()
		args, err := parseCallArguments(c, next.Row)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Callee: id, Arguments: args}, nil
	default:
		return id, nil
	}
}

func parseBracketProperty(c *cursor, openRow int) (ast.Expression, error) {
	content, err := c.balancedRegion(token.BracketStart, token.BracketEnd, openRow, "Unclosed '['")
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, errs.NewAt(c.column, openRow, "Empty bracket expression")
	}
	return parseTokens(content, c.column)
}

// parseCallArguments parses a parenthesised, comma-separated argument
// list. An empty parameter list `()` yields zero arguments; any comma
// bounding an empty slot (leading, trailing, or doubled) is always
// rejected.
func parseCallArguments(c *cursor, openRow int) ([]ast.Expression, error) {
	content, err := c.balancedRegion(token.ParentheseStart, token.ParentheseEnd, openRow, "Unclosed '('")
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return []ast.Expression{}, nil
	}
	groups := splitOnTopLevelCommas(content)
	args := make([]ast.Expression, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			return nil, errs.NewAt(c.column, openRow, "Empty argument in call")
		}
		expr, err := parseTokens(g, c.column)
		if err != nil {
			return nil, err
		}
		args = append(args, expr)
	}
	return args, nil
}

func unexpectedOperandMessage(tok token.Token) string {
	switch tok.Type {
	case token.If, token.While, token.Def, token.Const:
		return fmt.Sprintf("Unexpected keyword %q in expression", tok.Value)
	default:
		return "Unexpected token in expression"
	}
}

// parseIntLiteral parses a decimal digit run, applying a leading unary
// minus before range-checking against signed 32-bit bounds. The digit
// run can be arbitrarily long, so it is parsed with math/big rather
// than risking an int64 overflow masking the intended out-of-range
// error.
func parseIntLiteral(digits string, negate bool, column, row int) (int32, error) {
	value := new(big.Int)
	if _, ok := value.SetString(digits, 10); !ok {
		return 0, errs.NewAt(column, row, "Invalid integer literal")
	}
	if negate {
		value.Neg(value)
	}
	if value.Cmp(minInt32) < 0 || value.Cmp(maxInt32) > 0 {
		return 0, errs.NewAt(column, row, "Out of range integer value")
	}
	return int32(value.Int64()), nil
}
