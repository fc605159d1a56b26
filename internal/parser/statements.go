package parser

import (
	"github.com/sunabalang/sunaba/internal/ast"
	"github.com/sunabalang/sunaba/internal/errs"
	"github.com/sunabalang/sunaba/internal/token"
)

// parseAssignmentOrExpression handles a line starting with an
// Identifier or Memory token: a line containing an Assignment token
// parses as Assignment, otherwise the whole line must parse to a single
// Call used as an ExpressionStatement.
func parseAssignmentOrExpression(line token.LineToken) (ast.RootStatement, error) {
	if idx, found := findAssignment(line.Tokens); found {
		return parseAssignment(line, idx)
	}

	expr, err := parseTokens(line.Tokens, line.Column)
	if err != nil {
		return nil, err
	}
	call, ok := expr.(*ast.Call)
	if !ok {
		return nil, errs.New(line.Column, "Expression statement must be a function call")
	}
	return &ast.ExpressionStatement{Expression: call}, nil
}

func findAssignment(tokens []token.Token) (int, bool) {
	for i, t := range tokens {
		if t.Type == token.Assignment {
			return i, true
		}
	}
	return 0, false
}

func parseAssignment(line token.LineToken, assignIdx int) (*ast.Assignment, error) {
	leftTokens := line.Tokens[:assignIdx]
	rightTokens := line.Tokens[assignIdx+1:]
	if len(leftTokens) == 0 {
		return nil, errs.New(line.Column, "Assignment is missing a left-hand side")
	}
	if len(rightTokens) == 0 {
		return nil, errs.New(line.Column, "Assignment is missing a right-hand side")
	}

	left, err := parseTokens(leftTokens, line.Column)
	if err != nil {
		return nil, err
	}
	switch left.(type) {
	case *ast.Identifier, *ast.Member:
	default:
		return nil, errs.New(line.Column, "Left-hand side of assignment must be an identifier or member expression")
	}

	right, err := parseTokens(rightTokens, line.Column)
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Left: left, Right: right}, nil
}

// parseConditionHeader parses the test expression of an `if`/`while`
// line (everything after the leading keyword token).
func parseConditionHeader(line token.LineToken) (ast.Expression, error) {
	rest := line.Tokens[1:]
	if len(rest) == 0 {
		return nil, errs.New(line.Column, "Expected a condition expression")
	}
	return parseTokens(rest, line.Column)
}

// parseConstant parses `const IDENT -> expr`, only legal at indent 0. A
// missing identifier is reported at the `const` keyword token's own
// position rather than dereferencing an absent identifier token.
func parseConstant(line token.LineToken) (*ast.Constant, error) {
	constTok := line.Tokens[0]
	rest := line.Tokens[1:]
	if len(rest) == 0 || rest[0].Type != token.Identifier {
		return nil, errs.NewAt(line.Column, constTok.Row, "Expected an identifier after 'const'")
	}
	idTok := rest[0]
	rest = rest[1:]
	if len(rest) == 0 || rest[0].Type != token.Assignment {
		return nil, errs.NewAt(line.Column, idTok.Row, "Expected '->' after constant name")
	}
	rhsTokens := rest[1:]
	if len(rhsTokens) == 0 {
		return nil, errs.New(line.Column, "Constant is missing its value expression")
	}
	rhs, err := parseTokens(rhsTokens, line.Column)
	if err != nil {
		return nil, err
	}
	return &ast.Constant{Left: &ast.Identifier{Value: idTok.Value}, Right: rhs}, nil
}

// parseFunctionHeader parses `def NAME(params...)`, only legal at indent
// 0. The body is filled in by the caller as subsequent, deeper-indented
// lines are processed.
func parseFunctionHeader(line token.LineToken) (*ast.FunctionDeclaration, error) {
	defTok := line.Tokens[0]
	rest := line.Tokens[1:]
	if len(rest) == 0 || rest[0].Type != token.Identifier {
		return nil, errs.NewAt(line.Column, defTok.Row, "Expected a function name after 'def'")
	}
	idTok := rest[0]
	rest = rest[1:]
	if len(rest) == 0 || rest[0].Type != token.ParentheseStart {
		return nil, errs.NewAt(line.Column, idTok.Row, "Expected '(' after function name")
	}
	openRow := rest[0].Row
	c := newCursor(rest[1:], line.Column)
	paramTokens, err := c.balancedRegion(token.ParentheseStart, token.ParentheseEnd, openRow, "Unclosed '('")
	if err != nil {
		return nil, err
	}
	if !c.atEnd() {
		tok, _ := c.peek()
		return nil, errs.NewAt(line.Column, tok.Row, "Unexpected tokens after parameter list")
	}
	params, err := parseParamList(paramTokens, line.Column, openRow)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{ID: &ast.Identifier{Value: idTok.Value}, Params: params}, nil
}

func parseParamList(tokens []token.Token, column, openRow int) ([]*ast.Identifier, error) {
	if len(tokens) == 0 {
		return []*ast.Identifier{}, nil
	}
	groups := splitOnTopLevelCommas(tokens)
	params := make([]*ast.Identifier, 0, len(groups))
	for _, g := range groups {
		if len(g) != 1 || g[0].Type != token.Identifier {
			return nil, errs.NewAt(column, openRow, "Parameter list must be comma-separated identifiers")
		}
		params = append(params, &ast.Identifier{Value: g[0].Value})
	}
	return params, nil
}
