// Package parser turns the tokeniser's line-tokens into the typed
// Program AST, enforcing indentation-delimited block structure as it
// goes.
package parser

import (
	"math"

	"github.com/sunabalang/sunaba/internal/ast"
	"github.com/sunabalang/sunaba/internal/errs"
	"github.com/sunabalang/sunaba/internal/token"
)

// frame receives the statements that belong to one open body: the
// program root, or the body of a currently-open if/while/def. Root's
// append stores directly into Program.Body; a nested frame's append
// stores into the owning node's Body slice via a captured pointer.
type frame struct {
	append func(ast.RootStatement)
}

// Parse consumes an ordered line-token sequence and produces the typed
// Program it describes, or the first *errs.ParseError encountered.
func Parse(lines []token.LineToken) (*ast.Program, error) {
	program := &ast.Program{}
	stack := []frame{{
		append: func(rs ast.RootStatement) {
			program.Body = append(program.Body, rs)
		},
	}}

	// Before any statement is seen, the next (first) line must sit at
	// indent 0 — the same constraint a non-block statement leaves behind.
	minIndent := 0
	maxIndent := 0
	pendingBlockColumn := 0

	for _, line := range lines {
		if line.Indent < minIndent || line.Indent > maxIndent {
			return nil, errs.New(line.Column, "Invalid indent space")
		}
		stack = stack[:line.Indent+1]

		first := line.Tokens[0]
		switch first.Type {
		case token.Identifier, token.Memory:
			stmt, err := parseAssignmentOrExpression(line)
			if err != nil {
				return nil, err
			}
			stack[len(stack)-1].append(stmt)
			minIndent, maxIndent = 0, line.Indent

		case token.If:
			test, err := parseConditionHeader(line)
			if err != nil {
				return nil, err
			}
			node := &ast.If{Test: test}
			stack[len(stack)-1].append(node)
			stack = append(stack, bodyFrame(&node.Body))
			minIndent, maxIndent = line.Indent+1, math.MaxInt32
			pendingBlockColumn = line.Column

		case token.While:
			test, err := parseConditionHeader(line)
			if err != nil {
				return nil, err
			}
			node := &ast.While{Test: test}
			stack[len(stack)-1].append(node)
			stack = append(stack, bodyFrame(&node.Body))
			minIndent, maxIndent = line.Indent+1, math.MaxInt32
			pendingBlockColumn = line.Column

		case token.Const:
			if line.Indent != 0 {
				return nil, errs.New(line.Column, "'const' is only allowed at indent 0")
			}
			node, err := parseConstant(line)
			if err != nil {
				return nil, err
			}
			stack[len(stack)-1].append(node)
			minIndent, maxIndent = 0, line.Indent

		case token.Def:
			if line.Indent != 0 {
				return nil, errs.New(line.Column, "'def' is only allowed at indent 0")
			}
			node, err := parseFunctionHeader(line)
			if err != nil {
				return nil, err
			}
			stack[len(stack)-1].append(node)
			stack = append(stack, bodyFrame(&node.Body))
			minIndent, maxIndent = line.Indent+1, math.MaxInt32
			pendingBlockColumn = line.Column

		default:
			return nil, errs.NewAt(line.Column, first.Row, "Unexpected token at start of statement")
		}
	}

	if minIndent > 0 {
		return nil, errs.New(pendingBlockColumn, "There is no body for the last `if` or `while` or `def` statement")
	}

	return program, nil
}

// bodyFrame builds a frame that appends into *body, converting the
// shared ast.RootStatement currency back to ast.Statement. This
// conversion always succeeds: Const and FunctionDeclaration, the two
// RootStatement variants that do not implement Statement, can only be
// produced at indent 0 by the root frame and are never routed through a
// nested frame.
func bodyFrame(body *[]ast.Statement) frame {
	return frame{append: func(rs ast.RootStatement) {
		*body = append(*body, rs.(ast.Statement))
	}}
}
