package parser

import "github.com/sunabalang/sunaba/internal/ast"

// rotate left-rotates a right-leaning operator chain into
// left-associative normal form: given a Binary built by a naive
// right-recursive parse of an unparenthesised operator chain,
// repeatedly rotate until the right child is no longer itself a Binary.
//
//	root = (l, op, (ll, op2, lr))  ->  root = ((l, op, ll), op2, lr)
//
// parseExpression builds chains directly in normal form and never calls
// this; it exists as a standalone, testable implementation of the
// rotation technique itself. Callers must only apply it to chains with
// no parenthesised boundary, since a parenthesised right operand must
// never be flattened into the surrounding chain (see expressions.go's
// doc comment).
func rotate(root *ast.Binary) *ast.Binary {
	for {
		rightBinary, ok := root.Right.(*ast.Binary)
		if !ok {
			return root
		}
		root = &ast.Binary{
			Operator: rightBinary.Operator,
			Left: &ast.Binary{
				Operator: root.Operator,
				Left:     root.Left,
				Right:    rightBinary.Left,
			},
			Right: rightBinary.Right,
		}
	}
}
