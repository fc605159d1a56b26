package ast

import (
	"encoding/json"
	"fmt"
)

// Assignment binds the value of Right to the storage location named by
// Left, which is always a *Member or *Identifier.
type Assignment struct {
	Left  Expression
	Right Expression
}

func (a *Assignment) statementNode()     {}
func (a *Assignment) rootStatementNode() {}
func (a *Assignment) String() string {
	return fmt.Sprintf("%s -> %s", a.Left.String(), a.Right.String())
}

func (a *Assignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":  "Assignment",
		"left":  a.Left,
		"right": a.Right,
	})
}

// ExpressionStatement wraps the only expression form legal as a
// standalone statement: a call.
type ExpressionStatement struct {
	Expression *Call
}

func (e *ExpressionStatement) statementNode()     {}
func (e *ExpressionStatement) rootStatementNode() {}
func (e *ExpressionStatement) String() string     { return e.Expression.String() }

func (e *ExpressionStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":       "ExpressionStatement",
		"expression": e.Expression,
	})
}
