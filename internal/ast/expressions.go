package ast

import (
	"encoding/json"
	"fmt"
)

// Unary is a prefix +/- applied to an expression.
type Unary struct {
	Operator string
	Argument Expression
}

func (u *Unary) expressionNode() {}
func (u *Unary) String() string  { return fmt.Sprintf("(%s%s)", u.Operator, u.Argument.String()) }

func (u *Unary) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":     "Unary",
		"operator": u.Operator,
		"argument": u.Argument,
	})
}

// Binary is a left-associative infix operator application. All operators
// sit at one precedence level, so an operator chain is always built
// leftmost-first: Right is itself a *Binary only when it is a
// parenthesised sub-expression, which is kept intact.
type Binary struct {
	Operator string
	Left     Expression
	Right    Expression
}

func (b *Binary) expressionNode() {}
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Operator, b.Right.String())
}

func (b *Binary) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":     "Binary",
		"operator": b.Operator,
		"left":     b.Left,
		"right":    b.Right,
	})
}

// Member is indexed access target[property], including memory[…].
type Member struct {
	Target   *Identifier
	Property Expression
}

func (m *Member) expressionNode() {}
func (m *Member) String() string {
	return fmt.Sprintf("%s[%s]", m.Target.String(), m.Property.String())
}

func (m *Member) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":     "Member",
		"target":   m.Target,
		"property": m.Property,
	})
}

// Call is a function invocation; the only expression form legal as a
// root-level or nested expression statement.
type Call struct {
	Callee    *Identifier
	Arguments []Expression
}

func (c *Call) expressionNode() {}
func (c *Call) String() string {
	return fmt.Sprintf("%s(%d args)", c.Callee.String(), len(c.Arguments))
}

func (c *Call) MarshalJSON() ([]byte, error) {
	args := c.Arguments
	if args == nil {
		args = []Expression{}
	}
	return json.Marshal(map[string]any{
		"type":      "Call",
		"callee":    c.Callee,
		"arguments": args,
	})
}
