package ast

import (
	"encoding/json"
	"fmt"
)

// Program is the root node of the AST: an ordered list of top-level
// declarations and statements.
type Program struct {
	Body []RootStatement
}

func (p *Program) String() string {
	return fmt.Sprintf("Program(%d statements)", len(p.Body))
}

func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type": "Program",
		"body": p.Body,
	})
}

// Identifier is a bare name: a variable, function, or parameter reference.
type Identifier struct {
	Value string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) String() string  { return i.Value }

func (i *Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":  "Identifier",
		"value": i.Value,
	})
}

// NumericLiteral is an integer constant that fits a signed 32-bit range.
type NumericLiteral struct {
	Value int32
}

func (n *NumericLiteral) expressionNode() {}
func (n *NumericLiteral) String() string  { return fmt.Sprintf("%d", n.Value) }

func (n *NumericLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":  "NumericLiteral",
		"value": n.Value,
	})
}
