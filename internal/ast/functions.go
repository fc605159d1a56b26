package ast

import (
	"encoding/json"
	"fmt"
)

// Constant is a root-only, indent-0 name binding: `const NAME -> expr`.
type Constant struct {
	Left  *Identifier
	Right Expression
}

func (c *Constant) rootStatementNode() {}
func (c *Constant) String() string {
	return fmt.Sprintf("const %s -> %s", c.Left.String(), c.Right.String())
}

func (c *Constant) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":  "Constant",
		"left":  c.Left,
		"right": c.Right,
	})
}

// FunctionDeclaration is a root-only, indent-0 function definition with a
// non-empty body.
type FunctionDeclaration struct {
	ID     *Identifier
	Params []*Identifier
	Body   []Statement
}

func (f *FunctionDeclaration) rootStatementNode() {}
func (f *FunctionDeclaration) String() string {
	return fmt.Sprintf("def %s(%d params) (%d stmts)", f.ID.String(), len(f.Params), len(f.Body))
}

func (f *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	params := f.Params
	if params == nil {
		params = []*Identifier{}
	}
	return json.Marshal(map[string]any{
		"type":   "FunctionDeclaration",
		"id":     f.ID,
		"params": params,
		"body":   f.Body,
	})
}
