package ast

import (
	"encoding/json"
	"fmt"
)

// If is a conditional block; Body is guaranteed non-empty by the parser's
// indent enforcement.
type If struct {
	Test Expression
	Body []Statement
}

func (i *If) statementNode()     {}
func (i *If) rootStatementNode() {}
func (i *If) String() string     { return fmt.Sprintf("if %s (%d stmts)", i.Test.String(), len(i.Body)) }

func (i *If) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type": "If",
		"test": i.Test,
		"body": i.Body,
	})
}

// While is a loop block, identical in shape to If.
type While struct {
	Test Expression
	Body []Statement
}

func (w *While) statementNode()     {}
func (w *While) rootStatementNode() {}
func (w *While) String() string {
	return fmt.Sprintf("while %s (%d stmts)", w.Test.String(), len(w.Body))
}

func (w *While) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type": "While",
		"test": w.Test,
		"body": w.Body,
	})
}
