package parser

import (
	"testing"

	"github.com/sunabalang/sunaba/internal/ast"
	"github.com/sunabalang/sunaba/internal/errs"
	"github.com/sunabalang/sunaba/internal/lexer"
)

func parseSource(t *testing.T, source string) (*ast.Program, error) {
	t.Helper()
	lines, err := lexer.Tokenise(source)
	if err != nil {
		t.Fatalf("Tokenise: %v", err)
	}
	return Parse(lines)
}

func TestParseAddFunction(t *testing.T) {
	// S1.
	program, err := parseSource(t, "def add(a, b)\n    a -> b\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(program.Body) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(program.Body))
	}
	fn, ok := program.Body[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclaration, got %T", program.Body[0])
	}
	if fn.ID.Value != "add" {
		t.Errorf("id = %q, want add", fn.ID.Value)
	}
	if len(fn.Params) != 2 || fn.Params[0].Value != "a" || fn.Params[1].Value != "b" {
		t.Fatalf("unexpected params: %#v", fn.Params)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body))
	}
	assign, ok := fn.Body[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected *ast.Assignment, got %T", fn.Body[0])
	}
	left, ok := assign.Left.(*ast.Identifier)
	if !ok || left.Value != "a" {
		t.Fatalf("expected left == Identifier(a), got %#v", assign.Left)
	}
	right, ok := assign.Right.(*ast.Identifier)
	if !ok || right.Value != "b" {
		t.Fatalf("expected right == Identifier(b), got %#v", assign.Right)
	}
}

func TestParseIfBlockWithBody(t *testing.T) {
	// S4, success case.
	program, err := parseSource(t, "if x\n    y -> 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ifNode, ok := program.Body[0].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", program.Body[0])
	}
	if len(ifNode.Body) != 1 {
		t.Fatalf("expected a non-empty body, got %d statements", len(ifNode.Body))
	}
}

func TestParseIfBlockMissingBodyErrors(t *testing.T) {
	// S4, failure case: an `if` with its indented body omitted.
	_, err := parseSource(t, "if x\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	pe, ok := err.(*errs.ParseError)
	if !ok {
		t.Fatalf("expected *errs.ParseError, got %T", err)
	}
	want := "There is no body for the last `if` or `while` or `def` statement"
	if pe.Message != want {
		t.Errorf("message = %q, want %q", pe.Message, want)
	}
	if pe.Column != 1 {
		t.Errorf("column = %d, want 1", pe.Column)
	}
}

func TestParseTrailingOpenBlockAtEOFErrors(t *testing.T) {
	_, err := parseSource(t, "if x\n    y -> 1\nwhile y\n")
	if err == nil {
		t.Fatal("expected an error: the trailing while has no body at all")
	}
}

func TestParseConstAndDefOnlyAtIndentZero(t *testing.T) {
	_, err := parseSource(t, "if x\n    const c -> 1\n")
	if err == nil {
		t.Fatal("expected an error: const is only legal at indent 0")
	}
	_, err = parseSource(t, "if x\n    def f(a)\n        a -> 1\n")
	if err == nil {
		t.Fatal("expected an error: def is only legal at indent 0")
	}
}

func TestParseWhileLoop(t *testing.T) {
	program, err := parseSource(t, "while x > 0\n    x -> x - 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	whileNode, ok := program.Body[0].(*ast.While)
	if !ok {
		t.Fatalf("expected *ast.While, got %T", program.Body[0])
	}
	test, ok := whileNode.Test.(*ast.Binary)
	if !ok || test.Operator != ">" {
		t.Fatalf("expected test == Binary(x,>,0), got %#v", whileNode.Test)
	}
}

func TestParseNestedBlocksCloseOnDedent(t *testing.T) {
	program, err := parseSource(t, "if x\n    if y\n        z -> 1\n    w -> 2\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := program.Body[0].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", program.Body[0])
	}
	if len(outer.Body) != 2 {
		t.Fatalf("expected outer if to have 2 body statements (nested if + w assignment), got %d", len(outer.Body))
	}
	if _, ok := outer.Body[0].(*ast.If); !ok {
		t.Errorf("expected outer.Body[0] to be a nested *ast.If, got %T", outer.Body[0])
	}
	if _, ok := outer.Body[1].(*ast.Assignment); !ok {
		t.Errorf("expected outer.Body[1] to be an *ast.Assignment, got %T", outer.Body[1])
	}
}

func TestParseConstAndDefOnlyDirectlyUnderProgram(t *testing.T) {
	// Property 5: Constant/FunctionDeclaration written at indent 0 land
	// directly in Program.Body, never as a nested statement.
	program, err := parseSource(t, "const a -> 1\ndef f(x)\n    x -> 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(program.Body) != 2 {
		t.Fatalf("expected 2 top-level statements, got %d", len(program.Body))
	}
	if _, ok := program.Body[0].(*ast.Constant); !ok {
		t.Errorf("expected program.Body[0] to be *ast.Constant, got %T", program.Body[0])
	}
	if _, ok := program.Body[1].(*ast.FunctionDeclaration); !ok {
		t.Errorf("expected program.Body[1] to be *ast.FunctionDeclaration, got %T", program.Body[1])
	}
}

func TestParseIndentBeyondMaxErrors(t *testing.T) {
	// A non-block statement's next line must be <= its own indent; a
	// sudden increase without an intervening if/while/def is invalid.
	_, err := parseSource(t, "x -> 1\n    y -> 2\n")
	if err == nil {
		t.Fatal("expected an error: indent increased without opening a block")
	}
}
