package lexer

import (
	"testing"

	"github.com/sunabalang/sunaba/internal/errs"
	"github.com/sunabalang/sunaba/internal/token"
)

func tokenTypes(line token.LineToken) []token.Type {
	types := make([]token.Type, len(line.Tokens))
	for i, tok := range line.Tokens {
		types[i] = tok.Type
	}
	return types
}

func TestTokeniseSimpleAssignment(t *testing.T) {
	lines, err := Tokenise("x -> 1 + 2\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line-token, got %d", len(lines))
	}
	got := tokenTypes(lines[0])
	want := []token.Type{token.Identifier, token.Assignment, token.NumericLiteral, token.Operator, token.NumericLiteral}
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s want %s", i, got[i], want[i])
		}
	}
	if lines[0].Column != 1 || lines[0].Indent != 0 {
		t.Errorf("unexpected column/indent: %+v", lines[0])
	}
}

func TestTokeniseBlankAndCommentLinesDoNotShiftColumn(t *testing.T) {
	source := "x -> 1\n\n# a comment\ny -> 2\n"
	lines, err := Tokenise(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 line-tokens, got %d", len(lines))
	}
	if lines[0].Column != 1 {
		t.Errorf("first line column = %d, want 1", lines[0].Column)
	}
	if lines[1].Column != 4 {
		t.Errorf("second line column = %d, want 4 (blank/comment lines still advance the counter)", lines[1].Column)
	}
}

func TestTokeniseIndentStack(t *testing.T) {
	source := "def f(a)\n    a -> 1\n"
	lines, err := Tokenise(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines[0].Indent != 0 {
		t.Errorf("first line indent = %d, want 0", lines[0].Indent)
	}
	if lines[1].Indent != 1 {
		t.Errorf("second line indent = %d, want 1", lines[1].Indent)
	}
}

func TestTokeniseDedentToUnseenLevelErrors(t *testing.T) {
	// S7: a line at 4 spaces, then a line at 2 spaces, where 2 was never
	// previously pushed onto the indent stack.
	source := "if x\n    a -> 1\n  b -> 2\n"
	_, err := Tokenise(source)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	pe, ok := err.(*errs.ParseError)
	if !ok {
		t.Fatalf("expected *errs.ParseError, got %T", err)
	}
	if pe.Column != 3 {
		t.Errorf("error column = %d, want 3", pe.Column)
	}
	if pe.Error() != "3: Invalid indent space" {
		t.Errorf("unexpected message: %s", pe.Error())
	}
}

func TestTokeniseNestedBlockComment(t *testing.T) {
	lines, err := Tokenise("/* a /* b */ c */ x -> 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plain, err := Tokenise("x -> 1\n")
	if err != nil {
		t.Fatalf("unexpected error tokenising plain source: %v", err)
	}
	if len(lines) != len(plain) {
		t.Fatalf("line count mismatch: got %d want %d", len(lines), len(plain))
	}
	gotTypes := tokenTypes(lines[0])
	wantTypes := tokenTypes(plain[0])
	if len(gotTypes) != len(wantTypes) {
		t.Fatalf("token count mismatch: got %v want %v", gotTypes, wantTypes)
	}
	for i := range wantTypes {
		if gotTypes[i] != wantTypes[i] {
			t.Errorf("token %d: got %s want %s", i, gotTypes[i], wantTypes[i])
		}
	}
}

func TestTokeniseUnclosedBlockCommentErrors(t *testing.T) {
	_, err := Tokenise("x -> 1\n/* never closed\n")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	pe, ok := err.(*errs.ParseError)
	if !ok {
		t.Fatalf("expected *errs.ParseError, got %T", err)
	}
	if pe.Message != "The multi-line comment is not closed" {
		t.Errorf("unexpected message: %s", pe.Message)
	}
	if pe.Column != 2 {
		t.Errorf("error column = %d, want 2", pe.Column)
	}
}

func TestTokeniseBareExclamationErrors(t *testing.T) {
	_, err := Tokenise("x -> 1 ! 2\n")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	pe, ok := err.(*errs.ParseError)
	if !ok {
		t.Fatalf("expected *errs.ParseError, got %T", err)
	}
	if pe.Message != "There should be only '=' after the '!'" {
		t.Errorf("unexpected message: %s", pe.Message)
	}
}

func TestTokeniseComparisonOperators(t *testing.T) {
	lines, err := Tokenise("if a >= b\n    c -> 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, tok := range lines[0].Tokens {
		if tok.Type == token.Operator && tok.Value == ">=" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a >= operator token, got %v", lines[0].Tokens)
	}
}

func TestTokeniseRowAccounting(t *testing.T) {
	lines, err := Tokenise("ab -> 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	toks := lines[0].Tokens
	if toks[0].Row != 1 {
		t.Errorf("identifier row = %d, want 1", toks[0].Row)
	}
	if toks[1].Row != 4 {
		t.Errorf("assignment row = %d, want 4", toks[1].Row)
	}
}

func TestTokeniseUnexpectedCharacter(t *testing.T) {
	_, err := Tokenise("x -> 1 % 2\n")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	pe, ok := err.(*errs.ParseError)
	if !ok {
		t.Fatalf("expected *errs.ParseError, got %T", err)
	}
	if pe.Message != `Unexpected character "%"` {
		t.Errorf("unexpected message: %s", pe.Message)
	}
}
