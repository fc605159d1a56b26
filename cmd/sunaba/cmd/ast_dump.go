package cmd

import (
	"fmt"

	"github.com/sunabalang/sunaba/internal/ast"
)

// dumpASTNode prints a human-readable indented tree for --dump-ast,
// the same shape `cmd/dwscript/cmd/parse.go`'s dumpASTNode renders for
// its own AST, adapted to Sunaba's node set.
func dumpASTNode(node any, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", prefix, len(n.Body))
		for _, stmt := range n.Body {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.Assignment:
		fmt.Printf("%sAssignment\n", prefix)
		fmt.Printf("%s  Left:\n", prefix)
		dumpASTNode(n.Left, indent+2)
		fmt.Printf("%s  Right:\n", prefix)
		dumpASTNode(n.Right, indent+2)
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", prefix)
		dumpASTNode(n.Expression, indent+1)
	case *ast.If:
		fmt.Printf("%sIf\n", prefix)
		fmt.Printf("%s  Test:\n", prefix)
		dumpASTNode(n.Test, indent+2)
		fmt.Printf("%s  Body (%d statements):\n", prefix, len(n.Body))
		for _, stmt := range n.Body {
			dumpASTNode(stmt, indent+2)
		}
	case *ast.While:
		fmt.Printf("%sWhile\n", prefix)
		fmt.Printf("%s  Test:\n", prefix)
		dumpASTNode(n.Test, indent+2)
		fmt.Printf("%s  Body (%d statements):\n", prefix, len(n.Body))
		for _, stmt := range n.Body {
			dumpASTNode(stmt, indent+2)
		}
	case *ast.Constant:
		fmt.Printf("%sConstant %s\n", prefix, n.Left.Value)
		dumpASTNode(n.Right, indent+1)
	case *ast.FunctionDeclaration:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Value
		}
		fmt.Printf("%sFunctionDeclaration %s(%v)\n", prefix, n.ID.Value, params)
		for _, stmt := range n.Body {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.Unary:
		fmt.Printf("%sUnary (%s)\n", prefix, n.Operator)
		dumpASTNode(n.Argument, indent+1)
	case *ast.Binary:
		fmt.Printf("%sBinary (%s)\n", prefix, n.Operator)
		fmt.Printf("%s  Left:\n", prefix)
		dumpASTNode(n.Left, indent+2)
		fmt.Printf("%s  Right:\n", prefix)
		dumpASTNode(n.Right, indent+2)
	case *ast.Member:
		fmt.Printf("%sMember\n", prefix)
		fmt.Printf("%s  Target: %s\n", prefix, n.Target.Value)
		fmt.Printf("%s  Property:\n", prefix)
		dumpASTNode(n.Property, indent+2)
	case *ast.Call:
		fmt.Printf("%sCall %s (%d args)\n", prefix, n.Callee.Value, len(n.Arguments))
		for _, arg := range n.Arguments {
			dumpASTNode(arg, indent+1)
		}
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", prefix, n.Value)
	case *ast.NumericLiteral:
		fmt.Printf("%sNumericLiteral: %d\n", prefix, n.Value)
	default:
		fmt.Printf("%s%T: %v\n", prefix, node, node)
	}
}
