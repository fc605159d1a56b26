// Package ast defines the Abstract Syntax Tree node types produced by
// the Sunaba parser.
package ast

// Node is the base interface every AST node implements.
type Node interface {
	// String returns a debugging representation of the node.
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node permitted inside a nested body: the shape nested
// under Program, If, While, and FunctionDeclaration.
type Statement interface {
	Node
	statementNode()
}

// RootStatement is a node permitted directly under Program.Body. It is a
// strict superset of Statement: Const and Def additionally implement it
// but never Statement, since they are forbidden below indent 0.
type RootStatement interface {
	Node
	rootStatementNode()
}
