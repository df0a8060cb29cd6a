// Package ast defines the Devin abstract syntax tree: declarations,
// statements, expressions, and type-annotation syntax, each carrying a
// source Span. Expression nodes additionally carry a Type slot, nil until
// the checker populates it.
package ast

import (
	"github.com/devin-lang/devin/internal/token"
	"github.com/devin-lang/devin/internal/types"
)

// Node is the base interface every AST node satisfies.
type Node interface {
	Span() token.Span
	String() string
}

// Declaration is a top-level-or-local binding: a variable or a function.
type Declaration interface {
	Node
	declNode()
}

// Statement is an executable unit inside a function body.
type Statement interface {
	Node
	stmtNode()
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	exprNode()
	Type() types.Type
	SetType(types.Type)
}

// TypeExpr is the syntax of a type annotation (written, not yet resolved).
type TypeExpr interface {
	Node
	typeExprNode()
}

// NodeInfo is embedded by statement, declaration, and type-expression nodes
// to carry their source span.
type NodeInfo struct {
	At token.Span
}

func (n NodeInfo) Span() token.Span { return n.At }

// ExprInfo is embedded by expression nodes: a span plus the type slot the
// checker populates.
type ExprInfo struct {
	At  token.Span
	Typ types.Type
}

func (e ExprInfo) Span() token.Span      { return e.At }
func (e *ExprInfo) Type() types.Type     { return e.Typ }
func (e *ExprInfo) SetType(t types.Type) { e.Typ = t }

// Program is the root node: the ordered list of top-level declarations
// (the spec's "Devin" production).
type Program struct {
	Decls []Declaration
}

func (p *Program) Span() token.Span {
	if len(p.Decls) == 0 {
		return token.Span{}
	}
	return token.Span{Start: p.Decls[0].Span().Start, End: p.Decls[len(p.Decls)-1].Span().End}
}

func (p *Program) String() string {
	s := ""
	for i, d := range p.Decls {
		if i > 0 {
			s += "\n"
		}
		s += d.String()
	}
	return s
}
