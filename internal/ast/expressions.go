package ast

import (
	"math/big"
	"strings"

	"github.com/devin-lang/devin/internal/token"
)

// IntegerLit is an unbounded integer literal.
type IntegerLit struct {
	ExprInfo
	Value *big.Int
}

func (n *IntegerLit) exprNode()      {}
func (n *IntegerLit) String() string { return n.Value.String() }

// RationalLit is an exact-rational literal, e.g. "1.5".
type RationalLit struct {
	ExprInfo
	Value *big.Rat
}

func (n *RationalLit) exprNode()      {}
func (n *RationalLit) String() string { return n.Value.RatString() }

// BooleanLit is "true" or "false". The spec's Expression enumeration lists
// IntegerLit/RationalLit but not a boolean literal; since Bool is a core
// lattice type and true/false are reserved words, a literal form is
// required for Bool to be constructible at all, so one is added here.
type BooleanLit struct {
	ExprInfo
	Value bool
}

func (n *BooleanLit) exprNode() {}
func (n *BooleanLit) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

// Variable is a bare identifier used as an expression.
type Variable struct {
	ExprInfo
	Name string
}

func (n *Variable) exprNode()      {}
func (n *Variable) String() string { return n.Name }

// ArrayLit is "[e1, e2, ...]".
type ArrayLit struct {
	ExprInfo
	Elements []Expression
}

func (n *ArrayLit) exprNode() {}
func (n *ArrayLit) String() string {
	var parts []string
	for _, el := range n.Elements {
		parts = append(parts, el.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Call is "callee(args)". Devin calls always name a function by identifier;
// the callee is not an arbitrary expression.
type Call struct {
	ExprInfo
	Callee     string
	CalleeSpan token.Span
	Args       []Expression
}

func (n *Call) exprNode() {}
func (n *Call) String() string {
	var parts []string
	for _, a := range n.Args {
		parts = append(parts, a.String())
	}
	return n.Callee + "(" + strings.Join(parts, ", ") + ")"
}

// Unary is a prefix operator: +, -, not, len.
type Unary struct {
	ExprInfo
	Op token.Type
	X  Expression
}

func (n *Unary) exprNode() {}
func (n *Unary) String() string {
	op := n.Op.String()
	if n.Op == token.NOT || n.Op == token.LEN {
		return op + " " + n.X.String()
	}
	return op + n.X.String()
}

// Binary is an infix operator: arithmetic, comparison, or logical.
type Binary struct {
	ExprInfo
	Op          token.Type
	Left, Right Expression
}

func (n *Binary) exprNode() {}
func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

// Assign is "target op value" for op in {=, +=, -=, *=, /=, %=}. Target
// must be an l-value (Variable or an Access chain); that is enforced by
// the checker, not the parser, per the grammar's postfix-indexing layer.
type Assign struct {
	ExprInfo
	Op     token.Type
	Target Expression
	Value  Expression
}

func (n *Assign) exprNode() {}
func (n *Assign) String() string {
	return n.Target.String() + " " + n.Op.String() + " " + n.Value.String()
}

// Access is "x[i]".
type Access struct {
	ExprInfo
	X     Expression
	Index Expression
}

func (n *Access) exprNode()      {}
func (n *Access) String() string { return n.X.String() + "[" + n.Index.String() + "]" }

// Paren is a parenthesized expression, kept as its own node so display can
// round-trip explicit grouping.
type Paren struct {
	ExprInfo
	X Expression
}

func (n *Paren) exprNode()      {}
func (n *Paren) String() string { return "(" + n.X.String() + ")" }
