package ast

import (
	"strings"

	"github.com/devin-lang/devin/internal/token"
)

// VariableDecl is "var name [: Type] = initializer;".
type VariableDecl struct {
	NodeInfo
	Name       string
	NameSpan   token.Span
	Annotation TypeExpr // nil if unannotated
	Init       Expression
}

func (v *VariableDecl) declNode() {}

func (v *VariableDecl) String() string {
	s := "var " + v.Name
	if v.Annotation != nil {
		s += ": " + v.Annotation.String()
	}
	return s + " = " + v.Init.String() + ";"
}

// Parameter is a single function parameter: an optional "ref" marker, a
// name, and an optional type annotation.
type Parameter struct {
	Name       string
	NameSpan   token.Span
	ByRef      bool
	Annotation TypeExpr // nil if unannotated
}

func (p *Parameter) String() string {
	s := ""
	if p.ByRef {
		s += "ref "
	}
	s += p.Name
	if p.Annotation != nil {
		s += ": " + p.Annotation.String()
	}
	return s
}

// FunctionDecl is "def name(params) [: ReturnType] { body }".
type FunctionDecl struct {
	NodeInfo
	Name       string
	NameSpan   token.Span
	Params     []*Parameter
	ReturnType TypeExpr // nil if unannotated: checked as Unknown; falling off the end yields Unit
	Body       *Block
}

func (f *FunctionDecl) declNode() {}

func (f *FunctionDecl) String() string {
	var params []string
	for _, p := range f.Params {
		params = append(params, p.String())
	}
	s := "def " + f.Name + "(" + strings.Join(params, ", ") + ")"
	if f.ReturnType != nil {
		s += ": " + f.ReturnType.String()
	}
	return s + " " + f.Body.String()
}
