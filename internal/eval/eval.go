// Package eval implements Devin's tree-walking evaluator: a single-
// threaded, recursive, strictly left-to-right interpreter over a checked
// AST, per the execution model in the language spec.
package eval

import (
	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/token"
	"github.com/devin-lang/devin/internal/value"
)

// maxCallDepth bounds recursion so runaway (or merely very deep) recursive
// programs surface as a StackOverflow runtime error instead of crashing
// the host process with a Go stack overflow.
const maxCallDepth = 4000

// Evaluator carries the mutable runtime state: the global scope (which
// doubles as the heap's root) and the current call depth.
type Evaluator struct {
	global *Scope
	depth  int
}

// New creates an Evaluator with a fresh global scope.
func New() *Evaluator {
	return &Evaluator{global: NewScope()}
}

// result is a statement's outcome: Continuing, or Returning a value that
// unwinds to the enclosing call frame.
type result struct {
	returning bool
	value     value.Value
}

var continuing = result{}

func returning(v value.Value) result { return result{returning: true, value: v} }

// Run installs every top-level declaration in order, then looks up and
// calls a zero-argument "main", per the spec's evaluate(Devin) contract.
func (e *Evaluator) Run(prog *ast.Program) error {
	for _, decl := range prog.Decls {
		if err := e.installTop(decl); err != nil {
			return err
		}
	}

	overloads := e.global.Overloads("main")
	for _, fn := range overloads {
		if len(fn.Decl.Params) == 0 {
			_, err := e.call(fn, nil, nil, e.global, token.Span{})
			return err
		}
	}
	return newError(NoMain, token.Span{}, "no zero-argument function named %q", "main")
}

func (e *Evaluator) installTop(decl ast.Declaration) error {
	switch d := decl.(type) {
	case *ast.FunctionDecl:
		e.global.Declare(d.Name, d)
		return nil
	case *ast.VariableDecl:
		v, err := e.evalExpr(d.Init, e.global)
		if err != nil {
			return err
		}
		e.global.Bind(d.Name, value.NewCell(value.CopyDeep(v)))
		return nil
	}
	return nil
}
