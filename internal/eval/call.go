package eval

import (
	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/token"
	"github.com/devin-lang/devin/internal/types"
	"github.com/devin-lang/devin/internal/value"
)

// call invokes fn in callerScope, per the spec's ref/by-value parameter
// binding: a "ref" parameter shares the argument's resolved Cell directly,
// a by-value parameter gets a fresh Cell holding the evaluated argument
// (arrays still alias their contents, since the Value inside that fresh
// Cell is the same *value.Array pointer). argVals holds each argument
// already evaluated exactly once by the caller (evalCall, for overload
// resolution); only a ByRef parameter re-walks its argExpr, to resolve the
// l-value Cell rather than a transient value — a by-value argument is
// never evaluated twice.
func (e *Evaluator) call(fn *Function, argExprs []ast.Expression, argVals []value.Value, callerScope *Scope, callSpan token.Span) (value.Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxCallDepth {
		return nil, newError(StackOverflow, callSpan, "call stack exceeded depth %d", maxCallDepth)
	}

	frame := NewEnclosedScope(fn.Closure)
	for i, param := range fn.Decl.Params {
		if param.ByRef {
			var argExpr ast.Expression
			if i < len(argExprs) {
				argExpr = argExprs[i]
			}
			cell, err := e.resolveLValue(argExpr, callerScope)
			if err != nil {
				return nil, err
			}
			frame.Bind(param.Name, cell)
			continue
		}
		var v value.Value
		if i < len(argVals) {
			v = argVals[i]
		}
		frame.Bind(param.Name, value.NewCell(v))
	}

	res, err := e.execBlock(fn.Decl.Body, frame)
	if err != nil {
		return nil, err
	}
	if res.returning {
		return res.value, nil
	}
	if fn.Decl.ReturnType == nil {
		return value.TheUnit, nil
	}
	return nil, newError(MissingReturnVal, fn.Decl.Span(), "function %q fell through without returning a value", fn.Decl.Name)
}

// resolveOverload picks the overload of name whose parameter types accept
// args' runtime types, taking the first match innermost-first as the checker
// does. The checker already guarantees at least one such overload exists for
// any program it accepted without an UnknownFunction diagnostic, so a miss
// here indicates a checker/evaluator mismatch rather than a user error.
func (e *Evaluator) resolveOverload(scope *Scope, name string, args []value.Value) (*Function, bool) {
	for _, fn := range scope.Overloads(name) {
		if len(fn.Decl.Params) != len(args) {
			continue
		}
		match := true
		for i, p := range fn.Decl.Params {
			if !types.Compatible(paramType(p), value.ValueType(args[i])) {
				match = false
				break
			}
		}
		if match {
			return fn, true
		}
	}
	return nil, false
}

// paramType resolves a parameter's written annotation to a Type, treating
// an absent annotation as Unknown (universally compatible) — the same rule
// the checker applies when installing a signature.
func paramType(p *ast.Parameter) types.Type {
	return resolveTypeExpr(p.Annotation)
}

// resolveTypeExpr mirrors the checker's own type-annotation resolution,
// without diagnostics: by the time the evaluator runs, the checker has
// already accepted the program, so any annotation here is known-valid.
func resolveTypeExpr(te ast.TypeExpr) types.Type {
	if te == nil {
		return types.Unknown{Name: "_"}
	}
	switch t := te.(type) {
	case *ast.NamedType:
		switch t.Name {
		case "Unit":
			return types.Unit
		case "Bool":
			return types.Bool
		case "Int":
			return types.Int
		case "Float":
			return types.Float
		default:
			return types.Unknown{Name: t.Name}
		}
	case *ast.ArrayType:
		return types.Array{Elem: resolveTypeExpr(t.Elem)}
	default:
		return types.Error
	}
}
