package eval

import (
	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/value"
)

// resolveLValue evaluates expr as an assignable storage slot: a plain
// variable resolves to its bound Cell directly; a chain of array
// accesses resolves to the Cell backing that element. Returning a Cell
// (rather than a get/set closure) lets a "ref" parameter bind to exactly
// the same slot a variable reference would, with no further indirection.
func (e *Evaluator) resolveLValue(expr ast.Expression, scope *Scope) (*value.Cell, error) {
	switch x := expr.(type) {
	case *ast.Variable:
		cell, ok := scope.Lookup(x.Name)
		if !ok {
			return nil, newError(RefExpectsLValue, x.Span(), "undefined variable %q", x.Name)
		}
		return cell, nil
	case *ast.Access:
		baseVal, err := e.evalExpr(x.X, scope)
		if err != nil {
			return nil, err
		}
		arr, ok := baseVal.(*value.Array)
		if !ok {
			return nil, newError(RefExpectsLValue, x.Span(), "indexed l-value is not an array")
		}
		idxVal, err := e.evalExpr(x.Index, scope)
		if err != nil {
			return nil, err
		}
		idx := int(idxVal.(*value.Int).V.Int64())
		if idx < 0 || idx >= len(arr.Items) {
			return nil, newError(IndexOutOfBounds, x.Span(), "index %d out of bounds for array of length %d", idx, len(arr.Items))
		}
		return arr.Items[idx], nil
	default:
		return nil, newError(RefExpectsLValue, expr.Span(), "expression is not an l-value")
	}
}
