package eval

import (
	"math/big"

	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/types"
	"github.com/devin-lang/devin/internal/value"
)

func (e *Evaluator) evalExpr(expr ast.Expression, scope *Scope) (value.Value, error) {
	switch x := expr.(type) {
	case *ast.IntegerLit:
		return &value.Int{V: new(big.Int).Set(x.Value)}, nil
	case *ast.RationalLit:
		return &value.Float{V: new(big.Rat).Set(x.Value)}, nil
	case *ast.BooleanLit:
		return &value.Bool{V: x.Value}, nil

	case *ast.Variable:
		cell, ok := scope.Lookup(x.Name)
		if !ok {
			return nil, newError(RefExpectsLValue, x.Span(), "undefined variable %q", x.Name)
		}
		return cell.V, nil

	case *ast.ArrayLit:
		items := make([]value.Value, len(x.Elements))
		for i, el := range x.Elements {
			v, err := e.evalExpr(el, scope)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		elem := types.Type(types.Unknown{Name: "_"})
		if arrType, ok := x.Type().(types.Array); ok {
			elem = arrType.Elem
		}
		return value.NewArray(elem, items), nil

	case *ast.Call:
		return e.evalCall(x, scope)

	case *ast.Access:
		arr, idx, err := e.evalAccessTarget(x, scope)
		if err != nil {
			return nil, err
		}
		return arr.Items[idx].V, nil

	case *ast.Unary:
		return e.evalUnary(x, scope)

	case *ast.Binary:
		return e.evalBinary(x, scope)

	case *ast.Assign:
		return e.evalAssign(x, scope)

	case *ast.Paren:
		return e.evalExpr(x.X, scope)

	default:
		return nil, newError(RefExpectsLValue, expr.Span(), "unsupported expression")
	}
}
