package eval

import (
	"math/big"

	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/token"
	"github.com/devin-lang/devin/internal/value"
)

// evalAccessTarget evaluates the base and index of an Access expression
// read (not assigned to), bounds-checking the index and returning the
// backing array and the resolved position.
func (e *Evaluator) evalAccessTarget(x *ast.Access, scope *Scope) (*value.Array, int, error) {
	baseVal, err := e.evalExpr(x.X, scope)
	if err != nil {
		return nil, 0, err
	}
	arr, ok := baseVal.(*value.Array)
	if !ok {
		return nil, 0, newError(RefExpectsLValue, x.Span(), "indexed expression is not an array")
	}
	idxVal, err := e.evalExpr(x.Index, scope)
	if err != nil {
		return nil, 0, err
	}
	idx := int(idxVal.(*value.Int).V.Int64())
	if idx < 0 || idx >= len(arr.Items) {
		return nil, 0, newError(IndexOutOfBounds, x.Span(), "index %d out of bounds for array of length %d", idx, len(arr.Items))
	}
	return arr, idx, nil
}

func (e *Evaluator) evalCall(x *ast.Call, scope *Scope) (value.Value, error) {
	args := make([]value.Value, len(x.Args))
	for i, a := range x.Args {
		v, err := e.evalExpr(a, scope)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	fn, ok := e.resolveOverload(scope, x.Callee, args)
	if !ok {
		return nil, newError(RefExpectsLValue, x.Span(), "no overload of %q matches the given arguments", x.Callee)
	}
	return e.call(fn, x.Args, args, scope, x.Span())
}

func (e *Evaluator) evalUnary(x *ast.Unary, scope *Scope) (value.Value, error) {
	v, err := e.evalExpr(x.X, scope)
	if err != nil {
		return nil, err
	}
	switch x.Op {
	case token.PLUS:
		return v, nil
	case token.MINUS:
		switch n := v.(type) {
		case *value.Int:
			return &value.Int{V: new(big.Int).Neg(n.V)}, nil
		case *value.Float:
			return &value.Float{V: new(big.Rat).Neg(n.V)}, nil
		}
	case token.NOT:
		return &value.Bool{V: !v.(*value.Bool).V}, nil
	case token.LEN:
		return value.NewInt(int64(len(v.(*value.Array).Items))), nil
	}
	return nil, newError(RefExpectsLValue, x.Span(), "unsupported unary operator %s", x.Op)
}

func (e *Evaluator) evalBinary(x *ast.Binary, scope *Scope) (value.Value, error) {
	lv, err := e.evalExpr(x.Left, scope)
	if err != nil {
		return nil, err
	}
	rv, err := e.evalExpr(x.Right, scope)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return e.evalArith(x, lv, rv)
	case token.EQ:
		return &value.Bool{V: value.Equal(lv, rv)}, nil
	case token.NOT_EQ:
		return &value.Bool{V: !value.Equal(lv, rv)}, nil
	case token.LT, token.LTE, token.GT, token.GTE:
		return evalCompare(x.Op, lv, rv), nil
	case token.AND:
		return &value.Bool{V: lv.(*value.Bool).V && rv.(*value.Bool).V}, nil
	case token.OR:
		return &value.Bool{V: lv.(*value.Bool).V || rv.(*value.Bool).V}, nil
	case token.XOR:
		return &value.Bool{V: lv.(*value.Bool).V != rv.(*value.Bool).V}, nil
	}
	return nil, newError(RefExpectsLValue, x.Span(), "unsupported binary operator %s", x.Op)
}

// evalArith implements +, -, *, /, % for Int and Float operands, plus the
// array-repetition form of * (Array * Int or Int * Array). Division and
// modulo by zero raise DivisionByZero rather than panicking, since math/big
// panics on a zero divisor.
func (e *Evaluator) evalArith(x *ast.Binary, lv, rv value.Value) (value.Value, error) {
	if arr, ok := lv.(*value.Array); ok {
		n, ok := rv.(*value.Int)
		if !ok {
			return nil, newError(RefExpectsLValue, x.Span(), "array repetition requires an Int count")
		}
		return value.Repeat(arr, int(n.V.Int64())), nil
	}
	if arr, ok := rv.(*value.Array); ok {
		n, ok := lv.(*value.Int)
		if !ok {
			return nil, newError(RefExpectsLValue, x.Span(), "array repetition requires an Int count")
		}
		return value.Repeat(arr, int(n.V.Int64())), nil
	}

	if li, lok := lv.(*value.Int); lok {
		ri := rv.(*value.Int)
		switch x.Op {
		case token.PLUS:
			return &value.Int{V: new(big.Int).Add(li.V, ri.V)}, nil
		case token.MINUS:
			return &value.Int{V: new(big.Int).Sub(li.V, ri.V)}, nil
		case token.STAR:
			return &value.Int{V: new(big.Int).Mul(li.V, ri.V)}, nil
		case token.SLASH:
			if ri.V.Sign() == 0 {
				return nil, newError(DivisionByZero, x.Span(), "division by zero")
			}
			return &value.Int{V: new(big.Int).Quo(li.V, ri.V)}, nil
		case token.PERCENT:
			if ri.V.Sign() == 0 {
				return nil, newError(DivisionByZero, x.Span(), "division by zero")
			}
			return &value.Int{V: new(big.Int).Rem(li.V, ri.V)}, nil
		}
	}

	lf := lv.(*value.Float)
	rf := rv.(*value.Float)
	switch x.Op {
	case token.PLUS:
		return &value.Float{V: new(big.Rat).Add(lf.V, rf.V)}, nil
	case token.MINUS:
		return &value.Float{V: new(big.Rat).Sub(lf.V, rf.V)}, nil
	case token.STAR:
		return &value.Float{V: new(big.Rat).Mul(lf.V, rf.V)}, nil
	case token.SLASH:
		if rf.V.Sign() == 0 {
			return nil, newError(DivisionByZero, x.Span(), "division by zero")
		}
		return &value.Float{V: new(big.Rat).Quo(lf.V, rf.V)}, nil
	case token.PERCENT:
		if rf.V.Sign() == 0 {
			return nil, newError(DivisionByZero, x.Span(), "division by zero")
		}
		// a % b = a - trunc(a/b)*b, truncating the quotient toward zero,
		// matching Int's Quo/Rem truncation convention.
		q := new(big.Rat).Quo(lf.V, rf.V)
		truncInt := new(big.Int).Quo(q.Num(), q.Denom())
		trunc := new(big.Rat).SetInt(truncInt)
		rem := new(big.Rat).Sub(lf.V, new(big.Rat).Mul(trunc, rf.V))
		return &value.Float{V: rem}, nil
	}
	return nil, newError(RefExpectsLValue, x.Span(), "unsupported arithmetic operator %s", x.Op)
}

func evalCompare(op token.Type, lv, rv value.Value) value.Value {
	var cmp int
	if li, ok := lv.(*value.Int); ok {
		cmp = li.V.Cmp(rv.(*value.Int).V)
	} else {
		cmp = lv.(*value.Float).V.Cmp(rv.(*value.Float).V)
	}
	switch op {
	case token.LT:
		return &value.Bool{V: cmp < 0}
	case token.LTE:
		return &value.Bool{V: cmp <= 0}
	case token.GT:
		return &value.Bool{V: cmp > 0}
	default:
		return &value.Bool{V: cmp >= 0}
	}
}

func (e *Evaluator) evalAssign(x *ast.Assign, scope *Scope) (value.Value, error) {
	cell, err := e.resolveLValue(x.Target, scope)
	if err != nil {
		return nil, err
	}
	rv, err := e.evalExpr(x.Value, scope)
	if err != nil {
		return nil, err
	}
	if x.Op == token.ASSIGN {
		cell.V = rv
		return rv, nil
	}

	opMap := map[token.Type]token.Type{
		token.PLUS_ASSIGN:    token.PLUS,
		token.MINUS_ASSIGN:   token.MINUS,
		token.STAR_ASSIGN:    token.STAR,
		token.SLASH_ASSIGN:   token.SLASH,
		token.PERCENT_ASSIGN: token.PERCENT,
	}
	binOp := opMap[x.Op]
	newVal, err := e.evalArith(&ast.Binary{Op: binOp, Left: x.Target, Right: x.Value}, cell.V, rv)
	if err != nil {
		return nil, err
	}
	cell.V = newVal
	return newVal, nil
}
