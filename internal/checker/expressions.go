package checker

import (
	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/token"
	"github.com/devin-lang/devin/internal/types"
)

// checkExpr is the bottom-up expression-type synthesizer. It both returns
// the expression's type and (via Expression.SetType) records it on the
// node, producing the "TypedAST" the external API contract promises.
func (c *Checker) checkExpr(expr ast.Expression) types.Type {
	t := c.synth(expr)
	expr.SetType(t)
	return t
}

func (c *Checker) synth(expr ast.Expression) types.Type {
	switch e := expr.(type) {
	case *ast.IntegerLit:
		return types.Int
	case *ast.RationalLit:
		return types.Float
	case *ast.BooleanLit:
		return types.Bool
	case *ast.Variable:
		t, ok := c.vars.resolve(e.Name)
		if !ok {
			c.errorf(UnknownVariable, e, "unknown variable %q", e.Name)
			return types.Error
		}
		return t
	case *ast.ArrayLit:
		return c.synthArrayLit(e)
	case *ast.Call:
		return c.synthCall(e)
	case *ast.Access:
		return c.synthAccess(e)
	case *ast.Unary:
		return c.synthUnary(e)
	case *ast.Binary:
		return c.synthBinary(e)
	case *ast.Assign:
		return c.synthAssign(e)
	case *ast.Paren:
		return c.checkExpr(e.X)
	default:
		return types.Error
	}
}

func (c *Checker) synthArrayLit(e *ast.ArrayLit) types.Type {
	if len(e.Elements) == 0 {
		return types.Array{Elem: types.Unknown{Name: "_"}}
	}
	elem := c.checkExpr(e.Elements[0])
	for _, el := range e.Elements[1:] {
		t := c.checkExpr(el)
		if !types.Compatible(elem, t) {
			c.errorf(InvalidType, el, "array element type %s does not match %s", t, elem)
		}
	}
	return types.Array{Elem: elem}
}

func (c *Checker) synthCall(e *ast.Call) types.Type {
	argTypes := make([]types.Type, len(e.Args))
	anyError := false
	for i, a := range e.Args {
		argTypes[i] = c.checkExpr(a)
		if argTypes[i].Kind() == types.KindError {
			anyError = true
		}
	}
	if anyError {
		return types.Error
	}

	overloads := c.funcs.overloadsOf(e.Callee)
	for _, sig := range overloads {
		if types.CompatibleAll(sig.params, argTypes) {
			return sig.ret
		}
	}

	c.errorf(UnknownFunction, e, "no overload of %q matches argument types %s", e.Callee, typeListString(argTypes))
	// Install a placeholder so repeated identical calls in this scope do
	// not re-diagnose the same mismatch.
	c.funcs.install(e.Callee, &signature{params: argTypes, ret: types.Error})
	return types.Error
}

func typeListString(ts []types.Type) string {
	s := "("
	for i, t := range ts {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	return s + ")"
}

func (c *Checker) synthAccess(e *ast.Access) types.Type {
	xt := c.checkExpr(e.X)
	it := c.checkExpr(e.Index)
	if !types.Compatible(it, types.Int) {
		c.errorf(InvalidType, e.Index, "array index must be Int, got %s", it)
	}
	if xt.Kind() == types.KindError || xt.Kind() == types.KindUnknown {
		return types.Error
	}
	arr, ok := xt.(types.Array)
	if !ok {
		c.errorf(InvalidType, e.X, "expected an array, got %s", xt)
		return types.Error
	}
	return arr.Elem
}

func (c *Checker) synthUnary(e *ast.Unary) types.Type {
	xt := c.checkExpr(e.X)
	if xt.Kind() == types.KindError {
		return types.Error
	}
	switch e.Op {
	case token.PLUS, token.MINUS:
		if types.IsArithmetic(xt) {
			return xt
		}
	case token.NOT:
		if types.Compatible(xt, types.Bool) {
			return types.Bool
		}
	case token.LEN:
		if _, ok := xt.(types.Array); ok {
			return types.Int
		}
	}
	c.errorf(InvalidUnary, e, "operator %s is not defined for %s", e.Op, xt)
	return types.Error
}

func (c *Checker) synthBinary(e *ast.Binary) types.Type {
	lt := c.checkExpr(e.Left)
	rt := c.checkExpr(e.Right)
	if lt.Kind() == types.KindError || rt.Kind() == types.KindError {
		return types.Error
	}
	// An unannotated (Unknown) operand is accepted by every operator:
	// comparisons and logical operators yield Bool, arithmetic takes the
	// other operand's type.
	if lt.Kind() == types.KindUnknown || rt.Kind() == types.KindUnknown {
		switch e.Op {
		case token.EQ, token.NOT_EQ, token.LT, token.LTE, token.GT, token.GTE, token.AND, token.OR, token.XOR:
			return types.Bool
		}
		if lt.Kind() == types.KindUnknown {
			return rt
		}
		return lt
	}

	switch e.Op {
	case token.PLUS, token.MINUS, token.SLASH, token.PERCENT:
		if types.IsArithmetic(lt) && types.Compatible(lt, rt) {
			return lt
		}
	case token.STAR:
		if types.IsArithmetic(lt) && types.Compatible(lt, rt) {
			return lt
		}
		if arr, ok := lt.(types.Array); ok && types.Compatible(rt, types.Int) {
			return arr
		}
		if arr, ok := rt.(types.Array); ok && types.Compatible(lt, types.Int) {
			return arr
		}
	case token.EQ, token.NOT_EQ:
		if types.Compatible(lt, rt) {
			return types.Bool
		}
	case token.LT, token.LTE, token.GT, token.GTE:
		if types.IsArithmetic(lt) && types.Compatible(lt, rt) {
			return types.Bool
		}
	case token.AND, token.OR, token.XOR:
		if types.Compatible(lt, types.Bool) && types.Compatible(rt, types.Bool) {
			return types.Bool
		}
	}

	c.errorf(InvalidBinary, e, "operator %s is not defined for %s and %s", e.Op, lt, rt)
	return types.Error
}

func (c *Checker) synthAssign(e *ast.Assign) types.Type {
	if !isLValue(e.Target) {
		c.errorf(InvalidAssign, e.Target, "assignment target must be a variable or array element")
	}
	tt := c.checkExpr(e.Target)
	vt := c.checkExpr(e.Value)
	if tt.Kind() == types.KindError || vt.Kind() == types.KindError {
		return vt
	}

	if e.Op == token.ASSIGN {
		if !types.Compatible(tt, vt) {
			c.errorf(InvalidAssign, e, "cannot assign %s to target of type %s", vt, tt)
		}
		return vt
	}

	if !types.IsArithmetic(tt) || !types.Compatible(tt, vt) {
		c.errorf(InvalidAssign, e, "compound assignment %s requires matching arithmetic types, got %s and %s", e.Op, tt, vt)
	}
	return vt
}
