package checker

import (
	"fmt"

	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/types"
)

// Checker holds the mutable state threaded through both passes: the
// current variable- and function-scope stacks, and the accumulating
// diagnostics list.
type Checker struct {
	vars  *varScope
	funcs *funcScope
	diags []Diagnostic
}

// New creates a Checker with a fresh global scope.
func New() *Checker {
	return &Checker{
		vars:  newVarScope(nil),
		funcs: newFuncScope(nil),
	}
}

// Check runs both passes over prog and returns every diagnostic found.
// Evaluation should be skipped whenever this list holds a SeverityError
// diagnostic; NoSideEffects warnings alone do not block it.
func (c *Checker) Check(prog *ast.Program) []Diagnostic {
	c.passOne(prog.Decls)
	c.passTwo(prog.Decls)
	return c.diags
}

func (c *Checker) errorf(kind Kind, span ast.Node, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Kind:     kind,
		Severity: severityOf(kind),
		Span:     span.Span(),
		Message:  fmt.Sprintf(format, args...),
	})
}

// resolveType turns written type syntax into a checker Type. Unannotated
// slots (nil TypeExpr) resolve to Unknown, matching the spec's "Unknown if
// unannotated" rule for parameters and returns.
func (c *Checker) resolveType(te ast.TypeExpr) types.Type {
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
			c.errorf(UnknownType, t, "unknown type %q", t.Name)
			return types.Error
		}
	case *ast.ArrayType:
		return types.Array{Elem: c.resolveType(t.Elem)}
	default:
		return types.Error
	}
}

// passOne installs every function signature in decls into the current
// function scope before any body is checked, so forward references and
// mutual recursion resolve regardless of declaration order.
func (c *Checker) passOne(decls []ast.Declaration) {
	for _, decl := range decls {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok {
			continue
		}
		sig := c.signatureOf(fn)
		for _, existing := range c.funcs.funcs[fn.Name] {
			if types.CompatibleAll(existing.params, sig.params) {
				c.errorf(FunctionRedefinition, fn, "function %q redefined with an indistinguishable signature", fn.Name)
				break
			}
		}
		c.funcs.install(fn.Name, sig)
	}
}

func (c *Checker) signatureOf(fn *ast.FunctionDecl) *signature {
	params := make([]types.Type, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = c.resolveType(p.Annotation)
	}
	return &signature{params: params, ret: c.resolveType(fn.ReturnType)}
}

// passTwo fully checks every declaration's body.
func (c *Checker) passTwo(decls []ast.Declaration) {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.VariableDecl:
			c.checkVariableDecl(d)
		case *ast.FunctionDecl:
			c.checkFunctionDecl(d)
		}
	}
}

func (c *Checker) checkVariableDecl(v *ast.VariableDecl) {
	valueType := c.checkExpr(v.Init)
	bound := valueType
	if v.Annotation != nil {
		annType := c.resolveType(v.Annotation)
		if !types.Compatible(annType, valueType) {
			c.errorf(InvalidType, v.Init, "cannot initialize %q of type %s with value of type %s", v.Name, annType, valueType)
		}
		bound = annType
	}
	c.vars.define(v.Name, bound)
}

func (c *Checker) checkFunctionDecl(fn *ast.FunctionDecl) {
	sig := c.signatureOf(fn)

	outerVars, outerFuncs := c.vars, c.funcs
	c.vars = newVarScope(outerVars)
	c.funcs = newFuncScope(outerFuncs)
	for i, p := range fn.Params {
		c.vars.define(p.Name, sig.params[i])
	}

	c.checkBlock(fn.Body, sig.ret)

	if !types.Compatible(sig.ret, types.Unit) && !alwaysReturns(fn.Body) {
		c.errorf(MissingReturnPath, fn, "function %q does not return a value on every path", fn.Name)
	}

	c.vars, c.funcs = outerVars, outerFuncs
}

// alwaysReturns is the spec's syntactic "always returns" analysis: a
// return always returns; an if/else returns iff both branches do; a block
// returns iff any element does; everything else (loops included) does not.
func alwaysReturns(s ast.Statement) bool {
	switch n := s.(type) {
	case *ast.Return:
		return true
	case *ast.If:
		return n.Else != nil && alwaysReturns(n.Then) && alwaysReturns(n.Else)
	case *ast.Block:
		for _, item := range n.Items {
			if alwaysReturns(item) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// isPure reports whether evaluating expr can have no side effect, used for
// the NoSideEffects warning on bare expression statements. Conservative:
// any call or assignment taints the whole expression as impure.
func isPure(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.Assign, *ast.Call:
		return false
	case *ast.Unary:
		return isPure(e.X)
	case *ast.Binary:
		return isPure(e.Left) && isPure(e.Right)
	case *ast.Access:
		return isPure(e.X) && isPure(e.Index)
	case *ast.Paren:
		return isPure(e.X)
	case *ast.ArrayLit:
		for _, el := range e.Elements {
			if !isPure(el) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// isLValue reports whether expr identifies an assignable storage slot: a
// bare variable, or a chain of array accesses rooted at one.
func isLValue(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.Variable:
		return true
	case *ast.Access:
		return isLValue(e.X)
	default:
		return false
	}
}
