package checker

import (
	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/types"
)

// checkBlock opens a new variable scope and a new function scope (so a
// nested function declared here cannot be shadowed by, nor shadow, an
// outer overload set), runs Pass 1 over the block's own nested function
// declarations, then checks every item against expected.
func (c *Checker) checkBlock(b *ast.Block, expected types.Type) {
	outerVars, outerFuncs := c.vars, c.funcs
	c.vars = newVarScope(outerVars)
	c.funcs = newFuncScope(outerFuncs)

	var nested []ast.Declaration
	for _, item := range b.Items {
		if ds, ok := item.(*ast.DeclStmt); ok {
			nested = append(nested, ds.Decl)
		}
	}
	c.passOne(nested)

	for _, item := range b.Items {
		c.checkStatement(item, expected)
	}

	c.vars, c.funcs = outerVars, outerFuncs
}

func (c *Checker) checkStatement(s ast.Statement, expected types.Type) {
	switch n := s.(type) {
	case *ast.Block:
		c.checkBlock(n, expected)
	case *ast.ExprStmt:
		t := c.checkExpr(n.X)
		if t.Kind() != types.KindError && isPure(n.X) {
			c.errorf(NoSideEffects, n.X, "expression statement has no effect")
		}
	case *ast.If:
		condType := c.checkExpr(n.Cond)
		if !types.Compatible(condType, types.Bool) {
			c.errorf(InvalidType, n.Cond, "if condition must be Bool, got %s", condType)
		}
		c.checkStatement(n.Then, expected)
		if n.Else != nil {
			c.checkStatement(n.Else, expected)
		}
	case *ast.While:
		condType := c.checkExpr(n.Cond)
		if !types.Compatible(condType, types.Bool) {
			c.errorf(InvalidType, n.Cond, "while condition must be Bool, got %s", condType)
		}
		c.checkStatement(n.Body, expected)
	case *ast.DoWhile:
		c.checkStatement(n.Body, expected)
		condType := c.checkExpr(n.Cond)
		if !types.Compatible(condType, types.Bool) {
			c.errorf(InvalidType, n.Cond, "do-while condition must be Bool, got %s", condType)
		}
	case *ast.Return:
		if n.Value == nil {
			if !types.Compatible(expected, types.Unit) {
				c.errorf(InvalidReturnType, n, "bare return in function expecting %s", expected)
			}
			return
		}
		valType := c.checkExpr(n.Value)
		if !types.Compatible(valType, expected) {
			c.errorf(InvalidReturnType, n.Value, "return type %s does not match expected %s", valType, expected)
		}
	case *ast.Assert:
		condType := c.checkExpr(n.X)
		if !types.Compatible(condType, types.Bool) {
			c.errorf(InvalidType, n.X, "assert expression must be Bool, got %s", condType)
		}
	case *ast.DeclStmt:
		switch d := n.Decl.(type) {
		case *ast.VariableDecl:
			c.checkVariableDecl(d)
		case *ast.FunctionDecl:
			c.checkFunctionDecl(d)
		}
	}
}
