package eval

import (
	"github.com/devin-lang/devin/internal/ast"
	"github.com/devin-lang/devin/internal/value"
)

// execBlock runs a block in a fresh child scope, pre-registering any nested
// function declarations first so forward and mutual references among
// sibling nested defs resolve regardless of textual order, mirroring the
// checker's own pre-pass in checkBlock.
func (e *Evaluator) execBlock(b *ast.Block, parent *Scope) (result, error) {
	scope := NewEnclosedScope(parent)
	for _, item := range b.Items {
		if ds, ok := item.(*ast.DeclStmt); ok {
			if fd, ok := ds.Decl.(*ast.FunctionDecl); ok {
				scope.Declare(fd.Name, fd)
			}
		}
	}
	for _, item := range b.Items {
		res, err := e.execStatement(item, scope)
		if err != nil {
			return result{}, err
		}
		if res.returning {
			return res, nil
		}
	}
	return continuing, nil
}

func (e *Evaluator) execStatement(s ast.Statement, scope *Scope) (result, error) {
	switch n := s.(type) {
	case *ast.Block:
		return e.execBlock(n, scope)

	case *ast.ExprStmt:
		if _, err := e.evalExpr(n.X, scope); err != nil {
			return result{}, err
		}
		return continuing, nil

	case *ast.If:
		cond, err := e.evalExpr(n.Cond, scope)
		if err != nil {
			return result{}, err
		}
		if cond.(*value.Bool).V {
			return e.execStatement(n.Then, scope)
		}
		if n.Else != nil {
			return e.execStatement(n.Else, scope)
		}
		return continuing, nil

	case *ast.While:
		for {
			cond, err := e.evalExpr(n.Cond, scope)
			if err != nil {
				return result{}, err
			}
			if !cond.(*value.Bool).V {
				return continuing, nil
			}
			res, err := e.execStatement(n.Body, scope)
			if err != nil {
				return result{}, err
			}
			if res.returning {
				return res, nil
			}
		}

	case *ast.DoWhile:
		for {
			res, err := e.execStatement(n.Body, scope)
			if err != nil {
				return result{}, err
			}
			if res.returning {
				return res, nil
			}
			cond, err := e.evalExpr(n.Cond, scope)
			if err != nil {
				return result{}, err
			}
			if !cond.(*value.Bool).V {
				return continuing, nil
			}
		}

	case *ast.Return:
		if n.Value == nil {
			return returning(value.TheUnit), nil
		}
		v, err := e.evalExpr(n.Value, scope)
		if err != nil {
			return result{}, err
		}
		return returning(v), nil

	case *ast.Assert:
		v, err := e.evalExpr(n.X, scope)
		if err != nil {
			return result{}, err
		}
		if !v.(*value.Bool).V {
			return result{}, newError(AssertionFailure, n.X.Span(), "assertion failed: %s", n.X.String())
		}
		return continuing, nil

	case *ast.DeclStmt:
		return e.execDeclStmt(n, scope)

	default:
		return continuing, nil
	}
}

func (e *Evaluator) execDeclStmt(d *ast.DeclStmt, scope *Scope) (result, error) {
	switch decl := d.Decl.(type) {
	case *ast.FunctionDecl:
		// Already pre-registered by execBlock's forward-reference pass.
		return continuing, nil
	case *ast.VariableDecl:
		v, err := e.evalExpr(decl.Init, scope)
		if err != nil {
			return result{}, err
		}
		scope.Bind(decl.Name, value.NewCell(value.CopyDeep(v)))
		return continuing, nil
	}
	return continuing, nil
}
