package typecheck

import (
	"fmt"

	"axiomlang/internal/ast"
	"axiomlang/internal/diag"
)

// Check validates prog statement by statement and stops at the first
// diagnostic. The AST is not modified.
func Check(prog *ast.Program) (*CheckedProgram, *diag.Diagnostic) {
	c := &checker{
		vars:      env{},
		exprTypes: map[ast.Expr]Type{},
		letTypes:  map[*ast.LetStmt]Type{},
	}
	for _, st := range prog.Stmts {
		if d := c.checkStmt(st); d != nil {
			return nil, d
		}
	}
	return &CheckedProgram{Prog: prog, ExprTypes: c.exprTypes, LetTypes: c.letTypes}, nil
}

type checker struct {
	vars      env
	exprTypes map[ast.Expr]Type
	letTypes  map[*ast.LetStmt]Type
}

func (c *checker) checkStmt(st ast.Stmt) *diag.Diagnostic {
	switch s := st.(type) {
	case *ast.LetStmt:
		ty, d := c.checkExpr(s.Value)
		if d != nil {
			return d
		}
		c.bind(s.Name, ty)
		c.letTypes[s] = ty
		return nil
	case *ast.ExprStmt:
		_, d := c.checkExpr(s.Expr)
		return d
	default:
		return diag.At(diag.TypeError, st.Span(), "Unsupported Statement", fmt.Sprintf("cannot check %T", st))
	}
}

func (c *checker) checkExpr(ex ast.Expr) (Type, *diag.Diagnostic) {
	switch e := ex.(type) {
	case *ast.IntLit:
		return c.setExprType(ex, Int), nil
	case *ast.NowExpr:
		return c.setExprType(ex, Time), nil
	case *ast.VarExpr:
		ty, ok := c.lookupVar(e.Name)
		if !ok {
			return Type{}, diag.At(diag.TypeError, e.S, "Unproven Variable",
				fmt.Sprintf("the variable '%s' is used here, but no proof exists that it has been defined", e.Name)).
				WithHelp("Define the variable before using it.")
		}
		return c.setExprType(ex, ty), nil
	case *ast.BinaryExpr:
		left, d := c.checkExpr(e.Left)
		if d != nil {
			return Type{}, d
		}
		right, d := c.checkExpr(e.Right)
		if d != nil {
			return Type{}, d
		}
		if left.K != TyInt || right.K != TyInt {
			return Type{}, diag.At(diag.TypeError, e.S, "Type Mismatch",
				fmt.Sprintf("cannot apply `%s` to %s and %s", e.Op, left, right)).
				WithHelp("Both sides of this operation must be Int; Time values have no arithmetic.")
		}
		return c.setExprType(ex, Int), nil
	default:
		return Type{}, diag.At(diag.TypeError, ex.Span(), "Unsupported Expression", fmt.Sprintf("cannot check %T", ex))
	}
}

func (c *checker) setExprType(ex ast.Expr, ty Type) Type {
	c.exprTypes[ex] = ty
	return ty
}
