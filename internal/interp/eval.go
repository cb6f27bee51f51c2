package interp

import (
	"errors"
	"fmt"

	"axiomlang/internal/ast"
	"axiomlang/internal/diag"
)

func (in *Interpreter) execStmt(st ast.Stmt) (Value, bool, *diag.Diagnostic) {
	switch s := st.(type) {
	case *ast.LetStmt:
		v, d := in.evalExpr(s.Value)
		if d != nil {
			return Value{}, false, d
		}
		in.Env.Set(s.Name, v)
		return Value{}, false, nil
	case *ast.ExprStmt:
		v, d := in.evalExpr(s.Expr)
		if d != nil {
			return Value{}, false, d
		}
		return v, true, nil
	default:
		return Value{}, false, diag.At(diag.RuntimeError, st.Span(), "Unsupported Statement", fmt.Sprintf("cannot execute %T", st))
	}
}

func (in *Interpreter) evalExpr(ex ast.Expr) (Value, *diag.Diagnostic) {
	switch e := ex.(type) {
	case *ast.IntLit:
		return IntValue(e.Value), nil
	case *ast.NowExpr:
		t := in.time
		in.time++
		return TimeValue(t), nil
	case *ast.VarExpr:
		v, ok := in.Env.Get(e.Name)
		if !ok {
			return Value{}, diag.At(diag.RuntimeError, e.S, "Undefined Variable",
				fmt.Sprintf("the variable '%s' has no value", e.Name)).
				WithHelp("Define the variable with `let` before using it.")
		}
		return v, nil
	case *ast.BinaryExpr:
		l, d := in.evalExpr(e.Left)
		if d != nil {
			return Value{}, d
		}
		r, d := in.evalExpr(e.Right)
		if d != nil {
			return Value{}, d
		}
		if l.K != VInt || r.K != VInt {
			return Value{}, diag.At(diag.RuntimeError, e.S, "Type Mismatch",
				fmt.Sprintf("cannot apply `%s` to %s and %s", e.Op, l.Type(), r.Type()))
		}
		n, err := arith(e.Op, l.I, r.I)
		if err != nil {
			return Value{}, arithDiag(e, l.I, r.I, err)
		}
		return IntValue(n), nil
	default:
		return Value{}, diag.At(diag.RuntimeError, ex.Span(), "Unsupported Expression", fmt.Sprintf("cannot evaluate %T", ex))
	}
}

func arithDiag(e *ast.BinaryExpr, a, b int64, err error) *diag.Diagnostic {
	switch {
	case errors.Is(err, errDivByZero):
		return diag.At(diag.RuntimeError, e.S, "Division By Zero",
			fmt.Sprintf("cannot divide %d by zero", a)).
			WithHelp("Make sure the divisor is never 0.")
	case errors.Is(err, errOverflow):
		return diag.At(diag.RuntimeError, e.S, "Integer Overflow",
			fmt.Sprintf("%d %s %d does not fit in a 64-bit signed integer", a, e.Op, b))
	default:
		return diag.At(diag.RuntimeError, e.S, "Arithmetic Error", err.Error())
	}
}
