package typecheck

import "axiomlang/internal/ast"

type Kind int

const (
	TyBad Kind = iota
	TyInt
	TyTime
)

// Type is a nominal Axiom type. There is no subtyping and no coercion
// between Int and Time.
type Type struct {
	K Kind
}

func (t Type) String() string {
	switch t.K {
	case TyInt:
		return "Int"
	case TyTime:
		return "Time"
	default:
		return "<bad>"
	}
}

var (
	Int  = Type{K: TyInt}
	Time = Type{K: TyTime}
)

// CheckedProgram is a program that passed type checking, together with the
// types the checker computed for it.
type CheckedProgram struct {
	Prog      *ast.Program
	ExprTypes map[ast.Expr]Type
	LetTypes  map[*ast.LetStmt]Type
}

// TypeOf returns the recorded type of ex.
func (p *CheckedProgram) TypeOf(ex ast.Expr) (Type, bool) {
	t, ok := p.ExprTypes[ex]
	return t, ok
}
