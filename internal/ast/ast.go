package ast

import (
	"strconv"
	"strings"

	"axiomlang/internal/source"
)

// Program is the ordered statement list of one source file.
type Program struct {
	Stmts []Stmt
}

type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Stmt
type Stmt interface {
	stmtNode()
	Span() source.Span
}

type LetStmt struct {
	Name  string
	Value Expr
	S     source.Span
}

func (*LetStmt) stmtNode()           {}
func (s *LetStmt) Span() source.Span { return s.S }

type ExprStmt struct {
	Expr Expr
	S    source.Span
}

func (*ExprStmt) stmtNode()           {}
func (s *ExprStmt) Span() source.Span { return s.S }

// Expr
type Expr interface {
	exprNode()
	Span() source.Span
}

type IntLit struct {
	Value int64
	S     source.Span
}

func (*IntLit) exprNode()           {}
func (e *IntLit) Span() source.Span { return e.S }

type VarExpr struct {
	Name string
	S    source.Span
}

func (*VarExpr) exprNode()           {}
func (e *VarExpr) Span() source.Span { return e.S }

// NowExpr reads and advances the interpreter clock.
type NowExpr struct {
	S source.Span
}

func (*NowExpr) exprNode()           {}
func (e *NowExpr) Span() source.Span { return e.S }

type BinaryExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
	S     source.Span
}

func (*BinaryExpr) exprNode()           {}
func (e *BinaryExpr) Span() source.Span { return e.S }

// Format renders a statement as an S-expression, e.g. (let x (+ 2 (* 3 4))).
func Format(st Stmt) string {
	var b strings.Builder
	writeStmt(&b, st)
	return b.String()
}

// FormatExpr renders an expression as an S-expression.
func FormatExpr(ex Expr) string {
	var b strings.Builder
	writeExpr(&b, ex)
	return b.String()
}

// Format renders every statement on its own line.
func (p *Program) Format() string {
	var b strings.Builder
	for _, st := range p.Stmts {
		writeStmt(&b, st)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeStmt(b *strings.Builder, st Stmt) {
	switch s := st.(type) {
	case *LetStmt:
		b.WriteString("(let ")
		b.WriteString(s.Name)
		b.WriteByte(' ')
		writeExpr(b, s.Value)
		b.WriteByte(')')
	case *ExprStmt:
		writeExpr(b, s.Expr)
	default:
		b.WriteString("<bad stmt>")
	}
}

func writeExpr(b *strings.Builder, ex Expr) {
	switch e := ex.(type) {
	case *IntLit:
		b.WriteString(strconv.FormatInt(e.Value, 10))
	case *VarExpr:
		b.WriteString(e.Name)
	case *NowExpr:
		b.WriteString("now")
	case *BinaryExpr:
		b.WriteByte('(')
		b.WriteString(e.Op.String())
		b.WriteByte(' ')
		writeExpr(b, e.Left)
		b.WriteByte(' ')
		writeExpr(b, e.Right)
		b.WriteByte(')')
	default:
		b.WriteString("<bad expr>")
	}
}
