package interp

import (
	"math"
	"strconv"
	"testing"

	"axiomlang/internal/ast"
	"axiomlang/internal/diag"
	"axiomlang/internal/parser"
	"axiomlang/internal/source"
	"axiomlang/internal/typecheck"
)

func TestCanonicalExample(t *testing.T) {
	v, ok := runMain(t, "let t = now\nt")
	if !ok || v != TimeValue(0) {
		t.Fatalf("expected Time(0), got %v (ok=%v)", v, ok)
	}
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{src: "2 + 3 * 4", want: 14},
		{src: "8 - 3 - 2", want: 3},
		{src: "10 / 3", want: 3},
		{src: "100 / 10 / 5", want: 2},
		{src: "0 - 7 / 2", want: -3},
		{src: "let x = 5\nlet x = 9\nx", want: 9},
		{src: "let a = 6\nlet b = a * a\nb - a", want: 30},
		{src: "9223372036854775807", want: math.MaxInt64},
		{src: "0 - 9223372036854775807 - 1", want: math.MinInt64},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			v, ok := runMain(t, tc.src)
			if !ok || v != IntValue(tc.want) {
				t.Fatalf("expected Int(%d), got %v (ok=%v)", tc.want, v, ok)
			}
		})
	}
}

func TestNowIsMonotonic(t *testing.T) {
	prog := parse(t, "let a = now\nlet b = now\na\nb\nnow")
	in := New()
	for i, st := range prog.Stmts {
		if _, _, d := in.execStmt(st); d != nil {
			t.Fatalf("stmt %d: %v", i, d)
		}
	}
	a, _ := in.Env.Get("a")
	b, _ := in.Env.Get("b")
	if a != TimeValue(0) || b != TimeValue(1) {
		t.Fatalf("a=%v b=%v, want Time(0) Time(1)", a, b)
	}
	if in.Now() != 3 {
		t.Fatalf("clock = %d, want 3", in.Now())
	}

	v, ok := runMain(t, "let a = now\nlet b = now\nnow")
	if !ok || v != TimeValue(2) {
		t.Fatalf("third now = %v, want Time(2)", v)
	}
}

func TestNowIsPerInterpreter(t *testing.T) {
	checked := check(t, "now")
	for i := 0; i < 3; i++ {
		v, ok, d := Run(checked)
		if d != nil || !ok || v != TimeValue(0) {
			t.Fatalf("run %d: got %v %v %v, want Time(0)", i, v, ok, d)
		}
	}
}

func TestNoExpressionStatement(t *testing.T) {
	v, ok := runMain(t, "let x = 1\nlet y = x + 1")
	if ok {
		t.Fatalf("expected no result, got %v", v)
	}
	_, ok = runMain(t, "")
	if ok {
		t.Fatalf("expected no result for empty program")
	}
}

func TestRuntimeErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		title string
	}{
		{name: "div_zero", src: "1 / 0", title: "Division By Zero"},
		{name: "div_zero_via_var", src: "let z = 3 - 3\n10 / z", title: "Division By Zero"},
		{name: "add_overflow", src: "9223372036854775807 + 1", title: "Integer Overflow"},
		{name: "sub_overflow", src: "0 - 9223372036854775807 - 2", title: "Integer Overflow"},
		{name: "mul_overflow", src: "4611686018427387904 * 2", title: "Integer Overflow"},
		{name: "div_overflow", src: "let m = 0 - 9223372036854775807 - 1\nlet n = 0 - 1\nm / n", title: "Integer Overflow"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, d := Run(check(t, tc.src))
			if d == nil {
				t.Fatalf("expected runtime diagnostic")
			}
			if d.Kind != diag.RuntimeError || d.Title != tc.title {
				t.Fatalf("got %v %q, want runtime error %q", d.Kind, d.Title, tc.title)
			}
		})
	}
}

func TestRuntimeErrorHaltsExecution(t *testing.T) {
	in := New()
	_, _, d := in.Execute(check(t, "let a = now\n1 / 0\nlet b = now").Prog)
	if d == nil {
		t.Fatalf("expected diagnostic")
	}
	if _, ok := in.Env.Get("b"); ok {
		t.Fatalf("statement after the failure was executed")
	}
	if in.Now() != 1 {
		t.Fatalf("clock = %d, want 1", in.Now())
	}
}

func TestUncheckedUnboundVariable(t *testing.T) {
	// Bypass the checker: the interpreter must still fail with a diagnostic.
	_, _, d := New().Execute(parse(t, "x + 1"))
	if d == nil || d.Kind != diag.RuntimeError || d.Title != "Undefined Variable" {
		t.Fatalf("unexpected result: %+v", d)
	}
}

func TestUncheckedTimeArithmetic(t *testing.T) {
	_, _, d := New().Execute(parse(t, "now + 1"))
	if d == nil || d.Kind != diag.RuntimeError || d.Title != "Type Mismatch" {
		t.Fatalf("unexpected result: %+v", d)
	}
	if d.Message != "cannot apply `+` to Time and Int" {
		t.Fatalf("message = %q", d.Message)
	}
}

func TestArith(t *testing.T) {
	cases := []struct {
		op      ast.BinOp
		a, b    int64
		want    int64
		wantErr error
	}{
		{op: ast.OpAdd, a: 2, b: 3, want: 5},
		{op: ast.OpSub, a: 2, b: 3, want: -1},
		{op: ast.OpMul, a: -4, b: 3, want: -12},
		{op: ast.OpMul, a: 0, b: math.MinInt64, want: 0},
		{op: ast.OpDiv, a: -7, b: 2, want: -3},
		{op: ast.OpDiv, a: 1, b: 0, wantErr: errDivByZero},
		{op: ast.OpDiv, a: math.MinInt64, b: -1, wantErr: errOverflow},
		{op: ast.OpMul, a: math.MinInt64, b: -1, wantErr: errOverflow},
		{op: ast.OpMul, a: math.MaxInt64, b: 2, wantErr: errOverflow},
		{op: ast.OpAdd, a: math.MinInt64, b: -1, wantErr: errOverflow},
		{op: ast.OpSub, a: math.MaxInt64, b: -1, wantErr: errOverflow},
	}
	for _, tc := range cases {
		name := strconv.FormatInt(tc.a, 10) + tc.op.String() + strconv.FormatInt(tc.b, 10)
		got, err := arith(tc.op, tc.a, tc.b)
		if err != tc.wantErr {
			t.Fatalf("%s: err = %v, want %v", name, err, tc.wantErr)
		}
		if err == nil && got != tc.want {
			t.Fatalf("%s = %d, want %d", name, got, tc.want)
		}
	}
}

func TestValueString(t *testing.T) {
	if IntValue(9).String() != "Int(9)" || TimeValue(0).String() != "Time(0)" {
		t.Fatalf("unexpected rendering")
	}
	if TimeValue(3).Type() != typecheck.Time || IntValue(3).Type() != typecheck.Int {
		t.Fatalf("unexpected value types")
	}
}

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, d := parser.Parse(source.NewFile("main.axi", src))
	if d != nil {
		t.Fatalf("parse diag: %v", d)
	}
	return prog
}

func check(t *testing.T, src string) *typecheck.CheckedProgram {
	t.Helper()
	checked, d := typecheck.Check(parse(t, src))
	if d != nil {
		t.Fatalf("type diag: %v", d)
	}
	return checked
}

func runMain(t *testing.T, src string) (Value, bool) {
	t.Helper()
	v, ok, d := Run(check(t, src))
	if d != nil {
		t.Fatalf("runtime diag: %v", d)
	}
	return v, ok
}
