package interp

import (
	"axiomlang/internal/ast"
	"axiomlang/internal/diag"
	"axiomlang/internal/typecheck"
)

// Interpreter executes statements against its own environment and clock.
// Instances share nothing, so independent runs never observe each other.
type Interpreter struct {
	Env  *Env
	time int64
}

func New() *Interpreter {
	return &Interpreter{Env: NewEnv()}
}

// Now reports the value the next `now` will return.
func (in *Interpreter) Now() int64 { return in.time }

// Run executes a checked program on a fresh interpreter.
func Run(p *typecheck.CheckedProgram) (Value, bool, *diag.Diagnostic) {
	return New().Execute(p.Prog)
}

// Execute runs prog in order and returns the value of the last expression
// statement. ok is false when the program has no expression statement.
func (in *Interpreter) Execute(prog *ast.Program) (Value, bool, *diag.Diagnostic) {
	var last Value
	ok := false
	for _, st := range prog.Stmts {
		v, isExpr, d := in.execStmt(st)
		if d != nil {
			return Value{}, false, d
		}
		if isExpr {
			last, ok = v, true
		}
	}
	return last, ok, nil
}
