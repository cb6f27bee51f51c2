package interp

import (
	"fmt"
	"math"

	"axiomlang/internal/ast"
)

// arith applies op to two Int payloads, rejecting results that do not fit
// in an int64.
func arith(op ast.BinOp, a, b int64) (int64, error) {
	switch op {
	case ast.OpAdd:
		r := a + b
		if (b > 0 && r < a) || (b < 0 && r > a) {
			return 0, errOverflow
		}
		return r, nil
	case ast.OpSub:
		r := a - b
		if (b > 0 && r > a) || (b < 0 && r < a) {
			return 0, errOverflow
		}
		return r, nil
	case ast.OpMul:
		if a == 0 || b == 0 {
			return 0, nil
		}
		if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, errOverflow
		}
		r := a * b
		if r/b != a {
			return 0, errOverflow
		}
		return r, nil
	case ast.OpDiv:
		if b == 0 {
			return 0, errDivByZero
		}
		if a == math.MinInt64 && b == -1 {
			return 0, errOverflow
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("unknown operator %v", op)
	}
}

type arithError string

func (e arithError) Error() string { return string(e) }

const (
	errOverflow  arithError = "integer overflow"
	errDivByZero arithError = "division by zero"
)
