package interp

import (
	"fmt"

	"axiomlang/internal/typecheck"
)

type ValueKind int

const (
	VInt ValueKind = iota
	VTime
)

// Value is a runtime result. Int and Time share an int64 payload but are
// never interchangeable.
type Value struct {
	K ValueKind
	I int64
}

func IntValue(n int64) Value  { return Value{K: VInt, I: n} }
func TimeValue(t int64) Value { return Value{K: VTime, I: t} }

// Type returns the static type a value of this kind inhabits.
func (v Value) Type() typecheck.Type {
	if v.K == VTime {
		return typecheck.Time
	}
	return typecheck.Int
}

func (v Value) String() string {
	switch v.K {
	case VInt:
		return fmt.Sprintf("Int(%d)", v.I)
	case VTime:
		return fmt.Sprintf("Time(%d)", v.I)
	default:
		return "<bad>"
	}
}
