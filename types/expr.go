package types

import (
	"fmt"
	"io"
)

type Expr interface {
	fmt.Stringer
	// Write yourself into writer
	Print(io.Writer)
	Type() Type
}

func Equal(a, b Expr) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case Int:
		return x.Eq(b.(Int))
	case List:
		return ListEqual(x, b.(List))
	}
	return a.String() == b.String()
}

type Bool bool

var _ Expr = Bool(false)

func (b Bool) String() string {
	if bool(b) {
		return "{Bool: 'T}"
	}
	return "{Bool: 'F}"
}

func (b Bool) Print(w io.Writer) {
	if bool(b) {
		io.WriteString(w, "true")
	} else {
		io.WriteString(w, "false")
	}
}

func (b Bool) Type() Type {
	return TypeBool
}
