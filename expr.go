package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/avoronkov/recur/types"
)

// Sexpr is an unquoted form: a builtin name followed by its arguments.
type Sexpr struct {
	List []types.Expr
	Line int
}

var _ types.Expr = (*Sexpr)(nil)

func (s *Sexpr) Print(w io.Writer) {
	io.WriteString(w, "(")
	for i, item := range s.List {
		if i != 0 {
			io.WriteString(w, " ")
		}
		item.Print(w)
	}
	io.WriteString(w, ")")
}

func (s *Sexpr) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "{S:")
	for _, item := range s.List {
		fmt.Fprintf(b, " %v", item)
	}
	fmt.Fprintf(b, "}")
	return b.String()
}

func (s *Sexpr) Type() types.Type {
	return types.TypeUnknown
}

func (s *Sexpr) Len() int {
	return len(s.List)
}

// Name returns the called builtin.
func (s *Sexpr) Name() (string, bool) {
	if len(s.List) == 0 {
		return "", false
	}
	id, ok := s.List[0].(types.Ident)
	return string(id), ok
}

func (s *Sexpr) Args() []types.Expr {
	if len(s.List) == 0 {
		return nil
	}
	return s.List[1:]
}

func printed(e types.Expr) string {
	b := &strings.Builder{}
	e.Print(b)
	return b.String()
}
