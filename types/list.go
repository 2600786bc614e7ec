package types

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxLength bounds MakeList. Construction and the recursive traversals use
// one stack frame per node, and a goroutine stack overflow cannot be recovered.
const MaxLength = 1 << 20

var (
	ErrNegativeLength = errors.New("negative list length")
	ErrTooLong        = errors.New("list length exceeds limit")
)

// List is either Empty or a *Node owning the rest of the chain.
// Nodes are immutable and can only link to an already built list,
// so every chain is finite and ends with Empty.
type List interface {
	Expr
	Head() (Int, error)
	Tail() (List, error)
	Empty() bool
	list()
}

type emptyList struct{}

var Empty List = emptyList{}

func (emptyList) Head() (Int, error) {
	return nil, fmt.Errorf("Cannot perform Head() on empty list")
}

func (emptyList) Tail() (List, error) {
	return nil, fmt.Errorf("Cannot perform Tail() on empty list")
}

func (emptyList) Empty() bool       { return true }
func (emptyList) Type() Type        { return TypeList }
func (emptyList) String() string    { return "{List:}" }
func (emptyList) Print(w io.Writer) { io.WriteString(w, "'()") }
func (emptyList) list()             {}

type Node struct {
	value Int
	rest  List
}

var _ List = (*Node)(nil)

func Cons(value Int, rest List) *Node {
	if rest == nil {
		rest = Empty
	}
	return &Node{value: value, rest: rest}
}

func (n *Node) Head() (Int, error) {
	return n.value, nil
}

func (n *Node) Tail() (List, error) {
	return n.rest, nil
}

func (n *Node) Empty() bool {
	return false
}

func (n *Node) Type() Type {
	return TypeList
}

func (n *Node) list() {}

func (n *Node) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "{List:")
	var l List = n
	for !l.Empty() {
		node := l.(*Node)
		fmt.Fprintf(b, " %v", node.value)
		l = node.rest
	}
	fmt.Fprintf(b, "}")
	return b.String()
}

func (n *Node) Print(w io.Writer) {
	io.WriteString(w, "'(")
	var l List = n
	for !l.Empty() {
		node := l.(*Node)
		if node != n {
			io.WriteString(w, " ")
		}
		node.value.Print(w)
		l = node.rest
	}
	io.WriteString(w, ")")
}

// AddUp sums the chain starting at n. The last node returns its own value,
// so unlike Sum there is no zero case.
func (n *Node) AddUp() Int {
	next, ok := n.rest.(*Node)
	if !ok {
		return n.value
	}
	rest := next.AddUp()
	return n.value.Plus(rest)
}

// MakeList returns the list n, n-1, ..., 1.
func MakeList(n int64, m IntMaker) (List, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	if n > MaxLength {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLong, n, MaxLength)
	}
	return makeList(n, m), nil
}

func makeList(n int64, m IntMaker) List {
	if n == 0 {
		return Empty
	}
	rest := makeList(n-1, m)
	return Cons(m.MakeInt(n), rest)
}

// Sum returns the sum of all values in l; the empty list sums to zero.
func Sum(l List, m IntMaker) Int {
	node, ok := l.(*Node)
	if !ok {
		return m.MakeInt(0)
	}
	rest := Sum(node.rest, m)
	return node.value.Plus(rest)
}

func Len(l List) int {
	node, ok := l.(*Node)
	if !ok {
		return 0
	}
	return 1 + Len(node.rest)
}

func FromSlice(values ...Int) List {
	l := Empty
	for i := len(values) - 1; i >= 0; i-- {
		l = Cons(values[i], l)
	}
	return l
}

func Values(l List) (res []Int) {
	for !l.Empty() {
		node := l.(*Node)
		res = append(res, node.value)
		l = node.rest
	}
	return
}

func ListEqual(a, b List) bool {
	if a.Empty() || b.Empty() {
		return a.Empty() && b.Empty()
	}
	na, nb := a.(*Node), b.(*Node)
	if !na.value.Eq(nb.value) {
		return false
	}
	return ListEqual(na.rest, nb.rest)
}
