package main

import (
	"errors"
	"fmt"

	"github.com/avoronkov/recur/types"
)

var errEmptyArgument = errors.New("cannot add up an empty list")

type nativeFunc struct {
	name string
	fn   func([]types.Expr) (types.Expr, error)
	args []types.Type
	// type of trailing variadic arguments, TypeUnknown if none
	rest types.Type
	ret  types.Type
}

func EvalerFunc(name string, fn func([]types.Expr) (types.Expr, error), ret types.Type, args ...types.Type) *nativeFunc {
	return &nativeFunc{
		name: name,
		fn:   fn,
		args: args,
		rest: types.TypeUnknown,
		ret:  ret,
	}
}

func VariadicFunc(name string, fn func([]types.Expr) (types.Expr, error), ret, rest types.Type) *nativeFunc {
	return &nativeFunc{
		name: name,
		fn:   fn,
		rest: rest,
		ret:  ret,
	}
}

func (n *nativeFunc) Eval(args []types.Expr) (types.Expr, error) {
	if err := n.bind(args, func(e types.Expr) types.Type { return e.Type() }); err != nil {
		return nil, err
	}
	return n.fn(args)
}

// bind checks argument count and types; typeOf reports the type an argument
// has or will have after evaluation.
func (n *nativeFunc) bind(args []types.Expr, typeOf func(types.Expr) types.Type) error {
	if n.rest == types.TypeUnknown && len(args) != len(n.args) {
		return fmt.Errorf("expected %d argument(s), found %d", len(n.args), len(args))
	}
	if len(args) < len(n.args) {
		return fmt.Errorf("expected at least %d argument(s), found %d", len(n.args), len(args))
	}
	for i, arg := range args {
		want := n.rest
		if i < len(n.args) {
			want = n.args[i]
		}
		have := typeOf(arg)
		if have == types.TypeAny || have == types.TypeUnknown {
			continue
		}
		if !want.Accepts(have) {
			return fmt.Errorf("argument %d should be %v, found %v", i+1, want, printed(arg))
		}
	}
	return nil
}

func MakeIntOperation(name string, zero func() types.Int, op func(x, y types.Int) types.Int) func([]types.Expr) (types.Expr, error) {
	return func(args []types.Expr) (types.Expr, error) {
		result := zero()
		for _, arg := range args {
			a, ok := arg.(types.Int)
			if !ok {
				return nil, fmt.Errorf("%v: expected integer argument, found %v", name, arg)
			}
			result = op(result, a)
		}
		return result, nil
	}
}

func listArg(args []types.Expr) types.List {
	return args[0].(types.List)
}

func (in *Interpret) FMakeList(args []types.Expr) (types.Expr, error) {
	n := args[0].(types.Int)
	if !n.IsInt64() {
		return nil, fmt.Errorf("%w: %v", types.ErrTooLong, printed(n))
	}
	l, err := types.MakeList(n.Int64(), in.ints)
	if err != nil {
		return nil, err
	}
	in.nodes += n.Int64()
	return l, nil
}

func (in *Interpret) FAddUp(args []types.Expr) (types.Expr, error) {
	return types.Sum(listArg(args), in.ints), nil
}

// Sums a non-empty list the way a node method would.
func FAddUpNode(args []types.Expr) (types.Expr, error) {
	node, ok := listArg(args).(*types.Node)
	if !ok {
		return nil, errEmptyArgument
	}
	return node.AddUp(), nil
}

func (in *Interpret) FLen(args []types.Expr) (types.Expr, error) {
	return in.ints.MakeInt(int64(types.Len(listArg(args)))), nil
}

func FHead(args []types.Expr) (types.Expr, error) {
	return listArg(args).Head()
}

func FTail(args []types.Expr) (types.Expr, error) {
	return listArg(args).Tail()
}

func FEmpty(args []types.Expr) (types.Expr, error) {
	return types.Bool(listArg(args).Empty()), nil
}

func (in *Interpret) FList(args []types.Expr) (types.Expr, error) {
	values := make([]types.Int, 0, len(args))
	for _, arg := range args {
		values = append(values, arg.(types.Int))
	}
	in.nodes += int64(len(values))
	return types.FromSlice(values...), nil
}

func (in *Interpret) FCons(args []types.Expr) (types.Expr, error) {
	in.nodes++
	return types.Cons(args[0].(types.Int), listArg(args[1:])), nil
}

func FEq(args []types.Expr) (types.Expr, error) {
	return types.Bool(types.Equal(args[0], args[1])), nil
}

func FLess(args []types.Expr) (types.Expr, error) {
	return types.Bool(args[0].(types.Int).Less(args[1].(types.Int))), nil
}

func (in *Interpret) FPrint(args []types.Expr) (types.Expr, error) {
	for i, e := range args {
		if i > 0 {
			fmt.Fprintf(in.output, " ")
		}
		e.Print(in.output)
	}
	fmt.Fprintf(in.output, "\n")
	return types.Empty, nil
}
