package main

import (
	"fmt"
	"io"

	"github.com/avoronkov/recur/types"
	"go.uber.org/zap"
)

type Interpret struct {
	output    io.Writer
	funcs     map[string]*nativeFunc
	mainBody  []types.Expr
	mainLines []int // source line of each top-level form
	ints      types.IntMaker
	logger    *zap.Logger

	// statistics
	nodes int64
	calls int64
}

func NewInterpreter(w io.Writer, logger *zap.Logger) *Interpret {
	if logger == nil {
		logger = zap.NewNop()
	}
	i := &Interpret{
		output: w,
		ints:   types.Int64Maker{},
		logger: logger,
	}
	i.funcs = map[string]*nativeFunc{
		"make-list":   EvalerFunc("make-list", i.FMakeList, types.TypeList, types.TypeInt),
		"add-up":      EvalerFunc("add-up", i.FAddUp, types.TypeInt, types.TypeList),
		"add-up-node": EvalerFunc("add-up-node", FAddUpNode, types.TypeInt, types.TypeList),
		"len":         EvalerFunc("len", i.FLen, types.TypeInt, types.TypeList),
		"head":        EvalerFunc("head", FHead, types.TypeInt, types.TypeList),
		"tail":        EvalerFunc("tail", FTail, types.TypeList, types.TypeList),
		"empty":       EvalerFunc("empty", FEmpty, types.TypeBool, types.TypeList),
		"cons":        EvalerFunc("cons", i.FCons, types.TypeList, types.TypeInt, types.TypeList),
		"=":           EvalerFunc("=", FEq, types.TypeBool, types.TypeAny, types.TypeAny),
		"<":           EvalerFunc("<", FLess, types.TypeBool, types.TypeInt, types.TypeInt),
		"list":        VariadicFunc("list", i.FList, types.TypeList, types.TypeInt),
		"+":           VariadicFunc("+", MakeIntOperation("+", i.zero, types.Int.Plus), types.TypeInt, types.TypeInt),
		"print":       VariadicFunc("print", i.FPrint, types.TypeList, types.TypeAny),
	}
	return i
}

func (i *Interpret) UseBigInt(v bool) {
	if v {
		i.ints = types.BigIntMaker{}
	} else {
		i.ints = types.Int64Maker{}
	}
}

func (i *Interpret) zero() types.Int {
	return i.ints.MakeInt(0)
}

func (i *Interpret) Parse(input io.Reader) error {
	parser := NewParser(input, i.ints)
	for {
		expr, err := parser.NextExpr()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if se, ok := expr.(*Sexpr); ok {
			if name, _ := se.Name(); name == "use" {
				if err := i.use(se); err != nil {
					return err
				}
				parser.SetIntMaker(i.ints)
				continue
			}
		}
		i.mainBody = append(i.mainBody, expr)
		i.mainLines = append(i.mainLines, parser.line)
	}
}

// (use bigmath)
func (i *Interpret) use(se *Sexpr) error {
	args := se.Args()
	if len(args) != 1 {
		return fmt.Errorf("line %d: 'use' expected one argument, found: %v", se.Line, printed(se))
	}
	if len(i.mainBody) > 0 {
		return fmt.Errorf("line %d: 'use' must precede other forms", se.Line)
	}
	switch args[0] {
	case types.Ident("bigmath"):
		i.UseBigInt(true)
	case types.Ident("int64"):
		i.UseBigInt(false)
	default:
		return fmt.Errorf("line %d: Unknown use-directive: %v", se.Line, printed(args[0]))
	}
	return nil
}

// Check validates every top-level form without evaluating it.
func (i *Interpret) Check() (errs []error) {
	for n, expr := range i.mainBody {
		if _, err := i.exprType(expr, i.mainLines[n]); err != nil {
			errs = append(errs, err)
		}
	}
	return
}

// line is where expr appears; identifiers do not carry their own.
func (i *Interpret) exprType(expr types.Expr, line int) (types.Type, error) {
	se, ok := expr.(*Sexpr)
	if !ok {
		if id, ok := expr.(types.Ident); ok {
			return types.TypeUnknown, unknownIdent(line, id)
		}
		return expr.Type(), nil
	}
	fn, err := i.lookup(se)
	if err != nil {
		return types.TypeUnknown, err
	}
	argTypes := make(map[types.Expr]types.Type)
	for _, arg := range se.Args() {
		t, err := i.exprType(arg, se.Line)
		if err != nil {
			return types.TypeUnknown, err
		}
		argTypes[arg] = t
	}
	err = fn.bind(se.Args(), func(e types.Expr) types.Type {
		if t, ok := argTypes[e]; ok {
			return t
		}
		return types.TypeUnknown
	})
	if err != nil {
		return types.TypeUnknown, fmt.Errorf("line %d: %v: %w", se.Line, fn.name, err)
	}
	return fn.ret, nil
}

func (i *Interpret) lookup(se *Sexpr) (*nativeFunc, error) {
	name, ok := se.Name()
	if !ok {
		return nil, fmt.Errorf("line %d: expected function name, found %v", se.Line, printed(se))
	}
	fn, ok := i.funcs[name]
	if !ok {
		return nil, fmt.Errorf("line %d: Unknown function: %v", se.Line, name)
	}
	return fn, nil
}

func (i *Interpret) Run() error {
	for n, expr := range i.mainBody {
		if _, err := i.eval(expr, i.mainLines[n]); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpret) eval(expr types.Expr, line int) (types.Expr, error) {
	switch a := expr.(type) {
	case *Sexpr:
		return i.call(a)
	case types.Ident:
		return nil, unknownIdent(line, a)
	}
	return expr, nil
}

func unknownIdent(line int, id types.Ident) error {
	return fmt.Errorf("line %d: Unknown identifier: %v", line, string(id))
}

func (i *Interpret) call(se *Sexpr) (types.Expr, error) {
	fn, err := i.lookup(se)
	if err != nil {
		return nil, err
	}
	args := make([]types.Expr, 0, len(se.Args()))
	for _, arg := range se.Args() {
		v, err := i.eval(arg, se.Line)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	i.calls++
	i.logger.Debug("call", zap.String("func", fn.name), zap.Int("line", se.Line), zap.Stringers("args", args))
	res, err := fn.Eval(args)
	if err != nil {
		return nil, fmt.Errorf("line %d: %v: %w", se.Line, fn.name, err)
	}
	return res, nil
}

func (i *Interpret) Stat(w io.Writer) {
	fmt.Fprintf(w, "Calls: %d\n", i.calls)
	fmt.Fprintf(w, "List nodes created: %d\n", i.nodes)
}
