package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/avoronkov/recur/config"
	"github.com/avoronkov/recur/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	trace      bool
	bigint     bool
	stat       bool
	check      bool
	node       bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "recur [file]",
		Short: "Build and add up recursive integer lists",
		Long: `recur evaluates small programs over recursive integer lists.

Example:
  (print (make-list 4))          ; '(4 3 2 1)
  (print (add-up (make-list 5))) ; 15

Without a file the program is read from stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runProgram(cmd, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.trace, "trace", "t", false, "trace function calls")
	flags.BoolVarP(&opts.bigint, "big", "b", false, "use big math")
	flags.BoolVarP(&opts.stat, "stat", "s", false, "dump statistics after program exit")
	flags.BoolVarP(&opts.check, "check", "c", false, "make parsing and checking only")
	flags.StringVar(&opts.configPath, "config", "recur.yaml", "path to config file")

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runProgram(cmd, args)
		},
	}

	makeCmd := &cobra.Command{
		Use:   "make N",
		Short: "Print the list N, N-1, ..., 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.makeList(args[0])
			if err != nil {
				return err
			}
			l.Print(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	sumCmd := &cobra.Command{
		Use:   "sum N",
		Short: "Print the sum of the list N, N-1, ..., 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.makeList(args[0])
			if err != nil {
				return err
			}
			var sum types.Int
			if opts.node {
				node, ok := l.(*types.Node)
				if !ok {
					return errEmptyArgument
				}
				sum = node.AddUp()
			} else {
				sum = types.Sum(l, opts.ints())
			}
			sum.Print(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	sumCmd.Flags().BoolVar(&opts.node, "node", false, "add up starting from the head node (fails on an empty list)")

	rootCmd.AddCommand(runCmd, makeCmd, sumCmd)
	return rootCmd
}

// init merges the config file with flags. Flags set explicitly win.
func (o *options) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("big") {
		cfg.BigInt = o.bigint
	}
	if flags.Changed("trace") {
		cfg.Trace = o.trace
	}
	o.cfg = cfg

	o.logger, err = cfg.NewLogger()
	if err != nil {
		return err
	}
	o.logger.Debug("configuration loaded",
		zap.String("path", o.configPath),
		zap.Bool("big_int", cfg.BigInt),
		zap.Bool("trace", cfg.Trace))
	return nil
}

func (o *options) ints() types.IntMaker {
	if o.cfg.BigInt {
		return types.BigIntMaker{}
	}
	return types.Int64Maker{}
}

func (o *options) makeList(arg string) (types.List, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid list length %q: %w", arg, err)
	}
	return types.MakeList(n, o.ints())
}

func (o *options) runProgram(cmd *cobra.Command, args []string) error {
	var input io.Reader = cmd.InOrStdin()
	file := "__stdin__"
	if len(args) == 1 {
		file = args[0]
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	in := NewInterpreter(cmd.OutOrStdout(), o.logger.Named("interpreter"))
	in.UseBigInt(o.cfg.BigInt)

	if err := in.Parse(input); err != nil {
		return fmt.Errorf("%v: %w", file, err)
	}
	if errs := in.Check(); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v: %v\n", file, err)
		}
		return fmt.Errorf("%v: %d error(s) found", file, len(errs))
	}
	if o.check {
		return nil
	}

	if err := in.Run(); err != nil {
		return fmt.Errorf("%v: %w", file, err)
	}
	if o.stat {
		in.Stat(cmd.ErrOrStderr())
	}
	o.logger.Debug("program finished", zap.String("file", file))
	return nil
}

func doMain() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(doMain())
}
