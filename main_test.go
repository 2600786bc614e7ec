package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avoronkov/recur/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestMakeCommand(t *testing.T) {
	out, _, err := execute(t, "", "make", "4")
	require.NoError(t, err)
	assert.Equal(t, "'(4 3 2 1)\n", out)

	tests := []struct {
		args   []string
		target error
	}{
		{[]string{"make", "--", "-3"}, types.ErrNegativeLength},
		{[]string{"make", "100000000"}, types.ErrTooLong},
		{[]string{"sum", "100000000"}, types.ErrTooLong},
		{[]string{"sum", "--node", "1048577"}, types.ErrTooLong},
	}
	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			_, _, err := execute(t, "", test.args...)
			assert.ErrorIs(t, err, test.target)
		})
	}
}

func TestSumCommand(t *testing.T) {
	tests := []struct {
		args []string
		exp  string
	}{
		{[]string{"sum", "5"}, "15\n"},
		{[]string{"sum", "0"}, "0\n"},
		{[]string{"sum", "--node", "4"}, "10\n"},
	}
	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			out, _, err := execute(t, "", test.args...)
			require.NoError(t, err)
			assert.Equal(t, test.exp, out)
		})
	}

	_, _, err := execute(t, "", "sum", "--node", "0")
	assert.ErrorIs(t, err, errEmptyArgument)
}

func TestBigFlag(t *testing.T) {
	const program = "(print (+ 9223372036854775807 1))\n"

	out, _, err := execute(t, program, "--big")
	require.NoError(t, err)
	assert.Equal(t, "9223372036854775808\n", out)

	out, _, err = execute(t, program)
	require.NoError(t, err)
	assert.Equal(t, "-9223372036854775808\n", out)
}

func TestRunStdin(t *testing.T) {
	out, _, err := execute(t, "(print (add-up (make-list 5)))\n")
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.lisp")
	require.NoError(t, os.WriteFile(path, []byte("(print (make-list 3))\n"), 0644))

	out, stderr, err := execute(t, "", "run", "--stat", path)
	require.NoError(t, err)
	assert.Equal(t, "'(3 2 1)\n", out)
	assert.Contains(t, stderr, "List nodes created: 3")
}

func TestRunCheckOnly(t *testing.T) {
	out, _, err := execute(t, "(print 1)\n", "--check")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, stderr, err := execute(t, "(feed 1)\n", "--check")
	assert.EqualError(t, err, "__stdin__: 1 error(s) found")
	assert.Contains(t, stderr, "Unknown function: feed")
}

func TestConfigBigInt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recur.yaml")
	require.NoError(t, os.WriteFile(path, []byte("big_int: true\n"), 0644))

	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{"--config", path, "run"})
	cmd.SetIn(strings.NewReader("(print (+ 9223372036854775807 1))\n"))
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "9223372036854775808\n", stdout.String())
}
