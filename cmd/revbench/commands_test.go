package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_SmallRun(t *testing.T) {
	stdout, _, err := execute(t, "--range", "500", "--repeats", "3")
	require.NoError(t, err)

	assert.Contains(t, stdout, "[Modulo Multiply] Inverting 256 = 652")
	assert.Contains(t, stdout, "Timing functions 3x over range [-500, 500]")
	assert.Contains(t, stdout, "Timing 'Char Heap - Shared Alloc' function...")
	assert.Contains(t, stdout, "...\n")
	assert.Contains(t, stdout, "Results")
	assert.Contains(t, stdout, "vs fastest")
	assert.Contains(t, stdout, "called 3,003 times per timing cycle")

	for _, label := range []string{
		"Char Stack",
		"Char Stack - Range Algo",
		"Char Heap - Shared Alloc",
		"Char Heap - Always Alloc",
		"Modulo Lookup",
		"Modulo Multiply",
	} {
		assert.Contains(t, stdout, label)
	}
	assert.NotContains(t, stdout, "failed to maintain")
}

func TestRootCommand_SelectVariants(t *testing.T) {
	stdout, _, err := execute(t, "--range", "50", "--repeats", "1", "--variants", "modulo-lookup,stack-swap")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Timing 'Modulo Lookup' function...")
	assert.Contains(t, stdout, "Timing 'Char Stack' function...")
	assert.NotContains(t, stdout, "Timing 'Modulo Multiply' function...")
	assert.NotContains(t, stdout, "[Char Alloc     ]")
}

func TestRootCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown variant", []string{"--variants", "bogus"}, `unknown variant "bogus"`},
		{"zero repeats", []string{"--repeats", "0"}, "repeats must be at least 1"},
		{"negative range", []string{"--range", "-5"}, "range must not be negative"},
		{"bad log level", []string{"--log-level", "loud"}, "invalid log level"},
		{"range overflow", []string{"--range", "3000000000"}, "invalid argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error()+stderr, tt.want)
		})
	}
}

func TestValidateCommand(t *testing.T) {
	stdout, stderr, err := execute(t, "validate", "--", "1463847412", "-1000")
	require.NoError(t, err)

	assert.Contains(t, stdout, "[Char Stack     ] Inverting 1463847412 = 2147483641")
	assert.Contains(t, stdout, "[Char Shared    ] Inverting -1000 = -1")
	assert.Equal(t, 12, strings.Count(stdout, "Inverting"))
	assert.Contains(t, stderr, "variants agree")
}

func TestValidateCommand_Curated(t *testing.T) {
	stdout, _, err := execute(t, "validate", "--variants", "modulo-lookup")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Inverting -2147483648 = 0")
	assert.Contains(t, stdout, "Inverting 2147483647 = 0")
	assert.Equal(t, 23, strings.Count(stdout, "Inverting"))
}

func TestValidateCommand_BadValue(t *testing.T) {
	_, _, err := execute(t, "validate", "12abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `value "12abc" is not an int32`)
}

func TestListCommand(t *testing.T) {
	stdout, _, err := execute(t, "list")
	require.NoError(t, err)

	for _, name := range []string{
		"stack-swap", "stack-reverse", "heap-shared",
		"heap-alloc", "modulo-lookup", "modulo-multiply",
	} {
		assert.Contains(t, stdout, name)
	}
}
