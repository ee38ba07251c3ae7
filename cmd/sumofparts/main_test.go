package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TudorHulban/sumofparts/internal/cli"
)

const _Example = `Step C must be finished before step A can begin.
Step C must be finished before step F can begin.
Step A must be finished before step B can begin.
Step A must be finished before step D can begin.
Step B must be finished before step E can begin.
Step D must be finished before step E can begin.
Step F must be finished before step E can begin.
`

func TestRunStdin(t *testing.T) {
	var out, logs bytes.Buffer

	errRun := run(
		context.Background(),
		strings.NewReader(_Example),
		&out,
		&logs,
		[]string{"-workers", "2", "-offset", "0", "-parts", "1,2", "-"},
	)
	require.NoError(t, errRun)

	require.Contains(t, out.String(), "Day 7 Part 1: CABDFE")
	require.Contains(t, out.String(), "Day 7 Part 2: 15")
	require.Contains(t, logs.String(), "day completed.")
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(_Example), 0o600))

	var out, logs bytes.Buffer

	errRun := run(
		context.Background(),
		strings.NewReader(""),
		&out,
		&logs,
		[]string{"-parts", "Schedule", path},
	)
	require.NoError(t, errRun)

	require.Contains(t, out.String(), "Day 7 Part Schedule: \nSchedule:")
	require.Contains(t, out.String(), "Elapsed: 253")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
	}{
		{
			name:  "1. malformed input",
			input: "Step C must be done before step A can begin.",
			args:  []string{"-"},
		},
		{
			name: "2. missing file",
			args: []string{filepath.Join(t.TempDir(), "missing.txt")},
		},
		{
			name:  "3. unknown day",
			input: _Example,
			args:  []string{"-day", "1", "-"},
		},
		{
			name:  "4. unknown part",
			input: _Example,
			args:  []string{"-parts", "3", "-"},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				var out, logs bytes.Buffer

				errRun := run(
					context.Background(),
					strings.NewReader(tt.input),
					&out,
					&logs,
					tt.args,
				)
				require.Error(t, errRun)

				var errExit *cli.ExitError
				require.ErrorAs(t, errRun, &errExit)
				require.Equal(t, 2, errExit.Code)
			},
		)
	}
}
