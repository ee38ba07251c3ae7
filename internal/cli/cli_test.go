package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var out bytes.Buffer

	config, shouldExit, errParse := Parse(
		[]string{
			"-workers", "2",
			"-offset", "0",
			"-parts", " 1, Schedule ,",
			"-iterations", "3",
			"-log-level", "DEBUG",
			"input.txt",
		},
		&out,
	)
	require.NoError(t, errParse)
	require.False(t, shouldExit)

	expected := Config{
		InputPath:  "input.txt",
		LogFormat:  "text",
		LogLevel:   "debug",
		Parts:      []string{"1", "Schedule"},
		Day:        7,
		Iterations: 3,
		Workers:    2,
		Offset:     0,
	}

	if diff := cmp.Diff(&expected, config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, slog.LevelDebug, config.Level())
}

func TestParseExit(t *testing.T) {
	t.Run(
		"1. help",
		func(t *testing.T) {
			var out bytes.Buffer

			config, shouldExit, errParse := Parse([]string{"-h"}, &out)
			require.NoError(t, errParse)
			require.True(t, shouldExit)
			require.Nil(t, config)
			require.Contains(t, out.String(), "Usage:")
		},
	)

	t.Run(
		"2. no input path",
		func(t *testing.T) {
			var out bytes.Buffer

			config, shouldExit, errParse := Parse(nil, &out)
			require.NoError(t, errParse)
			require.True(t, shouldExit)
			require.Nil(t, config)
		},
	)
}

func TestErrorsParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "1. unknown flag",
			args: []string{"-nope", "input.txt"},
		},
		{
			name: "2. no workers",
			args: []string{"-workers", "0", "input.txt"},
		},
		{
			name: "3. negative offset",
			args: []string{"-offset", "-1", "input.txt"},
		},
		{
			name: "4. bad log format",
			args: []string{"-log-format", "xml", "input.txt"},
		},
		{
			name: "5. bad day",
			args: []string{"-day", "26", "input.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				var out bytes.Buffer

				config, shouldExit, errParse := Parse(tt.args, &out)
				require.Error(t, errParse)
				require.False(t, shouldExit)
				require.Nil(t, config)

				var errExit *ExitError
				require.ErrorAs(t, errParse, &errExit)
				require.Equal(t, 2, errExit.Code)
			},
		)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		LogFormat: "json",
		LogLevel:  "warn",
	}

	logger := config.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)
}
