// Package cli parses the command line into the run configuration.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/asaskevich/govalidator"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Message string
	Code    int
}

func (e *ExitError) Error() string {
	return e.Message
}

type Config struct {
	InputPath string `valid:"required"`
	LogFormat string `valid:"in(text|json)"`
	LogLevel  string `valid:"in(debug|info|warn|error)"`
	Parts     []string

	Day        int `valid:"required,range(1|25)"`
	Iterations int `valid:"required,range(1|1000000)"`
	Workers    int `valid:"required,range(1|26)"`
	Offset     int `valid:"range(0|1000000)"`
}

// Parse processes the command line arguments. It returns the config, whether
// the program should exit cleanly (help) or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("sumofparts", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
sumofparts - runs and times puzzle solvers.

Usage:
  sumofparts [options] INPUT_PATH

Arguments:
  INPUT_PATH
    Path to the puzzle input file, "-" for standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	dayFlag := flagSet.Int("day", 7, "Puzzle day to run.")
	partsFlag := flagSet.String("parts", "", "Comma separated parts to run, e.g. '1,2,Schedule'. Empty runs all.")
	iterationsFlag := flagSet.Int("iterations", 1, "Times each part is run for timing.")
	workersFlag := flagSet.Int("workers", 5, "Number of simulated workers.")
	offsetFlag := flagSet.Int("offset", 60, "Base duration added to every step.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if errParse := flagSet.Parse(args); errParse != nil {
		if errors.Is(errParse, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, &ExitError{Code: 2, Message: errParse.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()

		return nil, true, nil
	}

	config := Config{
		InputPath:  flagSet.Arg(0),
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
		Parts:      splitParts(*partsFlag),
		Day:        *dayFlag,
		Iterations: *iterationsFlag,
		Workers:    *workersFlag,
		Offset:     *offsetFlag,
	}

	if _, errValidation := govalidator.ValidateStruct(&config); errValidation != nil {
		return nil, false, &ExitError{Code: 2, Message: errValidation.Error()}
	}

	slog.Debug("CLI parsed.", "config", config)

	return &config, false, nil
}

func splitParts(raw string) []string {
	result := make([]string, 0)

	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); len(trimmed) > 0 {
			result = append(result, trimmed)
		}
	}

	return result
}

// Level maps the validated level name to the slog level.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}

// NewLogger builds the logger in the configured format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	options := slog.HandlerOptions{
		Level: c.Level(),
	}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, &options))
	}

	return slog.New(slog.NewTextHandler(w, &options))
}
