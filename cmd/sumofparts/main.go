package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/TudorHulban/sumofparts/internal/cli"
	"github.com/TudorHulban/sumofparts/internal/ctxlog"
	"github.com/TudorHulban/sumofparts/internal/days"
	"github.com/TudorHulban/sumofparts/internal/harness"

	scheduler "github.com/TudorHulban/sumofparts"
)

func main() {
	// Minimal logger until the configured one is built.
	slog.SetDefault(
		slog.New(
			slog.NewTextHandler(
				os.Stderr,
				&slog.HandlerOptions{
					Level: slog.LevelInfo,
				},
			),
		),
	)

	if errRun := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); errRun != nil {
		var errExit *cli.ExitError
		if errors.As(errRun, &errExit) {
			fmt.Fprintln(os.Stderr, errExit.Message)
			os.Exit(errExit.Code)
		}

		fmt.Fprintln(os.Stderr, errRun)
		os.Exit(1)
	}
}

func run(ctx context.Context, inR io.Reader, outW, logW io.Writer, args []string) error {
	config, shouldExit, errParse := cli.Parse(args, outW)
	if errParse != nil {
		return errParse
	}

	if shouldExit {
		return nil
	}

	ctx = ctxlog.WithLogger(ctx, config.NewLogger(logW))

	input, errRead := readInput(inR, config.InputPath)
	if errRead != nil {
		return &cli.ExitError{Code: 2, Message: errRead.Error()}
	}

	registry := harness.NewRegistry()

	if errRegister := days.Register(
		registry,
		&scheduler.ParamsSimulation{
			Workers: config.Workers,
			Offset:  config.Offset,
		},
	); errRegister != nil {
		return errRegister
	}

	day, errGet := registry.Get(uint8(config.Day))
	if errGet != nil {
		return &cli.ExitError{Code: 2, Message: errGet.Error()}
	}

	runner, errCr := harness.NewRunner(
		&harness.ParamsNewRunner{
			Iterations: config.Iterations,
		},
	)
	if errCr != nil {
		return errCr
	}

	reports, errRun := runner.Run(
		ctx,
		&harness.ParamsRun{
			Day:   day,
			Input: input,
			Parts: config.Parts,
		},
	)
	if errRun != nil {
		if errors.Is(errRun, harness.ErrUserInput) || errors.Is(errRun, harness.ErrUnknownPart) {
			return &cli.ExitError{Code: 2, Message: errRun.Error()}
		}

		return errRun
	}

	for _, report := range reports {
		fmt.Fprintln(outW, report.String())
	}

	ctxlog.FromContext(ctx).Info(
		"day completed.",
		"day", day.Number,
		"name", day.Name,
		"parts", len(reports),
	)

	return nil
}

func readInput(inR io.Reader, path string) (string, error) {
	if path == "-" {
		content, errRead := io.ReadAll(inR)
		if errRead != nil {
			return "", fmt.Errorf("read standard input: %w", errRead)
		}

		return string(content), nil
	}

	content, errRead := os.ReadFile(path)
	if errRead != nil {
		return "", fmt.Errorf("read input file: %w", errRead)
	}

	return string(content), nil
}
