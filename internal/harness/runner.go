package harness

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/golang-collections/collections/queue"
	"github.com/google/uuid"

	"github.com/TudorHulban/sumofparts/internal/ctxlog"
)

type Runner struct {
	iterations int
}

type ParamsNewRunner struct {
	Iterations int `valid:"required"`
}

func NewRunner(params *ParamsNewRunner) (*Runner, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Harness",
				Caller:      "NewRunner",
				Issue:       errValidation,
			}
	}

	if params.Iterations < 1 {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Harness",
				Caller:      "NewRunner",
				Issue: goerrors.ErrNegativeInput{
					InputName: "Iterations",
				},
			}
	}

	return &Runner{
			iterations: params.Iterations,
		},
		nil
}

type ParamsRun struct {
	Day   *Day
	Input string

	// Parts selects solvers by name, all when empty.
	Parts []string
}

// Run queues the selected parts and times each over the runner iterations.
// The first failing part stops the run.
func (r *Runner) Run(ctx context.Context, params *ParamsRun) ([]*Report, error) {
	if params == nil || params.Day == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "Run",
				Issue: goerrors.ErrNilInput{
					InputName: "Day",
				},
			}
	}

	solvers, errSolvers := params.Day.solvers(params.Parts)
	if errSolvers != nil {
		return nil, errSolvers
	}

	runID := uuid.New()
	logger := ctxlog.FromContext(ctx).With(
		"run", runID.String(),
		"day", params.Day.Number,
	)

	pending := queue.New()
	for _, solver := range solvers {
		pending.Enqueue(solver)
	}

	result := make([]*Report, 0, len(solvers))

	for pending.Len() > 0 {
		job := pending.Dequeue().(NamedSolver)

		logger.Debug("part started.", "part", job.Name)

		report, errJob := r.runJob(ctx, &job, params.Input)
		if errJob != nil {
			logger.Error("part failed.", "part", job.Name, "error", errJob)

			return nil,
				fmt.Errorf(
					"day %d part %s: %w",
					params.Day.Number,
					job.Name,
					errJob,
				)
		}

		report.RunID = runID
		report.Day = params.Day.Number

		logger.Debug("part finished.", "part", job.Name, "mean", report.Mean)

		result = append(result, report)
	}

	return result, nil
}

func (r *Runner) runJob(ctx context.Context, job *NamedSolver, input string) (*Report, error) {
	result := Report{
		Part:       job.Name,
		Iterations: r.iterations,
	}

	var total time.Duration

	for ix := range r.iterations {
		if errCtx := ctx.Err(); errCtx != nil {
			return nil, errCtx
		}

		start := time.Now()

		answer, errSolve := job.Solver(ctx, input)

		elapsed := time.Since(start)

		if errSolve != nil {
			return nil, errSolve
		}

		if ix == 0 {
			result.Answer = answer
			result.Min = elapsed
			result.Max = elapsed
		} else if answer != result.Answer {
			return nil,
				fmt.Errorf(
					"%w: %q then %q",
					ErrNonDeterministic,
					result.Answer,
					answer,
				)
		}

		result.Min = min(result.Min, elapsed)
		result.Max = max(result.Max, elapsed)
		total = total + elapsed
	}

	result.Mean = total / time.Duration(r.iterations)

	return &result, nil
}
