package scheduler

import (
	"fmt"
	"sort"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

type ParamsSimulation struct {
	Workers int `valid:"required"`
	Offset  int
}

func (params *ParamsSimulation) IsValid() error {
	if params == nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsSimulation",
			Issue: goerrors.ErrNilInput{
				InputName: "ParamsSimulation",
			},
		}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsSimulation",
			Issue:  errValidation,
		}
	}

	if params.Workers < 1 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsSimulation",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Workers",
			},
		}
	}

	if params.Offset < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsSimulation",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Offset",
			},
		}
	}

	return nil
}

// StepRun is the simulated span a step spent on a worker.
type StepRun struct {
	TimeInterval

	Step StepID
}

type ResponseSimulation struct {
	Order string

	// Retired lists the steps in completion order.
	Retired []StepRun

	// Elapsed is the makespan, the time the last step finished.
	Elapsed int
}

// Simulate runs the steps on params.Workers workers, each step taking
// params.Offset plus its alphabet position.
// Ready steps are assigned in alphabetical order while workers are free.
func (steps *Steps) Simulate(params *ParamsSimulation) (*ResponseSimulation, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	var (
		states States
		order  strings.Builder
	)

	pool := newWorkerPool(params.Workers)
	result := ResponseSimulation{
		Retired: make([]StepRun, 0, steps.CountUsed()),
	}

	for {
		for ix := range steps {
			if pool.isFull() {
				break
			}

			if !isEligible(&steps[ix], &states) {
				continue
			}

			states[ix] = InProgress

			pool.insert(
				&assignment{
					Step:      steps[ix].ID,
					Remaining: steps[ix].ID.Duration(params.Offset),
					TimeStart: result.Elapsed,
				},
			)
		}

		if pool.isEmpty() {
			break
		}

		retired := pool.pop()

		result.Elapsed = result.Elapsed + retired.Remaining
		states[retired.Step] = Done

		order.WriteByte(retired.Step.Name())

		result.Retired = append(
			result.Retired,
			StepRun{
				Step: retired.Step,
				TimeInterval: TimeInterval{
					TimeStart: retired.TimeStart,
					TimeEnd:   result.Elapsed,
				},
			},
		)
	}

	result.Order = order.String()

	return &result, nil
}

// GetSchedule renders the retired steps ordered by start time.
func (resp *ResponseSimulation) GetSchedule() string {
	if len(resp.Retired) == 0 {
		return "Schedule: (empty)"
	}

	runs := make([]StepRun, len(resp.Retired))
	copy(runs, resp.Retired)

	sort.Slice(
		runs,
		func(i, j int) bool {
			if runs[i].TimeStart != runs[j].TimeStart {
				return runs[i].TimeStart < runs[j].TimeStart
			}

			return runs[i].Step < runs[j].Step
		},
	)

	var sb strings.Builder
	sb.WriteString("Schedule:\n")

	for _, run := range runs {
		sb.WriteString(
			fmt.Sprintf(
				"- [%d-%d] → Step %s\n",

				run.TimeStart,
				run.TimeEnd,
				run.Step,
			),
		)
	}

	sb.WriteString(
		fmt.Sprintf("Elapsed: %d\n", resp.Elapsed),
	)

	return sb.String()
}
