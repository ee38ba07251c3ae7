package harness

import (
	"context"
	"errors"
	"fmt"
)

const (
	PartOne = "1"
	PartTwo = "2"
)

var (
	ErrUserInput        = errors.New("invalid puzzle input")
	ErrNonDeterministic = errors.New("solver answers differ between iterations")
	ErrUnknownPart      = errors.New("unknown part")
	ErrDayNotFound      = errors.New("day not registered")
	ErrDayRegistered    = errors.New("day already registered")
)

// Solver computes the answer of one part from the raw puzzle input.
type Solver func(ctx context.Context, input string) (string, error)

type NamedSolver struct {
	Name   string
	Solver Solver
}

type Day struct {
	Name  string
	Part1 Solver
	Part2 Solver // nil when the day has a single part.
	Other []NamedSolver

	Number uint8
}

// UserError marks errors caused by the puzzle input rather than the solver.
func UserError(err error) error {
	return fmt.Errorf("%w: %w", ErrUserInput, err)
}

// solvers lists the requested parts in run order.
// No names means every part of the day.
func (d *Day) solvers(names []string) ([]NamedSolver, error) {
	all := make([]NamedSolver, 0, 2+len(d.Other))

	all = append(all,
		NamedSolver{
			Name:   PartOne,
			Solver: d.Part1,
		},
	)

	if d.Part2 != nil {
		all = append(all,
			NamedSolver{
				Name:   PartTwo,
				Solver: d.Part2,
			},
		)
	}

	all = append(all, d.Other...)

	if len(names) == 0 {
		return all, nil
	}

	result := make([]NamedSolver, 0, len(names))

	for _, name := range names {
		var found bool

		for _, solver := range all {
			if solver.Name == name {
				result = append(result, solver)
				found = true

				break
			}
		}

		if !found {
			return nil,
				fmt.Errorf("day %d: %w %q", d.Number, ErrUnknownPart, name)
		}
	}

	return result, nil
}
