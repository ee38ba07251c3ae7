package days

import (
	"context"
	"strconv"

	"github.com/TudorHulban/sumofparts/internal/harness"

	scheduler "github.com/TudorHulban/sumofparts"
)

// Puzzle defaults: five workers, every step taking 60 plus its letter position.
const (
	DefaultWorkers = 5
	DefaultOffset  = 60
)

type day07 struct {
	params scheduler.ParamsSimulation
}

// Day07 is "The Sum of Its Parts". Nil params use the puzzle defaults.
func Day07(params *scheduler.ParamsSimulation) *harness.Day {
	day := day07{
		params: scheduler.ParamsSimulation{
			Workers: DefaultWorkers,
			Offset:  DefaultOffset,
		},
	}

	if params != nil {
		day.params = *params
	}

	return &harness.Day{
		Number: 7,
		Name:   "The Sum of Its Parts",
		Part1:  day.part1,
		Part2:  day.part2,
		Other: []harness.NamedSolver{
			{Name: "Parse", Solver: day.parse},
			{Name: "Order", Solver: day.order},
			{Name: "Schedule", Solver: day.schedule},
		},
	}
}

func (day *day07) steps(input string) (*scheduler.Steps, error) {
	steps, errParse := scheduler.ParseSteps(input)
	if errParse != nil {
		return nil,
			harness.UserError(errParse)
	}

	return steps, nil
}

func (day *day07) simulate(input string) (*scheduler.ResponseSimulation, error) {
	steps, errParse := day.steps(input)
	if errParse != nil {
		return nil, errParse
	}

	return steps.Simulate(&day.params)
}

func (day *day07) part1(_ context.Context, input string) (string, error) {
	steps, errParse := day.steps(input)
	if errParse != nil {
		return "", errParse
	}

	return steps.SerialOrder(), nil
}

func (day *day07) part2(_ context.Context, input string) (string, error) {
	response, errSimulate := day.simulate(input)
	if errSimulate != nil {
		return "", errSimulate
	}

	return strconv.Itoa(response.Elapsed), nil
}

func (day *day07) parse(_ context.Context, input string) (string, error) {
	steps, errParse := day.steps(input)
	if errParse != nil {
		return "", errParse
	}

	return strconv.Itoa(steps.CountUsed()), nil
}

func (day *day07) order(_ context.Context, input string) (string, error) {
	response, errSimulate := day.simulate(input)
	if errSimulate != nil {
		return "", errSimulate
	}

	return response.Order, nil
}

func (day *day07) schedule(_ context.Context, input string) (string, error) {
	response, errSimulate := day.simulate(input)
	if errSimulate != nil {
		return "", errSimulate
	}

	return response.GetSchedule(), nil
}
