package harness

import (
	"fmt"
	"slices"

	goerrors "github.com/TudorHulban/go-errors"
)

type Registry struct {
	days map[uint8]*Day
}

func NewRegistry() *Registry {
	return &Registry{
		days: make(map[uint8]*Day),
	}
}

func (r *Registry) Register(day *Day) error {
	if day == nil {
		return goerrors.ErrValidation{
			Caller: "Register",
			Issue: goerrors.ErrNilInput{
				InputName: "Day",
			},
		}
	}

	if day.Number == 0 || day.Part1 == nil {
		return goerrors.ErrValidation{
			Caller: "Register",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "Day",
				InputValue: day.Number,
			},
		}
	}

	if _, exists := r.days[day.Number]; exists {
		return fmt.Errorf("day %d: %w", day.Number, ErrDayRegistered)
	}

	r.days[day.Number] = day

	return nil
}

func (r *Registry) Get(number uint8) (*Day, error) {
	day, exists := r.days[number]
	if !exists {
		return nil,
			fmt.Errorf("day %d: %w", number, ErrDayNotFound)
	}

	return day, nil
}

// Numbers returns the registered days in ascending order.
func (r *Registry) Numbers() []uint8 {
	result := make([]uint8, 0, len(r.days))

	for number := range r.days {
		result = append(result, number)
	}

	slices.Sort(result)

	return result
}
