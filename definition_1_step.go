package scheduler

import (
	"errors"
	"fmt"
)

// AlphabetSize is the number of possible step identifiers, A to Z.
const AlphabetSize = 26

var ErrUnknownStep = errors.New("step name outside of alphabet A-Z")

// StepID is the position of the step name in the alphabet, usable as index.
type StepID uint8

func StepIDFromName(name byte) (StepID, error) {
	if name < 'A' || name > 'Z' {
		return 0,
			fmt.Errorf("%w: %q", ErrUnknownStep, name)
	}

	return StepID(name - 'A'),
		nil
}

func (id StepID) Name() byte {
	return 'A' + byte(id)
}

func (id StepID) String() string {
	return string(id.Name())
}

// Duration is the work time of the step when every step costs offset
// plus its position in the alphabet, A being 1.
func (id StepID) Duration(offset int) int {
	return offset + int(id) + 1
}

type Step struct {
	Needs [AlphabetSize]bool

	ID StepID

	// Used marks steps present in at least one dependency.
	Used bool
}

// CountNeeds returns the number of prerequisites.
func (s *Step) CountNeeds() int {
	var result int

	for _, needed := range s.Needs {
		if needed {
			result++
		}
	}

	return result
}

// Steps holds one slot per letter, used or not.
type Steps [AlphabetSize]Step

func newSteps() *Steps {
	var result Steps

	for ix := range result {
		result[ix].ID = StepID(ix)
	}

	return &result
}

// CountUsed returns how many steps appear in the dependencies.
func (steps *Steps) CountUsed() int {
	var result int

	for ix := range steps {
		if steps[ix].Used {
			result++
		}
	}

	return result
}
