package scheduler

import (
	"errors"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

const (
	_LinePrefix = "Step "
	_LineMiddle = " must be finished before step "
	_LineSuffix = " can begin."

	_OffsetPrerequisite = len(_LinePrefix)
	_OffsetDependent    = _OffsetPrerequisite + 1 + len(_LineMiddle)
	_LineLength         = _OffsetDependent + 1 + len(_LineSuffix)
)

var ErrMalformedDependency = errors.New("malformed dependency line")

// Dependency is one decoded edge: Prerequisite must finish before Dependent.
type Dependency struct {
	Prerequisite StepID
	Dependent    StepID
}

// ParseDependencies decodes lines shaped as
// "Step X must be finished before step Y can begin.".
// Blank lines are skipped.
func ParseDependencies(input string) ([]Dependency, error) {
	result := make([]Dependency, 0)

	for ix, rawLine := range strings.Split(input, "\n") {
		line := strings.TrimSpace(rawLine)
		if len(line) == 0 {
			continue
		}

		dependency, errParse := parseDependency(line)
		if errParse != nil {
			return nil,
				goerrors.ErrInvalidInput{
					Caller:     "ParseDependencies",
					InputName:  "line",
					InputValue: ix + 1,
					Issue:      errParse,
				}
		}

		result = append(result, *dependency)
	}

	return result, nil
}

func parseDependency(line string) (*Dependency, error) {
	if len(line) != _LineLength ||
		!strings.HasPrefix(line, _LinePrefix) ||
		line[_OffsetPrerequisite+1:_OffsetDependent] != _LineMiddle ||
		!strings.HasSuffix(line, _LineSuffix) {
		return nil, ErrMalformedDependency
	}

	prerequisite, errPrerequisite := StepIDFromName(line[_OffsetPrerequisite])
	if errPrerequisite != nil {
		return nil, errPrerequisite
	}

	dependent, errDependent := StepIDFromName(line[_OffsetDependent])
	if errDependent != nil {
		return nil, errDependent
	}

	return &Dependency{
			Prerequisite: prerequisite,
			Dependent:    dependent,
		},
		nil
}

// NewSteps folds the dependencies into the fixed size registry.
// The registry is not changed afterwards.
func NewSteps(dependencies []Dependency) (*Steps, error) {
	result := newSteps()

	for _, dependency := range dependencies {
		if dependency.Prerequisite >= AlphabetSize || dependency.Dependent >= AlphabetSize {
			return nil,
				goerrors.ErrInvalidInput{
					Caller:     "NewSteps",
					InputName:  "Dependency",
					InputValue: dependency,
					Issue:      ErrUnknownStep,
				}
		}

		result[dependency.Dependent].Needs[dependency.Prerequisite] = true
		result[dependency.Dependent].Used = true
		result[dependency.Prerequisite].Used = true
	}

	return result, nil
}

func ParseSteps(input string) (*Steps, error) {
	dependencies, errParse := ParseDependencies(input)
	if errParse != nil {
		return nil, errParse
	}

	return NewSteps(dependencies)
}
