package scheduler

import (
	"strings"
)

// SerialOrder returns the lexicographically smallest topological order.
// After each completion the scan restarts from A.
func (steps *Steps) SerialOrder() string {
	var (
		states States
		sb     strings.Builder
	)

	for {
		next, found := steps.firstEligible(&states)
		if !found {
			break
		}

		states[next] = Done
		sb.WriteByte(next.Name())
	}

	return sb.String()
}

func (steps *Steps) firstEligible(states *States) (StepID, bool) {
	for ix := range steps {
		if isEligible(&steps[ix], states) {
			return steps[ix].ID, true
		}
	}

	return 0, false
}
