package scheduler

type State uint8

const (
	Waiting State = iota
	InProgress
	Done
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case InProgress:
		return "in progress"
	case Done:
		return "done"
	}

	return "unknown"
}

// States tracks the progress of every step during one run.
// Transitions only move forward.
type States [AlphabetSize]State

// canProgress is true when every prerequisite of the step is done.
func canProgress(step *Step, states *States) bool {
	for id, needed := range step.Needs {
		if needed && states[id] != Done {
			return false
		}
	}

	return true
}

// isEligible is true for used, waiting steps with all prerequisites done.
func isEligible(step *Step, states *States) bool {
	return step.Used &&
		states[step.ID] == Waiting &&
		canProgress(step, states)
}
