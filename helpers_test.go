package scheduler

import (
	"strings"
)

const _ExampleInput = `Step C must be finished before step A can begin.
Step C must be finished before step F can begin.
Step A must be finished before step B can begin.
Step A must be finished before step D can begin.
Step B must be finished before step E can begin.
Step D must be finished before step E can begin.
Step F must be finished before step E can begin.
`

// _ChainInput forms Z->Y->...->A plus a few cross edges.
var _ChainInput = buildChainInput()

func buildChainInput() string {
	var sb strings.Builder

	for id := AlphabetSize - 1; id > 0; id-- {
		sb.WriteString(
			"Step " + StepID(id).String() +
				" must be finished before step " + StepID(id-1).String() +
				" can begin.\n",
		)
	}

	sb.WriteString("Step Q must be finished before step B can begin.\n")
	sb.WriteString("Step X must be finished before step M can begin.\n")

	return sb.String()
}

const _WideInput = `Step A must be finished before step Z can begin.
Step B must be finished before step Z can begin.
Step C must be finished before step Z can begin.
Step D must be finished before step Y can begin.
Step E must be finished before step Y can begin.
Step Y must be finished before step Z can begin.
Step K must be finished before step L can begin.
`

func positions(order string) map[byte]int {
	result := make(map[byte]int, len(order))

	for ix := 0; ix < len(order); ix++ {
		result[order[ix]] = ix
	}

	return result
}
