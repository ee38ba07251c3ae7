package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "1. example",
			input:    _ExampleInput,
			expected: "CABDFE",
		},
		{
			name:     "2. no dependencies",
			input:    "",
			expected: "",
		},
		{
			name:     "3. single edge",
			input:    "Step Z must be finished before step A can begin.",
			expected: "ZA",
		},
		{
			name:     "4. independent groups interleave alphabetically",
			input:    _WideInput,
			expected: "ABCDEKLYZ",
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				steps, errParse := ParseSteps(tt.input)
				require.NoError(t, errParse)

				require.Equal(t, tt.expected, steps.SerialOrder())
			},
		)
	}
}

func TestSerialOrderRespectsDependencies(t *testing.T) {
	for _, input := range []string{_ExampleInput, _ChainInput, _WideInput} {
		dependencies, errParse := ParseDependencies(input)
		require.NoError(t, errParse)

		steps, errCr := NewSteps(dependencies)
		require.NoError(t, errCr)

		order := steps.SerialOrder()
		require.Len(t, order, steps.CountUsed())

		position := positions(order)
		require.Len(t, position, len(order), "every step visited once")

		for _, dependency := range dependencies {
			require.Less(t,
				position[dependency.Prerequisite.Name()],
				position[dependency.Dependent.Name()],
				"%s before %s",
				dependency.Prerequisite,
				dependency.Dependent,
			)
		}
	}
}
