package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/internal/core"
)

func TestRoundRobinExactIntervals(t *testing.T) {
	specs := []core.ProcessSpec{
		mustSpec(t, "A", 0, 5, 0),
		mustSpec(t, "B", 1, 3, 0),
	}
	result, err := Run(AlgorithmRoundRobin, Config{TimeQuantum: 2}, specs)
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionInterval{
		{ProcessID: "A", Start: 0, End: 2},
		{ProcessID: "B", Start: 2, End: 4},
		{ProcessID: "A", Start: 4, End: 6},
		{ProcessID: "B", Start: 6, End: 7},
		{ProcessID: "A", Start: 7, End: 8},
	}, result.Gantt)
}

func TestRoundRobinSameTickArrivalGoesFirst(t *testing.T) {
	// B arrives exactly when A's first slice ends and must be enqueued
	// ahead of the preempted A.
	specs := []core.ProcessSpec{
		mustSpec(t, "A", 0, 4, 0),
		mustSpec(t, "B", 2, 2, 0),
	}
	result, err := Run(AlgorithmRoundRobin, Config{TimeQuantum: 2}, specs)
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionInterval{
		{ProcessID: "A", Start: 0, End: 2},
		{ProcessID: "B", Start: 2, End: 4},
		{ProcessID: "A", Start: 4, End: 6},
	}, result.Gantt)
}

func TestRoundRobinShortFinalSlice(t *testing.T) {
	specs := []core.ProcessSpec{
		mustSpec(t, "A", 0, 3, 0),
	}
	result, err := Run(AlgorithmRoundRobin, Config{TimeQuantum: 2}, specs)
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionInterval{
		{ProcessID: "A", Start: 0, End: 2},
		{ProcessID: "A", Start: 2, End: 3},
	}, result.Gantt)
}

func TestRoundRobinLargeQuantumBehavesLikeFCFS(t *testing.T) {
	specs := []core.ProcessSpec{
		mustSpec(t, "A", 0, 4, 0),
		mustSpec(t, "B", 1, 2, 0),
	}
	result, err := Run(AlgorithmRoundRobin, Config{TimeQuantum: 100}, specs)
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionInterval{
		{ProcessID: "A", Start: 0, End: 4},
		{ProcessID: "B", Start: 4, End: 6},
	}, result.Gantt)
}
