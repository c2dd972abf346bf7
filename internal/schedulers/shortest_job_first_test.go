package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/internal/core"
)

func TestSJFPicksShortestBurst(t *testing.T) {
	specs := []core.ProcessSpec{
		mustSpec(t, "A", 0, 5, 0),
		mustSpec(t, "B", 0, 3, 0),
		mustSpec(t, "C", 0, 8, 0),
	}
	result, err := Run(AlgorithmSJF, Config{}, specs)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A", "C"}, dispatchOrder(result))
}

func TestSJFIsNonPreemptive(t *testing.T) {
	// A holds the CPU when the much shorter B arrives; B must wait.
	specs := []core.ProcessSpec{
		mustSpec(t, "A", 0, 6, 0),
		mustSpec(t, "B", 1, 1, 0),
	}
	result, err := Run(AlgorithmSJF, Config{}, specs)
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionInterval{
		{ProcessID: "A", Start: 0, End: 6},
		{ProcessID: "B", Start: 6, End: 7},
	}, result.Gantt)
}

func TestSJFTiesBrokenByArrivalThenInput(t *testing.T) {
	specs := []core.ProcessSpec{
		mustSpec(t, "late", 1, 4, 0),
		mustSpec(t, "early", 0, 4, 0),
		mustSpec(t, "tied", 0, 4, 0),
	}
	result, err := Run(AlgorithmSJF, Config{}, specs)
	require.NoError(t, err)

	// equal bursts: arrival first, then input order for the t=0 pair
	assert.Equal(t, []string{"early", "tied", "late"}, dispatchOrder(result))
}
