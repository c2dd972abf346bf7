package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/internal/core"
)

func TestPrioritySelectsMostUrgent(t *testing.T) {
	// Y arrives later than X but with a more urgent priority; once both
	// are eligible Y goes first.
	specs := []core.ProcessSpec{
		mustSpec(t, "X", 0, 2, 5),
		mustSpec(t, "Y", 1, 2, 1),
		mustSpec(t, "Z", 0, 2, 3),
	}
	result, err := Run(AlgorithmPriority, Config{}, specs)
	require.NoError(t, err)

	assert.Equal(t, []string{"Z", "Y", "X"}, dispatchOrder(result))
}

func TestPriorityIsNonPreemptive(t *testing.T) {
	// The urgent process arrives mid-run and must wait for the current
	// process to finish.
	specs := []core.ProcessSpec{
		mustSpec(t, "slow", 0, 6, 9),
		mustSpec(t, "urgent", 1, 1, 0),
	}
	result, err := Run(AlgorithmPriority, Config{}, specs)
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionInterval{
		{ProcessID: "slow", Start: 0, End: 6},
		{ProcessID: "urgent", Start: 6, End: 7},
	}, result.Gantt)
}

func TestPriorityTiesBrokenByArrivalThenInput(t *testing.T) {
	specs := []core.ProcessSpec{
		mustSpec(t, "B", 0, 2, 1),
		mustSpec(t, "A", 0, 2, 1),
		mustSpec(t, "C", 0, 2, 2),
	}
	result, err := Run(AlgorithmPriority, Config{}, specs)
	require.NoError(t, err)

	// B and A tie on priority and arrival; input order decides.
	assert.Equal(t, []string{"B", "A", "C"}, dispatchOrder(result))
}
