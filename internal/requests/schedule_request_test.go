package requests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/internal/core"
)

func TestScheduleRequestSpecs(t *testing.T) {
	request := ScheduleRequest{
		Processes: []Process{
			{ProcessID: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 1},
			{ProcessID: "P2", ArrivalTime: 2, BurstTime: 3, Priority: 2},
		},
	}
	specs, err := request.Specs()
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "P1", specs[0].ID)
	assert.Equal(t, 3, specs[1].BurstTime)
}

func TestScheduleRequestSpecsEmpty(t *testing.T) {
	_, err := ScheduleRequest{}.Specs()
	assert.True(t, errors.Is(err, core.ErrEmptyInput))
}

func TestScheduleRequestSpecsInvalidProcess(t *testing.T) {
	request := ScheduleRequest{
		Processes: []Process{
			{ProcessID: "P1", ArrivalTime: 0, BurstTime: 0},
		},
	}
	_, err := request.Specs()
	var processErr *core.InvalidProcessError
	assert.True(t, errors.As(err, &processErr))
}
