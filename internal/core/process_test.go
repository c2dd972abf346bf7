package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessSpec(t *testing.T) {
	spec, err := NewProcessSpec("P1", 3, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, "P1", spec.ID)
	assert.Equal(t, 3, spec.ArrivalTime)
	assert.Equal(t, 7, spec.BurstTime)
	assert.Equal(t, 2, spec.Priority)
}

func TestNewProcessSpecRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		id      string
		arrival int
		burst   int
	}{
		{name: "negative arrival", id: "P1", arrival: -1, burst: 5},
		{name: "zero burst", id: "P1", arrival: 0, burst: 0},
		{name: "negative burst", id: "P1", arrival: 0, burst: -3},
		{name: "empty id", id: "", arrival: 0, burst: 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProcessSpec(tc.id, tc.arrival, tc.burst, 0)
			var processErr *InvalidProcessError
			require.True(t, errors.As(err, &processErr), "expected InvalidProcessError, got %v", err)
		})
	}
}

func TestProcessStateInit(t *testing.T) {
	spec, err := NewProcessSpec("P1", 0, 4, 0)
	require.NoError(t, err)

	states := newProcessStates([]ProcessSpec{spec})
	require.Len(t, states, 1)
	p := states[0]
	assert.Equal(t, 4, p.RemainingTime)
	assert.False(t, p.Started())
	assert.False(t, p.Finished())
	assert.Equal(t, -1, p.CompletionTime)
}
