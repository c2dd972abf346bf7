package util

import (
	"testing"

	"github.com/stretchr/testify/require"

	"schedsim/internal/requests"
)

func scheduleRequestFor(sample SampleSet) requests.ScheduleRequest {
	return requests.ScheduleRequest{Processes: sample.Processes}
}

func mustSample(t *testing.T, name string) SampleSet {
	t.Helper()
	sample, ok := SampleByName(name)
	require.True(t, ok)
	return sample
}
