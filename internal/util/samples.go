package util

import "schedsim/internal/requests"

// SampleSet is a named preset process set for quick experiments.
type SampleSet struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Processes   []requests.Process `json:"processes"`
}

// SampleSets returns the built-in presets.
func SampleSets() []SampleSet {
	return []SampleSet{
		{
			Name:        "default",
			Description: "Mixed arrivals and bursts",
			Processes: []requests.Process{
				{ProcessID: "P1", ArrivalTime: 0, BurstTime: 8, Priority: 2},
				{ProcessID: "P2", ArrivalTime: 1, BurstTime: 4, Priority: 1},
				{ProcessID: "P3", ArrivalTime: 2, BurstTime: 2, Priority: 3},
				{ProcessID: "P4", ArrivalTime: 3, BurstTime: 1, Priority: 2},
			},
		},
		{
			Name:        "equal-burst",
			Description: "Equal burst times",
			Processes: []requests.Process{
				{ProcessID: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 1},
				{ProcessID: "P2", ArrivalTime: 0, BurstTime: 5, Priority: 1},
				{ProcessID: "P3", ArrivalTime: 0, BurstTime: 5, Priority: 1},
			},
		},
		{
			Name:        "varying-load",
			Description: "Varying load with staggered arrivals",
			Processes: []requests.Process{
				{ProcessID: "P1", ArrivalTime: 0, BurstTime: 10, Priority: 2},
				{ProcessID: "P2", ArrivalTime: 1, BurstTime: 2, Priority: 1},
				{ProcessID: "P3", ArrivalTime: 3, BurstTime: 8, Priority: 3},
				{ProcessID: "P4", ArrivalTime: 5, BurstTime: 4, Priority: 1},
			},
		},
	}
}

// SampleByName looks up a preset by name.
func SampleByName(name string) (SampleSet, bool) {
	for _, s := range SampleSets() {
		if s.Name == name {
			return s, true
		}
	}
	return SampleSet{}, false
}
