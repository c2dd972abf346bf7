package core

import "fmt"

// ProcessSpec describes one process submitted to the simulator. It is
// read-only after construction.
type ProcessSpec struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	// Priority is only consulted by the priority strategy. Lower value
	// means more urgent.
	Priority int
}

// NewProcessSpec validates the input values and builds a spec.
func NewProcessSpec(id string, arrivalTime, burstTime, priority int) (ProcessSpec, error) {
	if id == "" {
		return ProcessSpec{}, &InvalidProcessError{ProcessID: id, Reason: "empty process id"}
	}
	if arrivalTime < 0 {
		return ProcessSpec{}, &InvalidProcessError{
			ProcessID: id,
			Reason:    fmt.Sprintf("arrival time must be >= 0, got %d", arrivalTime),
		}
	}
	if burstTime <= 0 {
		return ProcessSpec{}, &InvalidProcessError{
			ProcessID: id,
			Reason:    fmt.Sprintf("burst time must be > 0, got %d", burstTime),
		}
	}
	return ProcessSpec{
		ID:          id,
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
		Priority:    priority,
	}, nil
}

// ProcessState carries the runtime bookkeeping for one process during a
// single run. The engine is the only writer; a fresh set of states is built
// per run so results from different runs never share state.
type ProcessState struct {
	Spec ProcessSpec

	// Index preserves the original input order; it is the final
	// tie-breaker for every strategy.
	Index int

	RemainingTime  int
	StartTime      int // -1 until the first dispatch
	CompletionTime int // -1 until the process finishes
	LastRunEnd     int // end of the most recent slice, used for requeueing
}

// Started reports whether the process has been dispatched at least once.
func (p *ProcessState) Started() bool { return p.StartTime >= 0 }

// Finished reports whether the process has run to completion.
func (p *ProcessState) Finished() bool { return p.RemainingTime == 0 }

func newProcessStates(specs []ProcessSpec) []*ProcessState {
	states := make([]*ProcessState, len(specs))
	for i, spec := range specs {
		states[i] = &ProcessState{
			Spec:           spec,
			Index:          i,
			RemainingTime:  spec.BurstTime,
			StartTime:      -1,
			CompletionTime: -1,
		}
	}
	return states
}
