package requests

import "schedsim/internal/core"

// Process is the wire form of one process spec.
type Process struct {
	ProcessID   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

// ScheduleRequest is the body of every schedule endpoint. TimeQuantum is
// only consulted by Round Robin.
type ScheduleRequest struct {
	Processes   []Process `json:"processes"`
	TimeQuantum int       `json:"time_quantum,omitempty"`
}

// Specs validates the request processes and converts them to core specs.
func (r ScheduleRequest) Specs() ([]core.ProcessSpec, error) {
	if len(r.Processes) == 0 {
		return nil, core.ErrEmptyInput
	}
	specs := make([]core.ProcessSpec, 0, len(r.Processes))
	for _, p := range r.Processes {
		spec, err := core.NewProcessSpec(p.ProcessID, p.ArrivalTime, p.BurstTime, p.Priority)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
