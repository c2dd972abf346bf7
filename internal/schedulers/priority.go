package schedulers

import (
	"sort"

	"schedsim/internal/core"
)

// priority picks the eligible process with the smallest priority value
// (lower = more urgent), ties broken by arrival time then input order.
// Non-preemptive and without aging: a process can wait indefinitely while
// more urgent work keeps arriving. That is the documented behavior of the
// algorithm, not a defect.
type priority struct {
	ready []*core.ProcessState
}

// NewPriority creates a priority strategy.
func NewPriority() core.Strategy {
	return &priority{}
}

func (s *priority) Name() string { return string(AlgorithmPriority) }

func (s *priority) Admit(p *core.ProcessState) {
	s.ready = append(s.ready, p)
}

func (s *priority) HasReady() bool { return len(s.ready) > 0 }

func (s *priority) SelectNext(now int) (*core.ProcessState, int) {
	sort.SliceStable(s.ready, func(i, j int) bool {
		a, b := s.ready[i], s.ready[j]
		if a.Spec.Priority != b.Spec.Priority {
			return a.Spec.Priority < b.Spec.Priority
		}
		if a.Spec.ArrivalTime != b.Spec.ArrivalTime {
			return a.Spec.ArrivalTime < b.Spec.ArrivalTime
		}
		return a.Index < b.Index
	})
	p := s.ready[0]
	s.ready = s.ready[1:]
	return p, p.RemainingTime
}

func (s *priority) Requeue(p *core.ProcessState) {
	s.ready = append(s.ready, p)
}
