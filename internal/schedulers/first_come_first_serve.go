package schedulers

import (
	"sort"

	"schedsim/internal/core"
)

// firstComeFirstServe dispatches in arrival order and runs every process to
// completion. Ties on arrival time keep the original input order.
type firstComeFirstServe struct {
	ready []*core.ProcessState
}

// NewFirstComeFirstServe creates an FCFS strategy.
func NewFirstComeFirstServe() core.Strategy {
	return &firstComeFirstServe{}
}

func (s *firstComeFirstServe) Name() string { return string(AlgorithmFCFS) }

func (s *firstComeFirstServe) Admit(p *core.ProcessState) {
	s.ready = append(s.ready, p)
}

func (s *firstComeFirstServe) HasReady() bool { return len(s.ready) > 0 }

func (s *firstComeFirstServe) SelectNext(now int) (*core.ProcessState, int) {
	sort.SliceStable(s.ready, func(i, j int) bool {
		if s.ready[i].Spec.ArrivalTime != s.ready[j].Spec.ArrivalTime {
			return s.ready[i].Spec.ArrivalTime < s.ready[j].Spec.ArrivalTime
		}
		return s.ready[i].Index < s.ready[j].Index
	})
	p := s.ready[0]
	s.ready = s.ready[1:]
	return p, p.RemainingTime
}

func (s *firstComeFirstServe) Requeue(p *core.ProcessState) {
	s.ready = append(s.ready, p)
}
