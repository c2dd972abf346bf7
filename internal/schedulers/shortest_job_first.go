package schedulers

import (
	"sort"

	"schedsim/internal/core"
)

// shortestJobFirst picks the eligible process with the smallest burst time
// whenever the CPU goes idle. Non-preemptive: a long job that already holds
// the CPU is never interrupted, and a short job can starve behind a steady
// stream of shorter ones.
type shortestJobFirst struct {
	ready []*core.ProcessState
}

// NewShortestJobFirst creates an SJF strategy.
func NewShortestJobFirst() core.Strategy {
	return &shortestJobFirst{}
}

func (s *shortestJobFirst) Name() string { return string(AlgorithmSJF) }

func (s *shortestJobFirst) Admit(p *core.ProcessState) {
	s.ready = append(s.ready, p)
}

func (s *shortestJobFirst) HasReady() bool { return len(s.ready) > 0 }

func (s *shortestJobFirst) SelectNext(now int) (*core.ProcessState, int) {
	sort.SliceStable(s.ready, func(i, j int) bool {
		a, b := s.ready[i], s.ready[j]
		if a.Spec.BurstTime != b.Spec.BurstTime {
			return a.Spec.BurstTime < b.Spec.BurstTime
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

func (s *shortestJobFirst) Requeue(p *core.ProcessState) {
	s.ready = append(s.ready, p)
}
