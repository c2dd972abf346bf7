package schedulers

import (
	"fmt"

	"schedsim/internal/core"
)

// roundRobin rotates a FIFO ready queue, granting each dispatch at most one
// time quantum. The engine admits processes that arrive during a slice
// before requeueing the preempted process, so a process arriving at the
// exact tick a slice ends still goes ahead of the process that just ran.
type roundRobin struct {
	quantum int
	queue   []*core.ProcessState
}

// NewRoundRobin creates a Round Robin strategy with the given time quantum.
func NewRoundRobin(quantum int) (core.Strategy, error) {
	if quantum <= 0 {
		return nil, &core.InvalidConfigError{
			Param:  "time_quantum",
			Reason: fmt.Sprintf("must be a positive integer, got %d", quantum),
		}
	}
	return &roundRobin{quantum: quantum}, nil
}

func (s *roundRobin) Name() string { return string(AlgorithmRoundRobin) }

func (s *roundRobin) Admit(p *core.ProcessState) {
	s.queue = append(s.queue, p)
}

func (s *roundRobin) HasReady() bool { return len(s.queue) > 0 }

func (s *roundRobin) SelectNext(now int) (*core.ProcessState, int) {
	p := s.queue[0]
	s.queue = s.queue[1:]
	slice := s.quantum
	if p.RemainingTime < slice {
		slice = p.RemainingTime
	}
	return p, slice
}

func (s *roundRobin) Requeue(p *core.ProcessState) {
	s.queue = append(s.queue, p)
}
