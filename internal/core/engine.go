package core

import (
	"sort"

	"github.com/rs/xid"
)

// A Strategy decides which ready process runs next and for how long. The
// engine owns the clock and the process states; the strategy only sees
// processes the engine has admitted to the ready set.
type Strategy interface {
	// Name identifies the algorithm in results and logs.
	Name() string

	// Admit adds a process that has arrived to the ready set. The engine
	// calls it in arrival order, input order breaking ties.
	Admit(p *ProcessState)

	// HasReady reports whether any admitted process is still waiting.
	HasReady() bool

	// SelectNext removes the next process from the ready set and returns
	// it together with the slice duration it should run for. Only called
	// when HasReady is true. Non-preemptive strategies return the full
	// remaining time.
	SelectNext(now int) (*ProcessState, int)

	// Requeue returns an unfinished process to the ready set after its
	// slice expired. Processes that arrived during the slice have already
	// been admitted.
	Requeue(p *ProcessState)
}

// Engine runs one simulation to completion over a virtual integer clock.
// Each Engine owns its process states exclusively, so independent engines
// may run concurrently without coordination.
type Engine struct {
	strategy Strategy
	states   []*ProcessState
}

// NewEngine validates the input set and prepares a run. The specs themselves
// were validated at construction; the engine only rejects an empty set and
// duplicate ids.
func NewEngine(strategy Strategy, specs []ProcessSpec) (*Engine, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyInput
	}
	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if seen[spec.ID] {
			return nil, &InvalidProcessError{ProcessID: spec.ID, Reason: "duplicate process id"}
		}
		seen[spec.ID] = true
	}
	return &Engine{strategy: strategy, states: newProcessStates(specs)}, nil
}

// Run drives the clock until every process has finished. Each step either
// dispatches exactly one process for a strategy-determined slice or jumps
// the clock to the next arrival, recording an idle interval, so the run
// terminates after at most sum(burst)/min-slice dispatches plus one idle
// jump per process.
func (e *Engine) Run() *SimulationResult {
	pending := make([]*ProcessState, len(e.states))
	copy(pending, e.states)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Spec.ArrivalTime < pending[j].Spec.ArrivalTime
	})

	now := pending[0].Spec.ArrivalTime
	start := now
	pending = e.admitUpTo(pending, now)

	var gantt []ExecutionInterval
	remaining := len(e.states)

	for remaining > 0 {
		if !e.strategy.HasReady() {
			next := pending[0].Spec.ArrivalTime
			gantt = append(gantt, ExecutionInterval{ProcessID: IdleProcessID, Start: now, End: next})
			now = next
			pending = e.admitUpTo(pending, now)
			continue
		}

		p, slice := e.strategy.SelectNext(now)
		end := now + slice

		if !p.Started() {
			p.StartTime = now
		}
		p.RemainingTime -= slice
		p.LastRunEnd = end
		gantt = append(gantt, ExecutionInterval{ProcessID: p.Spec.ID, Start: now, End: end})

		// Processes arriving during the slice, including at its final
		// tick, enter the ready set before the preempted process.
		pending = e.admitUpTo(pending, end)

		if p.Finished() {
			p.CompletionTime = end
			remaining--
		} else {
			e.strategy.Requeue(p)
		}
		now = end
	}

	final := make([]ProcessState, len(e.states))
	for i, p := range e.states {
		final[i] = *p
	}

	return &SimulationResult{
		RunID:     xid.New().String(),
		Algorithm: e.strategy.Name(),
		Gantt:     gantt,
		Processes: final,
		StartTime: start,
		EndTime:   now,
	}
}

func (e *Engine) admitUpTo(pending []*ProcessState, t int) []*ProcessState {
	for len(pending) > 0 && pending[0].Spec.ArrivalTime <= t {
		e.strategy.Admit(pending[0])
		pending = pending[1:]
	}
	return pending
}
