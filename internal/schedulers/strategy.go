package schedulers

import (
	"fmt"

	"schedsim/internal/core"
)

// Algorithm selects one of the supported scheduling policies.
type Algorithm string

const (
	AlgorithmFCFS       Algorithm = "FCFS"
	AlgorithmSJF        Algorithm = "SJF"
	AlgorithmRoundRobin Algorithm = "ROUND_ROBIN"
	AlgorithmPriority   Algorithm = "PRIORITY"
)

// Algorithms lists every supported policy in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmRoundRobin, AlgorithmPriority}
}

// Config carries algorithm-specific parameters. Only Round Robin reads it.
type Config struct {
	// TimeQuantum is the maximum contiguous slice per dispatch. Required
	// by Round Robin, ignored by every other algorithm.
	TimeQuantum int
}

// New builds a fresh strategy instance for one run. Strategies carry
// per-run ready-queue state and must never be shared between runs.
func New(algorithm Algorithm, cfg Config) (core.Strategy, error) {
	switch algorithm {
	case AlgorithmFCFS:
		return NewFirstComeFirstServe(), nil
	case AlgorithmSJF:
		return NewShortestJobFirst(), nil
	case AlgorithmRoundRobin:
		return NewRoundRobin(cfg.TimeQuantum)
	case AlgorithmPriority:
		return NewPriority(), nil
	default:
		return nil, &core.InvalidConfigError{
			Param:  "algorithm",
			Reason: fmt.Sprintf("unknown algorithm %q", algorithm),
		}
	}
}

// Run is the one-call entry point for a simulation: it builds a strategy and
// an engine for the given specs and runs to completion.
func Run(algorithm Algorithm, cfg Config, specs []core.ProcessSpec) (*core.SimulationResult, error) {
	strategy, err := New(algorithm, cfg)
	if err != nil {
		return nil, err
	}
	engine, err := core.NewEngine(strategy, specs)
	if err != nil {
		return nil, err
	}
	return engine.Run(), nil
}
