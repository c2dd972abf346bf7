package core

// IdleProcessID is the sentinel process id used for intervals during which
// the CPU had no eligible process to run.
const IdleProcessID = "IDLE"

// ExecutionInterval is one contiguous slice of the Gantt sequence. End is
// always strictly greater than Start, and consecutive intervals share a
// boundary, so the sequence accounts for every unit of simulated time.
type ExecutionInterval struct {
	ProcessID string
	Start     int
	End       int
}

// Duration returns the length of the interval in time units.
func (iv ExecutionInterval) Duration() int { return iv.End - iv.Start }

// Idle reports whether the interval represents CPU idle time.
func (iv ExecutionInterval) Idle() bool { return iv.ProcessID == IdleProcessID }

// SimulationResult is the outcome of one completed run. It is never mutated
// after the engine returns it; a new run produces a new result.
type SimulationResult struct {
	RunID     string
	Algorithm string

	// Gantt is the ordered execution timeline, including idle intervals.
	Gantt []ExecutionInterval

	// Processes holds the final state of every process in input order.
	Processes []ProcessState

	StartTime int
	EndTime   int
}
