package core

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a simulation is started with no processes.
var ErrEmptyInput = errors.New("no processes supplied")

// InvalidProcessError reports a process spec that fails validation before a
// run starts.
type InvalidProcessError struct {
	ProcessID string
	Reason    string
}

func (e *InvalidProcessError) Error() string {
	return fmt.Sprintf("invalid process %q: %s", e.ProcessID, e.Reason)
}

// InvalidConfigError reports a missing or out-of-range algorithm parameter.
type InvalidConfigError struct {
	Param  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config parameter %q: %s", e.Param, e.Reason)
}
