package schedulers

import (
	"errors"
	"fmt"
	"math"

	"os-visualizer/internal/core"
)

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationError describes rejected input. Message is safe to show to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidateProcesses rejects the whole request on the first invalid row.
func ValidateProcesses(processes []core.Process) error {
	if len(processes) == 0 {
		return validationErrorf("no processes provided")
	}
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if p.ID == core.IdleProcessID {
			return validationErrorf("process id %q is reserved", p.ID)
		}
		if _, ok := seen[p.ID]; ok {
			return validationErrorf("duplicate process id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.BurstTime <= 0 {
			return validationErrorf("process %s: burst time must be greater than 0", p.ID)
		}
		if p.ArrivalTime < 0 {
			return validationErrorf("process %s: arrival time must not be negative", p.ID)
		}
	}
	return checkClockRange(processes)
}

// checkClockRange makes sure the simulated clock can not overflow: it never
// passes the latest arrival plus the sum of all bursts.
func checkClockRange(processes []core.Process) error {
	total := 0
	for _, p := range processes {
		if p.BurstTime > math.MaxInt-total {
			return validationErrorf("total burst time is too large")
		}
		total += p.BurstTime
	}
	for _, p := range processes {
		if p.ArrivalTime > math.MaxInt-total {
			return validationErrorf("process %s: arrival time is too large", p.ID)
		}
	}
	return nil
}
