package schedulers

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"os-visualizer/internal/core"
)

func TestValidateProcesses(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		message   string
	}{
		{name: "empty", processes: nil, message: "no processes provided"},
		{name: "zero burst", processes: procs(proc("P1", 0, 2), proc("P2", 1, 0)), message: "process P2: burst time must be greater than 0"},
		{name: "negative burst", processes: procs(proc("P1", 0, -3)), message: "process P1: burst time must be greater than 0"},
		{name: "negative arrival", processes: procs(proc("P1", -1, 3)), message: "process P1: arrival time must not be negative"},
		{name: "duplicate id", processes: procs(proc("P1", 0, 3), proc("P1", 2, 3)), message: `duplicate process id "P1"`},
		{name: "reserved id", processes: procs(proc("idle", 0, 3)), message: `process id "idle" is reserved`},
		{name: "arrival overflows clock", processes: procs(proc("P1", 0, 2), proc("P2", math.MaxInt-1, 5)), message: "process P2: arrival time is too large"},
		{name: "bursts overflow clock", processes: procs(proc("P1", 0, math.MaxInt), proc("P2", 0, 1)), message: "total burst time is too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProcesses(tt.processes)
			assert.EqualError(t, err, tt.message)
			assert.True(t, errors.Is(err, ErrValidation))

			var validationErr *ValidationError
			assert.True(t, errors.As(err, &validationErr))
		})
	}

	assert.NoError(t, ValidateProcesses(procs(proc("P1", 0, 1), proc("P2", 4, 2))))
	assert.NoError(t, ValidateProcesses(procs(proc("P1", math.MaxInt-3, 3))))
}
