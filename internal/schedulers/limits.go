package schedulers

import "os-visualizer/internal/core"

// Limits caps the size of a request before it is simulated. Zero fields are unlimited.
type Limits struct {
	MaxProcesses   int
	MaxBurstTime   int
	MaxArrivalTime int
}

func (l Limits) Check(processes []core.Process) error {
	if l.MaxProcesses > 0 && len(processes) > l.MaxProcesses {
		return validationErrorf("too many processes: %d (max %d)", len(processes), l.MaxProcesses)
	}
	for _, p := range processes {
		if l.MaxBurstTime > 0 && p.BurstTime > l.MaxBurstTime {
			return validationErrorf("process %s: burst time exceeds %d", p.ID, l.MaxBurstTime)
		}
		if l.MaxArrivalTime > 0 && p.ArrivalTime > l.MaxArrivalTime {
			return validationErrorf("process %s: arrival time exceeds %d", p.ID, l.MaxArrivalTime)
		}
	}
	return nil
}
