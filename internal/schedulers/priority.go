package schedulers

import "os-visualizer/internal/core"

// PriorityScheduler is non-preemptive. A lower priority value is more urgent.
type PriorityScheduler struct{}

func (s *PriorityScheduler) Name() Algorithm {
	return Priority
}

func (s *PriorityScheduler) Schedule(processes []core.Process) core.Timeline {
	return scheduleNonPreemptive(processes, func(a, b *core.Task) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return core.ArrivedBefore(a, b)
	})
}
