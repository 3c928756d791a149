package schedulers

import "os-visualizer/internal/core"

// FirstComeFirstServeScheduler runs processes in arrival order, each to completion.
type FirstComeFirstServeScheduler struct{}

func (s *FirstComeFirstServeScheduler) Name() Algorithm {
	return FirstComeFirstServe
}

func (s *FirstComeFirstServeScheduler) Schedule(processes []core.Process) core.Timeline {
	return scheduleNonPreemptive(processes, core.ArrivedBefore)
}
