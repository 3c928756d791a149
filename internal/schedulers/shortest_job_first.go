package schedulers

import "os-visualizer/internal/core"

// ShortestJobFirstScheduler is non-preemptive: the shortest arrived job runs to completion.
type ShortestJobFirstScheduler struct{}

func (s *ShortestJobFirstScheduler) Name() Algorithm {
	return ShortestJobFirst
}

func (s *ShortestJobFirstScheduler) Schedule(processes []core.Process) core.Timeline {
	return scheduleNonPreemptive(processes, shorterJob)
}

func shorterJob(a, b *core.Task) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return core.ArrivedBefore(a, b)
}
