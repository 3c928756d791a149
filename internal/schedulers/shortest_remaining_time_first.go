package schedulers

import (
	"os-visualizer/internal/core"
	"os-visualizer/internal/queue"
)

// ShortestRemainingTimeFirstScheduler is preemptive SJF. Decisions are only
// revisited when a new process arrives.
type ShortestRemainingTimeFirstScheduler struct{}

func (s *ShortestRemainingTimeFirstScheduler) Name() Algorithm {
	return ShortestRemainingTimeFirst
}

func (s *ShortestRemainingTimeFirstScheduler) Schedule(processes []core.Process) core.Timeline {
	cpu := core.NewCPU()
	tasks := core.NewTasks(processes)
	incoming := newArrivals(tasks)
	ready := queue.NewReadyQueue(lessRemaining)

	for done := 0; done < len(tasks); {
		incoming.admit(cpu.Clock(), ready.Push)
		task := ready.Pop()
		if task == nil {
			cpu.IdleUntil(incoming.nextTime())
			continue
		}

		units := task.Remaining
		if !incoming.empty() {
			if untilArrival := incoming.nextTime() - cpu.Clock(); untilArrival < units {
				units = untilArrival
			}
		}
		cpu.Continue(task, units)

		if task.Done() {
			done++
		} else {
			ready.Push(task)
		}
	}
	return cpu.Timeline()
}

func lessRemaining(a, b *core.Task) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	return core.ArrivedBefore(a, b)
}
