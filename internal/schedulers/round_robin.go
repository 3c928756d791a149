package schedulers

import (
	"os-visualizer/internal/core"
	"os-visualizer/internal/queue"
)

// RoundRobinScheduler dispatches the head of a FIFO ready queue for at most
// TimeQuantum units. Processes that arrive during a slice are queued ahead of
// the preempted process.
type RoundRobinScheduler struct {
	TimeQuantum int
}

func (s *RoundRobinScheduler) Name() Algorithm {
	return RoundRobin
}

func (s *RoundRobinScheduler) Schedule(processes []core.Process) core.Timeline {
	cpu := core.NewCPU()
	tasks := core.NewTasks(processes)
	incoming := newArrivals(tasks)
	var ready queue.FIFO

	incoming.admit(cpu.Clock(), ready.Push)
	for done := 0; done < len(tasks); {
		task := ready.Pop()
		if task == nil {
			cpu.IdleUntil(incoming.nextTime())
			incoming.admit(cpu.Clock(), ready.Push)
			continue
		}

		cpu.Execute(task, s.TimeQuantum)
		incoming.admit(cpu.Clock(), ready.Push)

		if task.Done() {
			done++
		} else {
			// context switch
			ready.Push(task)
		}
	}
	return cpu.Timeline()
}
