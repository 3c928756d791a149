package schedulers

import (
	"os-visualizer/internal/core"
	"os-visualizer/internal/queue"
)

// scheduleNonPreemptive runs the most urgent ready task to completion at every
// decision point, idling the cpu until the next arrival when nothing is ready.
func scheduleNonPreemptive(processes []core.Process, less queue.Less) core.Timeline {
	cpu := core.NewCPU()
	tasks := core.NewTasks(processes)
	incoming := newArrivals(tasks)
	ready := queue.NewReadyQueue(less)

	for done := 0; done < len(tasks); {
		incoming.admit(cpu.Clock(), ready.Push)
		task := ready.Pop()
		if task == nil {
			cpu.IdleUntil(incoming.nextTime())
			continue
		}
		cpu.Execute(task, task.Remaining)
		done++
	}
	return cpu.Timeline()
}
