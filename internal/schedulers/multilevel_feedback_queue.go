package schedulers

import (
	"os-visualizer/internal/core"
	"os-visualizer/internal/queue"
)

// MultilevelFeedbackQueueScheduler has one round robin level per entry of
// LevelsTimeQuantum followed by a final fcfs level. New processes enter the
// first level and are demoted one level each time they use up their slice.
// A running slice is never interrupted by arrivals in a higher level.
type MultilevelFeedbackQueueScheduler struct {
	LevelsTimeQuantum []int
}

func (s *MultilevelFeedbackQueueScheduler) Name() Algorithm {
	return MultilevelFeedbackQueue
}

func (s *MultilevelFeedbackQueueScheduler) Schedule(processes []core.Process) core.Timeline {
	cpu := core.NewCPU()
	tasks := core.NewTasks(processes)
	incoming := newArrivals(tasks)

	fcfsLevel := len(s.LevelsTimeQuantum)
	levels := make([]queue.FIFO, fcfsLevel+1)
	enterFirstLevel := func(task *core.Task) {
		task.Level = 0
		levels[0].Push(task)
	}

	incoming.admit(cpu.Clock(), enterFirstLevel)
	for done := 0; done < len(tasks); {
		task := s.nextTask(levels)
		if task == nil {
			cpu.IdleUntil(incoming.nextTime())
			incoming.admit(cpu.Clock(), enterFirstLevel)
			continue
		}

		slice := task.Remaining
		if task.Level < fcfsLevel {
			slice = s.LevelsTimeQuantum[task.Level]
		}
		cpu.Execute(task, slice)
		incoming.admit(cpu.Clock(), enterFirstLevel)

		if task.Done() {
			done++
			continue
		}
		if task.Level < fcfsLevel {
			task.Level++
		}
		levels[task.Level].Push(task)
	}
	return cpu.Timeline()
}

// nextTask pops from the highest non-empty level.
func (s *MultilevelFeedbackQueueScheduler) nextTask(levels []queue.FIFO) *core.Task {
	for i := range levels {
		if levels[i].Len() > 0 {
			return levels[i].Pop()
		}
	}
	return nil
}
