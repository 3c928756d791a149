package core

// IdleProcessID labels timeline segments where no process was ready.
const IdleProcessID = "idle"

// Process is one row of user input. It is never mutated by a scheduler.
type Process struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    int
	Color       string
	// Index is the position in the request, used as the final tie-break.
	Index int
}

// Task is a scheduler's working copy of a process.
type Task struct {
	Process
	Remaining int
	Level     int
}

func NewTasks(processes []Process) []*Task {
	tasks := make([]*Task, 0, len(processes))
	for _, p := range processes {
		tasks = append(tasks, &Task{Process: p, Remaining: p.BurstTime})
	}
	return tasks
}

func (t *Task) Done() bool {
	return t.Remaining == 0
}

// ArrivedBefore orders tasks by arrival time, then by input order.
func ArrivedBefore(a, b *Task) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Index < b.Index
}
