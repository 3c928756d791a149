package schedulers

import (
	"sort"

	"os-visualizer/internal/core"
)

// arrivals releases tasks into a ready queue as the clock reaches their arrival time.
type arrivals struct {
	pending []*core.Task
	next    int
}

func newArrivals(tasks []*core.Task) *arrivals {
	pending := make([]*core.Task, len(tasks))
	copy(pending, tasks)
	// sort jobs by arrival time
	sort.SliceStable(pending, func(i, j int) bool {
		return core.ArrivedBefore(pending[i], pending[j])
	})
	return &arrivals{pending: pending}
}

// admit pushes every task that has arrived by clock, in arrival order.
func (a *arrivals) admit(clock int, push func(*core.Task)) {
	for a.next < len(a.pending) && a.pending[a.next].ArrivalTime <= clock {
		push(a.pending[a.next])
		a.next++
	}
}

func (a *arrivals) empty() bool {
	return a.next >= len(a.pending)
}

// nextTime is the arrival time of the next pending task. Callers check empty first.
func (a *arrivals) nextTime() int {
	return a.pending[a.next].ArrivalTime
}
