package core

// ExecutionInterval is one Gantt segment: ProcessID held the cpu during [Start, End).
type ExecutionInterval struct {
	ProcessID string
	Start     int
	End       int
	Idle      bool
}

func (i ExecutionInterval) Length() int {
	return i.End - i.Start
}

// Timeline is the chronologically ordered output of a scheduler.
type Timeline []ExecutionInterval

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	ContextSwitches int
}

// Metric summarizes busy and idle time over the whole timeline.
func (t Timeline) Metric() CpuMetric {
	var metric CpuMetric
	last := ""
	for _, interval := range t {
		if interval.End > metric.TotalTime {
			metric.TotalTime = interval.End
		}
		if interval.Idle {
			metric.IdleTime += interval.Length()
			continue
		}
		metric.UtilizationTime += interval.Length()
		if last != "" && last != interval.ProcessID {
			metric.ContextSwitches++
		}
		last = interval.ProcessID
	}
	return metric
}

// CPU is a single simulated processor. It only moves forward in time.
type CPU struct {
	clock    int
	timeline Timeline
}

func NewCPU() *CPU {
	return &CPU{timeline: make(Timeline, 0)}
}

func (c *CPU) Clock() int {
	return c.clock
}

// IdleUntil advances the clock to t, recording an idle segment for the gap.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	if n := len(c.timeline); n > 0 && c.timeline[n-1].Idle {
		c.timeline[n-1].End = t
	} else {
		c.timeline = append(c.timeline, ExecutionInterval{
			ProcessID: IdleProcessID,
			Start:     c.clock,
			End:       t,
			Idle:      true,
		})
	}
	c.clock = t
}

// Execute runs task for units time units as a new slice and returns the units used.
func (c *CPU) Execute(task *Task, units int) int {
	units = c.clamp(task, units)
	if units == 0 {
		return 0
	}
	c.timeline = append(c.timeline, ExecutionInterval{
		ProcessID: task.ID,
		Start:     c.clock,
		End:       c.clock + units,
	})
	c.advance(task, units)
	return units
}

// Continue is Execute, except that a run directly following the same task's
// previous slice extends that slice instead of opening a new one.
func (c *CPU) Continue(task *Task, units int) int {
	n := len(c.timeline)
	if n == 0 || c.timeline[n-1].ProcessID != task.ID || c.timeline[n-1].End != c.clock {
		return c.Execute(task, units)
	}
	units = c.clamp(task, units)
	c.timeline[n-1].End += units
	c.advance(task, units)
	return units
}

func (c *CPU) Timeline() Timeline {
	out := make(Timeline, len(c.timeline))
	copy(out, c.timeline)
	return out
}

func (c *CPU) clamp(task *Task, units int) int {
	if units > task.Remaining {
		units = task.Remaining
	}
	if units < 0 {
		units = 0
	}
	return units
}

func (c *CPU) advance(task *Task, units int) {
	task.Remaining -= units
	c.clock += units
}
