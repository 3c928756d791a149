package schedulers

import (
	"fmt"

	"os-visualizer/internal/core"
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	RoundRobin                 Algorithm = "rr"
	Priority                   Algorithm = "priority"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	MultilevelFeedbackQueue    Algorithm = "mlfq"
)

// Algorithms lists every supported algorithm in display order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	RoundRobin,
	Priority,
	ShortestRemainingTimeFirst,
	MultilevelFeedbackQueue,
}

// Scheduler simulates one algorithm on a single processor.
// Schedule expects validated processes and never modifies them.
type Scheduler interface {
	Name() Algorithm
	Schedule(processes []core.Process) core.Timeline
}

// Options carries the algorithm specific settings of a request.
type Options struct {
	TimeQuantum       int
	LevelsTimeQuantum []int
}

// New returns the scheduler for algorithm, validating the options it needs.
func New(algorithm Algorithm, opts Options) (Scheduler, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return &FirstComeFirstServeScheduler{}, nil
	case ShortestJobFirst:
		return &ShortestJobFirstScheduler{}, nil
	case Priority:
		return &PriorityScheduler{}, nil
	case ShortestRemainingTimeFirst:
		return &ShortestRemainingTimeFirstScheduler{}, nil
	case RoundRobin:
		if opts.TimeQuantum <= 0 {
			return nil, validationErrorf("round robin requires a positive time quantum")
		}
		return &RoundRobinScheduler{TimeQuantum: opts.TimeQuantum}, nil
	case MultilevelFeedbackQueue:
		if len(opts.LevelsTimeQuantum) == 0 {
			return nil, validationErrorf("multilevel feedback queue requires at least one level time quantum")
		}
		for i, q := range opts.LevelsTimeQuantum {
			if q <= 0 {
				return nil, validationErrorf("multilevel feedback queue level %d time quantum must be positive", i+1)
			}
		}
		levels := make([]int, len(opts.LevelsTimeQuantum))
		copy(levels, opts.LevelsTimeQuantum)
		return &MultilevelFeedbackQueueScheduler{LevelsTimeQuantum: levels}, nil
	default:
		return nil, validationErrorf("unknown algorithm %q", string(algorithm))
	}
}

// ParseAlgorithm maps a user supplied name onto a known Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	return "", validationErrorf("unknown algorithm %q", name)
}

func (a Algorithm) String() string {
	return string(a)
}

// Title is the human readable algorithm name used by reports.
func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case RoundRobin:
		return "Round-robin"
	case Priority:
		return "Priority"
	case ShortestRemainingTimeFirst:
		return "Shortest-remaining-time-first"
	case MultilevelFeedbackQueue:
		return "Multilevel feedback queue"
	}
	return fmt.Sprintf("Unknown (%s)", string(a))
}
