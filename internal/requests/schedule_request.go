package requests

import (
	"fmt"
	"strings"

	"os-visualizer/internal/core"
)

type Process struct {
	ID          string `json:"id"`
	ArrivalTime int    `json:"arrivalTime"`
	BurstTime   int    `json:"burstTime"`
	Priority    int    `json:"priority,omitempty"`
	Color       string `json:"color,omitempty"`
}

// ScheduleRequest is the body of /calculate. Algorithm is ignored by the
// per-algorithm routes, which take it from the path.
type ScheduleRequest struct {
	Processes         []Process `json:"processes"`
	Algorithm         string    `json:"algorithm,omitempty"`
	TimeQuantum       int       `json:"quantum,omitempty"`
	LevelsTimeQuantum []int     `json:"levels,omitempty"`
}

// CoreProcesses converts the request rows, naming unnamed rows P1, P2, ... by
// position. A generated name already used by another row moves on to the next
// free P<n>.
func (r ScheduleRequest) CoreProcesses() []core.Process {
	taken := make(map[string]struct{}, len(r.Processes))
	for _, p := range r.Processes {
		if id := strings.TrimSpace(p.ID); id != "" {
			taken[id] = struct{}{}
		}
	}

	processes := make([]core.Process, 0, len(r.Processes))
	for i, p := range r.Processes {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			for n := i + 1; ; n++ {
				id = fmt.Sprintf("P%d", n)
				if _, ok := taken[id]; !ok {
					break
				}
			}
			taken[id] = struct{}{}
		}
		processes = append(processes, core.Process{
			ID:          id,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
			Color:       p.Color,
			Index:       i,
		})
	}
	return processes
}
