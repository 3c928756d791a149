package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-visualizer/internal/responses"
)

// Write prints a title banner, an ASCII Gantt chart and the schedule table.
func Write(w io.Writer, title string, response responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, response.GanttChart)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []responses.GanttEntry) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		label := gantt[i].ID
		width := cellWidth(gantt[i])
		padding := width - len(label)
		left := padding / 2
		_, _ = fmt.Fprint(w, strings.Repeat(" ", left), label, strings.Repeat(" ", padding-left), "|")
	}
	_, _ = fmt.Fprintln(w)

	for i := range gantt {
		start := fmt.Sprint(gantt[i].Start)
		_, _ = fmt.Fprint(w, start, strings.Repeat(" ", cellWidth(gantt[i])+1-len(start)))
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, gantt[i].End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// cellWidth scales a segment with its length, but always fits its label and start time.
func cellWidth(entry responses.GanttEntry) int {
	width := 2 * (entry.End - entry.Start)
	if l := len(entry.ID) + 2; width < l {
		width = l
	}
	if l := len(fmt.Sprint(entry.Start)); width < l {
		width = l
	}
	return width
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(response.Results))
	for _, p := range response.Results {
		rows = append(rows, []string{
			p.ID,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.CompletionTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
}
