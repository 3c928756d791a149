package schedulers

import (
	"os-visualizer/internal/core"
	"os-visualizer/internal/responses"
	"os-visualizer/internal/util"
)

// GenerateResponse derives every per-process and aggregate metric from the
// timeline alone. Rows keep the input order of processes.
func GenerateResponse(algorithm Algorithm, processes []core.Process, timeline core.Timeline) responses.ScheduleResponse {
	proccessDetails := generateProcessDetails(processes, timeline)
	averageWaitingTime, averageTurnAroundTime, averageCompletionTime, averageResponseTime := util.CalculateAverage(proccessDetails)

	metric := timeline.Metric()
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = util.Round(float64(metric.UtilizationTime) / float64(metric.TotalTime))
		throughput = util.Round(float64(len(processes)) / float64(metric.TotalTime))
	}

	return responses.ScheduleResponse{
		Algorithm:             algorithm.String(),
		Results:               proccessDetails,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		AverageCompletionTime: averageCompletionTime,
		AverageResponseTime:   averageResponseTime,
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		ContextSwitches:       metric.ContextSwitches,
		GanttChart:            generateGanttChart(processes, timeline),
	}
}

func generateProcessDetails(processes []core.Process, timeline core.Timeline) []responses.ProcessResponse {
	firstStart := make(map[string]int, len(processes))
	completion := make(map[string]int, len(processes))
	for _, interval := range timeline {
		if interval.Idle {
			continue
		}
		if _, ok := firstStart[interval.ProcessID]; !ok {
			firstStart[interval.ProcessID] = interval.Start
		}
		completion[interval.ProcessID] = interval.End
	}

	details := make([]responses.ProcessResponse, 0, len(processes))
	for _, p := range processes {
		turnAroundTime := completion[p.ID] - p.ArrivalTime
		details = append(details, responses.ProcessResponse{
			ID:             p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			CompletionTime: completion[p.ID],
			TurnaroundTime: turnAroundTime,
			WaitingTime:    turnAroundTime - p.BurstTime,
			ResponseTime:   firstStart[p.ID] - p.ArrivalTime,
		})
	}
	return details
}

func generateGanttChart(processes []core.Process, timeline core.Timeline) []responses.GanttEntry {
	colors := make(map[string]string, len(processes))
	for _, p := range processes {
		if p.Color != "" {
			colors[p.ID] = p.Color
		} else {
			colors[p.ID] = util.PastelColor(p.ID)
		}
	}

	chart := make([]responses.GanttEntry, 0, len(timeline))
	for _, interval := range timeline {
		entry := responses.GanttEntry{
			ID:    interval.ProcessID,
			Start: interval.Start,
			End:   interval.End,
			Color: colors[interval.ProcessID],
			Idle:  interval.Idle,
		}
		if interval.Idle {
			entry.Color = util.IdleColor
		}
		chart = append(chart, entry)
	}
	return chart
}
