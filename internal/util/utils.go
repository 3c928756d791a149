package util

import (
	"math"

	"os-visualizer/internal/responses"
)

// CalculateAverage averages the per-process metrics, rounded to two decimals.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageTurnAroundTime, averageCompletionTime, averageResponseTime float64) {
	if len(proccessDetails) == 0 {
		return
	}

	var waitingTimeSum float64
	var turnAroundTimeSum float64
	var completionTimeSum float64
	var responseTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		turnAroundTimeSum += float64(proccess.TurnaroundTime)
		completionTimeSum += float64(proccess.CompletionTime)
		responseTimeSum += float64(proccess.ResponseTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = Round(waitingTimeSum / proccessCount)
	averageTurnAroundTime = Round(turnAroundTimeSum / proccessCount)
	averageCompletionTime = Round(completionTimeSum / proccessCount)
	averageResponseTime = Round(responseTimeSum / proccessCount)
	return
}

// Round rounds to two decimal places.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
