package schedulers

import (
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
)

// Calculate validates request, simulates algorithm and builds the response.
// It either fails with a *ValidationError or returns a complete result.
func Calculate(algorithm Algorithm, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	processes := request.CoreProcesses()
	if err := ValidateProcesses(processes); err != nil {
		return responses.ScheduleResponse{}, err
	}

	scheduler, err := New(algorithm, Options{
		TimeQuantum:       request.TimeQuantum,
		LevelsTimeQuantum: request.LevelsTimeQuantum,
	})
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	timeline := scheduler.Schedule(processes)
	return GenerateResponse(scheduler.Name(), processes, timeline), nil
}

// CalculateAll runs every algorithm on the same request. defaults supplies the
// quantum and levels when the request leaves them out.
func CalculateAll(request requests.ScheduleRequest, defaults Options) (responses.CompareResponse, error) {
	if request.TimeQuantum <= 0 {
		request.TimeQuantum = defaults.TimeQuantum
	}
	if len(request.LevelsTimeQuantum) == 0 {
		request.LevelsTimeQuantum = defaults.LevelsTimeQuantum
	}

	schedules := make([]responses.ScheduleResponse, 0, len(Algorithms))
	for _, algorithm := range Algorithms {
		response, err := Calculate(algorithm, request)
		if err != nil {
			return responses.CompareResponse{}, err
		}
		schedules = append(schedules, response)
	}
	return responses.CompareResponse{Schedules: schedules}, nil
}
