package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"os-visualizer/config"
	"os-visualizer/internal/cache"
	"os-visualizer/internal/metrics"
	"os-visualizer/internal/responses"
)

type testServer struct {
	app      *fiber.App
	cache    *cache.ScheduleCache
	recorder *metrics.Recorder
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.SchedulerConfig{
		Port:                                     9095,
		RoundRobinTimeQuantum:                    2,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{2, 4},
		MaxProcesses:                             4,
		MaxBurstTime:                             100,
		MaxArrivalTime:                           1000,
	}
	scheduleCache, err := cache.NewScheduleCache(1000, 1<<20)
	require.NoError(t, err)
	t.Cleanup(scheduleCache.Close)

	logger := zaptest.NewLogger(t)
	recorder := metrics.NewRecorder()
	handler := NewSchedulerHandlerImpl(cfg, logger, scheduleCache, recorder)
	return &testServer{
		app:      NewApp(cfg, logger, handler),
		cache:    scheduleCache,
		recorder: recorder,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decodeError(t *testing.T, data []byte) string {
	t.Helper()
	var errResp responses.ErrorResponse
	require.NoError(t, json.Unmarshal(data, &errResp))
	return errResp.Error
}

func TestCalculateFirstComeFirstServe(t *testing.T) {
	server := newTestServer(t)
	status, data := server.do(t, http.MethodPost, "/calculate", `{
		"processes": [
			{"id": "P1", "arrivalTime": 0, "burstTime": 5, "color": "hsl(10, 80%, 80%)"},
			{"id": "P2", "arrivalTime": 1, "burstTime": 3}
		],
		"algorithm": "fcfs"
	}`)
	require.Equal(t, http.StatusOK, status, string(data))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &response))
	assert.Equal(t, "fcfs", response.Algorithm)
	require.Len(t, response.Results, 2)
	assert.Equal(t, 5, response.Results[0].CompletionTime)
	assert.Equal(t, 8, response.Results[1].CompletionTime)
	assert.Equal(t, 0, response.Results[0].WaitingTime)
	assert.Equal(t, 4, response.Results[1].WaitingTime)
	assert.Equal(t, 2.0, response.AverageWaitingTime)
	require.Len(t, response.GanttChart, 2)
	assert.Equal(t, "hsl(10, 80%, 80%)", response.GanttChart[0].Color)
}

func TestCalculateErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "malformed", body: `{"processes": [`, message: "invalid request format"},
		{name: "unknown algorithm", body: `{"processes": [{"id": "P1", "burstTime": 1}], "algorithm": "lottery"}`, message: `unknown algorithm "lottery"`},
		{name: "empty", body: `{"processes": [], "algorithm": "sjf"}`, message: "no processes provided"},
		{name: "zero burst", body: `{"processes": [{"id": "P1", "burstTime": 0}], "algorithm": "fcfs"}`, message: "process P1: burst time must be greater than 0"},
		{name: "negative arrival", body: `{"processes": [{"id": "P1", "arrivalTime": -2, "burstTime": 1}], "algorithm": "fcfs"}`, message: "process P1: arrival time must not be negative"},
		{name: "rr without quantum", body: `{"processes": [{"id": "P1", "burstTime": 1}], "algorithm": "rr"}`, message: "round robin requires a positive time quantum"},
		{name: "too many processes", body: `{"processes": [{"burstTime": 1}, {"burstTime": 1}, {"burstTime": 1}, {"burstTime": 1}, {"burstTime": 1}], "algorithm": "fcfs"}`, message: "too many processes: 5 (max 4)"},
		{name: "burst too long", body: `{"processes": [{"burstTime": 1}, {"burstTime": 101}], "algorithm": "fcfs"}`, message: "process P2: burst time exceeds 100"},
		{name: "arrival too late", body: `{"processes": [{"id": "P1", "arrivalTime": 1001, "burstTime": 1}], "algorithm": "fcfs"}`, message: "process P1: arrival time exceeds 1000"},
		{name: "arrival overflows clock", body: `{"processes": [{"id": "P1", "arrivalTime": 9223372036854775806, "burstTime": 5}], "algorithm": "fcfs"}`, message: "process P1: arrival time exceeds 1000"},
	}
	server := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, data := server.do(t, http.MethodPost, "/calculate", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.message, decodeError(t, data))
		})
	}
}

func TestCalculateNamesBlankIDsAroundExplicitOnes(t *testing.T) {
	server := newTestServer(t)
	status, data := server.do(t, http.MethodPost, "/calculate", `{
		"processes": [{"id": "P2", "burstTime": 2}, {"burstTime": 1}],
		"algorithm": "fcfs"
	}`)
	require.Equal(t, http.StatusOK, status, string(data))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &response))
	require.Len(t, response.Results, 2)
	assert.Equal(t, "P2", response.Results[0].ID)
	assert.Equal(t, "P3", response.Results[1].ID)
}

func TestAlgorithmRoutes(t *testing.T) {
	body := `{"processes": [
		{"id": "P1", "arrivalTime": 0, "burstTime": 5, "priority": 2},
		{"id": "P2", "arrivalTime": 1, "burstTime": 3, "priority": 1},
		{"id": "P3", "arrivalTime": 2, "burstTime": 1, "priority": 3}
	], "quantum": 2, "levels": [1, 2]}`

	server := newTestServer(t)
	for _, name := range []string{"fcfs", "sjf", "rr", "priority", "srtf", "mlfq"} {
		t.Run(name, func(t *testing.T) {
			status, data := server.do(t, http.MethodPost, "/api/v1/"+name, body)
			require.Equal(t, http.StatusOK, status, string(data))

			var response responses.ScheduleResponse
			require.NoError(t, json.Unmarshal(data, &response))
			assert.Equal(t, name, response.Algorithm)
			assert.Len(t, response.Results, 3)
			assert.Equal(t, 9, response.TotalTime)
		})
	}

	status, data := server.do(t, http.MethodPost, "/api/v1/rr", body)
	require.Equal(t, http.StatusOK, status)
	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &response))
	assert.Equal(t, []responses.GanttEntry{
		{ID: "P1", Start: 0, End: 2, Color: response.GanttChart[0].Color},
		{ID: "P2", Start: 2, End: 4, Color: response.GanttChart[1].Color},
		{ID: "P3", Start: 4, End: 5, Color: response.GanttChart[2].Color},
		{ID: "P1", Start: 5, End: 7, Color: response.GanttChart[0].Color},
		{ID: "P2", Start: 7, End: 8, Color: response.GanttChart[1].Color},
		{ID: "P1", Start: 8, End: 9, Color: response.GanttChart[0].Color},
	}, response.GanttChart)
}

func TestAllAlgorithmsUsesConfiguredDefaults(t *testing.T) {
	server := newTestServer(t)
	status, data := server.do(t, http.MethodPost, "/api/v1/all", `{"processes": [
		{"id": "P1", "arrivalTime": 0, "burstTime": 5},
		{"id": "P2", "arrivalTime": 1, "burstTime": 3}
	]}`)
	require.Equal(t, http.StatusOK, status, string(data))

	var compare responses.CompareResponse
	require.NoError(t, json.Unmarshal(data, &compare))
	require.Len(t, compare.Schedules, 6)
	assert.Equal(t, "rr", compare.Schedules[2].Algorithm)
	assert.Len(t, compare.Schedules[2].GanttChart, 5)
}

func TestListAlgorithms(t *testing.T) {
	server := newTestServer(t)
	status, data := server.do(t, http.MethodGet, "/api/v1/algorithms", "")
	require.Equal(t, http.StatusOK, status)

	var list responses.AlgorithmsResponse
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, []string{"fcfs", "sjf", "rr", "priority", "srtf", "mlfq"}, list.Algorithms)
}

func TestIdenticalRequestsAreServedFromCache(t *testing.T) {
	server := newTestServer(t)
	body := `{"processes": [{"id": "P1", "burstTime": 4}], "algorithm": "sjf"}`

	status, first := server.do(t, http.MethodPost, "/calculate", body)
	require.Equal(t, http.StatusOK, status)
	server.cache.Wait()

	status, second := server.do(t, http.MethodPost, "/calculate", body)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), server.recorder.Count("cache.misses"))
	assert.Equal(t, int64(1), server.recorder.Count("cache.hits"))
	assert.Equal(t, int64(2), server.recorder.Count("schedule.sjf.requests"))
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t)
	server.do(t, http.MethodPost, "/api/v1/fcfs", `{"processes": [{"id": "P1", "burstTime": 1}]}`)
	server.do(t, http.MethodPost, "/api/v1/fcfs", `{"processes": []}`)

	status, data := server.do(t, http.MethodGet, "/api/v1/metrics", "")
	require.Equal(t, http.StatusOK, status)

	var dump map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &dump))
	assert.Equal(t, 2.0, dump["schedule.fcfs.requests"]["count"])
	assert.Equal(t, 1.0, dump["schedule.fcfs.errors"]["count"])
}

func TestPanicsAreRecovered(t *testing.T) {
	server := newTestServer(t)
	server.app.Get("/boom", func(*fiber.Ctx) error {
		panic("boom")
	})

	status, data := server.do(t, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "can not process request", decodeError(t, data))
}
