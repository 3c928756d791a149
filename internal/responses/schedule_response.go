package responses

type ProcessResponse struct {
	ID             string `json:"id"`
	ArrivalTime    int    `json:"arrivalTime"`
	BurstTime      int    `json:"burstTime"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completionTime"`
	TurnaroundTime int    `json:"turnaroundTime"`
	WaitingTime    int    `json:"waitingTime"`
	ResponseTime   int    `json:"responseTime"`
}

type GanttEntry struct {
	ID    string `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Color string `json:"color"`
	Idle  bool   `json:"idle,omitempty"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Results               []ProcessResponse `json:"results"`
	AverageWaitingTime    float64           `json:"avg_wt"`
	AverageTurnAroundTime float64           `json:"avg_tat"`
	AverageCompletionTime float64           `json:"avg_ct"`
	AverageResponseTime   float64           `json:"avg_rt"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	ContextSwitches       int               `json:"context_switches"`
	GanttChart            []GanttEntry      `json:"gantt_chart"`
}

type CompareResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
