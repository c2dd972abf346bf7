package responses

import (
	"schedsim/internal/core"
	"schedsim/internal/schedulers"
)

// GanttEntry is one interval of the execution timeline. Idle entries carry
// the IDLE sentinel process id.
type GanttEntry struct {
	ProcessID string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

// ProcessResponse carries the final per-process statistics.
type ProcessResponse struct {
	ProcessID      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	WaitingTime    int    `json:"waiting_time"`
	TurnaroundTime int    `json:"turn_around_time"`
	ResponseTime   int    `json:"response_time"`
}

// ScheduleResponse is the full outcome of one run: the Gantt sequence plus
// per-process and aggregate metrics.
type ScheduleResponse struct {
	RunID     string `json:"run_id"`
	Algorithm string `json:"algorithm"`

	Gantt []GanttEntry `json:"gantt"`

	TotalTime       int     `json:"total_time"`
	IdleTime        int     `json:"idle_time"`
	CpuUtilization  float64 `json:"cpu_utilization"`
	CpuThroughput   float64 `json:"cpu_throughput"`
	ContextSwitches int     `json:"context_switches"`

	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	AverageTurnAroundTime float64 `json:"average_turn_around_time"`

	Details []ProcessResponse `json:"details"`
}

// NewScheduleResponse assembles the wire response from a completed run and
// its metrics.
func NewScheduleResponse(result *core.SimulationResult, metrics schedulers.Metrics) ScheduleResponse {
	gantt := make([]GanttEntry, 0, len(result.Gantt))
	for _, iv := range result.Gantt {
		gantt = append(gantt, GanttEntry{ProcessID: iv.ProcessID, Start: iv.Start, End: iv.End})
	}

	details := make([]ProcessResponse, 0, len(metrics.PerProcess))
	for _, p := range metrics.PerProcess {
		details = append(details, ProcessResponse{
			ProcessID:      p.ProcessID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      p.StartTime,
			CompletionTime: p.CompletionTime,
			WaitingTime:    p.WaitingTime,
			TurnaroundTime: p.TurnaroundTime,
			ResponseTime:   p.ResponseTime,
		})
	}

	return ScheduleResponse{
		RunID:                 result.RunID,
		Algorithm:             result.Algorithm,
		Gantt:                 gantt,
		TotalTime:             metrics.TotalTime,
		IdleTime:              metrics.IdleTime,
		CpuUtilization:        metrics.CPUUtilization,
		CpuThroughput:         metrics.Throughput,
		ContextSwitches:       metrics.ContextSwitches,
		AverageWaitingTime:    metrics.AverageWaitingTime,
		AverageResponseTime:   metrics.AverageResponseTime,
		AverageTurnAroundTime: metrics.AverageTurnaroundTime,
		Details:               details,
	}
}
