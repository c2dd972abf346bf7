package schedulers

import "schedsim/internal/core"

// ProcessMetrics holds the derived timing values for one process.
type ProcessMetrics struct {
	ProcessID      string
	ArrivalTime    int
	BurstTime      int
	Priority       int
	StartTime      int
	CompletionTime int
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
}

// Metrics summarizes one completed run. Averages are over all processes;
// utilization is the busy fraction of the elapsed simulated time.
type Metrics struct {
	PerProcess []ProcessMetrics

	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	AverageResponseTime   float64

	TotalTime int
	BusyTime  int
	IdleTime  int

	CPUUtilization  float64
	Throughput      float64
	ContextSwitches int
}

// GenerateAnalytics derives the metrics for a completed run. It is a pure
// function of the result: no state is kept between calls and the same
// result always produces identical metrics.
func GenerateAnalytics(result *core.SimulationResult) Metrics {
	m := Metrics{PerProcess: make([]ProcessMetrics, 0, len(result.Processes))}

	var waitingSum, turnaroundSum, responseSum int
	for _, p := range result.Processes {
		turnaround := p.CompletionTime - p.Spec.ArrivalTime
		waiting := turnaround - p.Spec.BurstTime
		response := p.StartTime - p.Spec.ArrivalTime

		waitingSum += waiting
		turnaroundSum += turnaround
		responseSum += response

		m.PerProcess = append(m.PerProcess, ProcessMetrics{
			ProcessID:      p.Spec.ID,
			ArrivalTime:    p.Spec.ArrivalTime,
			BurstTime:      p.Spec.BurstTime,
			Priority:       p.Spec.Priority,
			StartTime:      p.StartTime,
			CompletionTime: p.CompletionTime,
			WaitingTime:    waiting,
			TurnaroundTime: turnaround,
			ResponseTime:   response,
		})
	}

	count := float64(len(result.Processes))
	m.AverageWaitingTime = float64(waitingSum) / count
	m.AverageTurnaroundTime = float64(turnaroundSum) / count
	m.AverageResponseTime = float64(responseSum) / count

	m.TotalTime = result.EndTime - result.StartTime
	for _, iv := range result.Gantt {
		if !iv.Idle() {
			m.BusyTime += iv.Duration()
		}
	}
	m.IdleTime = m.TotalTime - m.BusyTime
	if m.TotalTime > 0 {
		m.CPUUtilization = float64(m.BusyTime) / float64(m.TotalTime)
		m.Throughput = count / float64(m.TotalTime)
	}
	m.ContextSwitches = countContextSwitches(result.Gantt)

	return m
}

// countContextSwitches counts process-id transitions between consecutive
// non-idle intervals. Adjacent slices of the same process, even when
// separated by idle time, form one continuous run and contribute no switch.
func countContextSwitches(gantt []core.ExecutionInterval) int {
	switches := 0
	last := ""
	for _, iv := range gantt {
		if iv.Idle() {
			continue
		}
		if last != "" && iv.ProcessID != last {
			switches++
		}
		last = iv.ProcessID
	}
	return switches
}
