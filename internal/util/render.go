package util

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/core"
	"schedsim/internal/responses"
)

// RenderGantt writes the execution timeline as a text chart, one bar segment
// per interval with the boundary times underneath.
func RenderGantt(w io.Writer, resp responses.ScheduleResponse) {
	if len(resp.Gantt) == 0 {
		return
	}

	bar := "|"
	times := strconv.Itoa(resp.Gantt[0].Start)
	for _, entry := range resp.Gantt {
		label := entry.ProcessID
		if label == core.IdleProcessID {
			label = "--"
		}
		cell := fmt.Sprintf(" %s ", label)
		bar += cell + "|"
		end := strconv.Itoa(entry.End)
		times += fmt.Sprintf("%*s", len(cell)+1, end)
	}
	_, _ = fmt.Fprintln(w, bar)
	_, _ = fmt.Fprintln(w, times)
}

// RenderSchedule writes the per-process statistics table with the aggregate
// averages in the footer.
func RenderSchedule(w io.Writer, resp responses.ScheduleResponse) {
	_, _ = fmt.Fprintf(w, "%s schedule\n", resp.Algorithm)
	RenderGantt(w, resp)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Start", "Completion", "Wait", "Turnaround", "Response"})
	for _, d := range resp.Details {
		table.Append([]string{
			d.ProcessID,
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.StartTime),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnaroundTime),
			strconv.Itoa(d.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("avg %.2f", resp.AverageWaitingTime),
		fmt.Sprintf("avg %.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("avg %.2f", resp.AverageResponseTime),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "total %d, idle %d, utilization %.2f%%, throughput %.3f/t, context switches %d\n\n",
		resp.TotalTime, resp.IdleTime, resp.CpuUtilization*100, resp.CpuThroughput, resp.ContextSwitches)
}

// RenderComparison writes one aggregate row per algorithm.
func RenderComparison(w io.Writer, results []responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Utilization", "Switches"})
	for _, resp := range results {
		table.Append([]string{
			resp.Algorithm,
			fmt.Sprintf("%.2f", resp.AverageWaitingTime),
			fmt.Sprintf("%.2f", resp.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", resp.AverageResponseTime),
			fmt.Sprintf("%.2f%%", resp.CpuUtilization*100),
			strconv.Itoa(resp.ContextSwitches),
		})
	}
	table.Render()
}
