package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
	"schedsim/internal/util"
)

var (
	algorithmFlag string
	quantumFlag   int
	fileFlag      string
	sampleFlag    string
)

func main() {
	root := &cobra.Command{
		Use:   "schedctl",
		Short: "Run CPU scheduling simulations from the command line",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one algorithm and print the Gantt chart and statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			specsReq, err := loadProcesses()
			if err != nil {
				return err
			}
			resp, err := runAlgorithm(schedulers.Algorithm(strings.ToUpper(algorithmFlag)), specsReq)
			if err != nil {
				return err
			}
			util.RenderSchedule(cmd.OutOrStdout(), resp)
			return nil
		},
	}
	runCmd.Flags().StringVarP(&algorithmFlag, "algorithm", "a", "FCFS", "one of FCFS, SJF, ROUND_ROBIN, PRIORITY")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on the same input and print a comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			specsReq, err := loadProcesses()
			if err != nil {
				return err
			}
			results := make([]responses.ScheduleResponse, 0, len(schedulers.Algorithms()))
			for _, algorithm := range schedulers.Algorithms() {
				resp, err := runAlgorithm(algorithm, specsReq)
				if err != nil {
					return err
				}
				util.RenderSchedule(cmd.OutOrStdout(), resp)
				results = append(results, resp)
			}
			util.RenderComparison(cmd.OutOrStdout(), results)
			return nil
		},
	}

	samplesCmd := &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample process sets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range util.SampleSets() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s (%d processes)\n",
					s.Name, s.Description, len(s.Processes))
			}
		},
	}

	for _, cmd := range []*cobra.Command{runCmd, compareCmd} {
		cmd.Flags().IntVarP(&quantumFlag, "quantum", "q", 2, "time quantum for Round Robin")
		cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "JSON file with a process list")
		cmd.Flags().StringVarP(&sampleFlag, "sample", "s", "", "name of a built-in sample set")
	}

	root.AddCommand(runCmd, compareCmd, samplesCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAlgorithm(algorithm schedulers.Algorithm, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	specs, err := request.Specs()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	result, err := schedulers.Run(algorithm, schedulers.Config{TimeQuantum: quantumFlag}, specs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return responses.NewScheduleResponse(result, schedulers.GenerateAnalytics(result)), nil
}

// loadProcesses reads the process list from --file, or from --sample,
// defaulting to the "default" sample set.
func loadProcesses() (requests.ScheduleRequest, error) {
	if fileFlag != "" {
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return requests.ScheduleRequest{}, err
		}
		var request requests.ScheduleRequest
		if err := json.Unmarshal(data, &request); err != nil {
			return requests.ScheduleRequest{}, fmt.Errorf("parse %s: %w", fileFlag, err)
		}
		return request, nil
	}

	name := sampleFlag
	if name == "" {
		name = "default"
	}
	sample, ok := util.SampleByName(name)
	if !ok {
		return requests.ScheduleRequest{}, fmt.Errorf("unknown sample set %q", name)
	}
	return requests.ScheduleRequest{Processes: sample.Processes}, nil
}
