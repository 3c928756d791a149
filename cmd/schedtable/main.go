// Command schedtable prints schedule tables and Gantt charts for a CSV of processes.
//
//	schedtable [--algorithm all] [--quantum 2] [--levels 2,4] [--config .] processes.csv
//
// Each CSV row is id,burst,arrival[,priority]. Quantum and levels default to
// the values in config.yaml, and its request limits apply as they do to the api.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"os-visualizer/config"
	"os-visualizer/internal/report"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Fatal("schedtable failed", zap.Error(err))
	}
}

func run(args []string, w io.Writer) error {
	flags := pflag.NewFlagSet("schedtable", pflag.ContinueOnError)
	flags.SetOutput(w)
	algorithm := flags.StringP("algorithm", "a", "all", "algorithm to run, or all")
	quantum := flags.IntP("quantum", "q", 0, "round robin time quantum (default from config)")
	levels := flags.IntSlice("levels", nil, "multilevel feedback queue time quantum per level (default from config)")
	configDir := flags.String("config", ".", "directory holding config.yaml and .env")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}

	schedulerConfig, err := config.Load(filepath.Join(*configDir, ".env"), *configDir)
	if err != nil {
		return err
	}
	if !flags.Changed("quantum") {
		*quantum = schedulerConfig.RoundRobinTimeQuantum
	}
	if !flags.Changed("levels") {
		*levels = schedulerConfig.MultilevelFeedbackQueueLevelsTimeQuantum
	}

	processes, err := loadProcesses(flags.Arg(0))
	if err != nil {
		return err
	}
	request := requests.ScheduleRequest{
		Processes:         processes,
		TimeQuantum:       *quantum,
		LevelsTimeQuantum: *levels,
	}
	if err := schedulerConfig.Limits().Check(request.CoreProcesses()); err != nil {
		return err
	}

	algorithms := schedulers.Algorithms
	if *algorithm != "all" {
		selected, err := schedulers.ParseAlgorithm(*algorithm)
		if err != nil {
			return err
		}
		algorithms = []schedulers.Algorithm{selected}
	}

	for _, a := range algorithms {
		response, err := schedulers.Calculate(a, request)
		if err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}
		report.Write(w, a.Title(), response)
	}
	return nil
}

func loadProcesses(path string) ([]requests.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	defer f.Close()
	return requests.LoadProcessesCSV(f)
}
