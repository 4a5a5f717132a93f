// Command osim runs the operating-system simulator against a process
// arrival file and a disk description file, printing a structured trace of
// the run to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joeycumines/stumpy"
	"github.com/spf13/cobra"

	"github.com/joeycumines/osim/internal/config"
	"github.com/joeycumines/osim/internal/inputfmt"
	"github.com/joeycumines/osim/internal/osim"
	"github.com/joeycumines/osim/internal/trace"
)

const (
	defaultProcessesPath = "input/processes.txt"
	defaultFilesPath     = "input/files.txt"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "osim [processes-file] [disk-file]",
		Short: "Run the operating-system simulator against a pair of input files",
		Args:  cobra.MaximumNArgs(2),
		RunE:  run,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML file overriding partition sizes and resource unit counts")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	processesPath := defaultProcessesPath
	filesPath := defaultFilesPath
	if len(args) > 0 {
		processesPath = args[0]
	}
	if len(args) > 1 {
		filesPath = args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := stumpy.L.New(
		stumpy.L.WithLevel(stumpy.L.LevelTrace()),
		stumpy.L.WithStumpy(stumpy.WithWriter(cmd.OutOrStdout())),
	)
	sink := trace.NewSink(trace.WithRunID(logger, uuid.NewString()))

	arrivals, err := inputfmt.ParseProcesses(processesPath)
	if err != nil {
		return err
	}

	disk, err := inputfmt.ParseDisk(filesPath, sink)
	if err != nil {
		return err
	}

	sim := osim.NewSimulator(arrivals, disk.Ops, disk.NumBlocks, disk.Existing, cfg, sink)
	halted := sim.Run()
	fmt.Fprintf(cmd.OutOrStdout(), "simulation halted at t=%d\n", halted)
	return nil
}
