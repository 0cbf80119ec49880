// Command vmsim replays a virtual-memory trace against a configurable
// page-replacement policy and reports paging costs.
package main

import (
	"fmt"
	"os"

	"github.com/tuannm99/vmsim/internal/config"
	"github.com/tuannm99/vmsim/internal/frame"
	"github.com/tuannm99/vmsim/internal/input"
	"github.com/tuannm99/vmsim/internal/pager"
	"github.com/tuannm99/vmsim/internal/report"
	"github.com/tuannm99/vmsim/internal/sim"
	"github.com/tuannm99/vmsim/pkg/util"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	inputFile, err := os.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("could not open the input file: %w", err)
	}
	defer util.CloseFileFunc(inputFile)

	randFile, err := os.Open(cfg.RandomPath)
	if err != nil {
		return fmt.Errorf("could not open the rand file: %w", err)
	}
	defer util.CloseFileFunc(randFile)

	procs, instructions, err := input.ReadTrace(inputFile)
	if err != nil {
		return err
	}

	var randSrc pager.Source
	if cfg.Algorithm == pager.AlgoRandom {
		stream, err := input.ReadRandom(randFile)
		if err != nil {
			return err
		}
		randSrc = stream
	}

	p, err := pager.New(cfg.Algorithm, randSrc)
	if err != nil {
		return err
	}

	frames := frame.NewTable(cfg.Frames)
	simulator := sim.New(procs, frames, p, os.Stdout)
	simulator.Run(instructions)

	if cfg.Report.PageTables {
		report.PageTables(os.Stdout, procs)
	}
	if cfg.Report.FrameTable {
		report.FrameTable(os.Stdout, frames)
	}
	if cfg.Report.Summary {
		report.Summary(os.Stdout, procs)
		report.TotalCost(os.Stdout, simulator.InstCount, simulator.CtxSwitches, simulator.ProcessExits, simulator.Cost)
	}

	return nil
}
