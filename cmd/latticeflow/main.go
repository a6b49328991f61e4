package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/latticeflow/internal/config"
	"github.com/san-kum/latticeflow/internal/decomp"
	"github.com/san-kum/latticeflow/internal/export"
	"github.com/san-kum/latticeflow/internal/sim"
	"github.com/san-kum/latticeflow/internal/tui"
	"github.com/san-kum/latticeflow/internal/viz"
)

var (
	workers        int
	preset         string
	configFile     string
	finalStatePath string
	avVelsPath     string
	plotAfter      bool
	live           bool
	plotWidth      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "latticeflow",
		Short: "d2q9-bgk lattice-boltzmann flow simulator",
	}

	runCmd := &cobra.Command{
		Use:   "run [paramfile] [obstaclefile]",
		Short: "run a simulation",
		Long:  "Run a simulation from a parameter file and an obstacle file.\nWith --preset the parameter file is omitted: run --preset 128x128 [obstaclefile].",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "use a named parameter preset instead of a parameter file")
	runCmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = auto, must divide grid height)")
	runCmd.Flags().StringVar(&configFile, "config", "", "run settings file (yaml)")
	runCmd.Flags().StringVar(&finalStatePath, "final-state", config.DefaultFinalStatePath, "final state output path")
	runCmd.Flags().StringVar(&avVelsPath, "av-vels", config.DefaultAvVelsPath, "velocity trace output path")
	runCmd.Flags().BoolVar(&plotAfter, "plot", false, "plot the velocity trace after the run")
	runCmd.Flags().BoolVar(&live, "live", false, "show live progress while running")

	plotCmd := &cobra.Command{
		Use:   "plot [tracefile]",
		Short: "plot a velocity trace file",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrace,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width in columns")

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write a default run settings file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "latticeflow.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultRunConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the built-in parameter presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("%-10s %dx%d, %d iterations, omega %.2f\n",
					name, p.NX, p.NY, p.MaxIters, p.Omega)
			}
		},
	}

	rootCmd.AddCommand(runCmd, plotCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	var params *config.Params
	var err error
	obstacleFile := args[len(args)-1]
	if preset != "" {
		if len(args) != 1 {
			return fmt.Errorf("--preset replaces the parameter file; expected only an obstacle file")
		}
		params, err = config.GetPreset(preset)
	} else {
		if len(args) != 2 {
			return fmt.Errorf("expected a parameter file and an obstacle file")
		}
		params, err = config.LoadParams(args[0])
	}
	if err != nil {
		return err
	}
	mask, err := config.LoadObstacles(obstacleFile, params.NX, params.NY)
	if err != nil {
		return err
	}

	rc := config.DefaultRunConfig()
	if configFile != "" {
		rc, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if cmd.Flags().Changed("final-state") || rc.FinalStatePath == "" {
		rc.FinalStatePath = finalStatePath
	}
	if cmd.Flags().Changed("av-vels") || rc.AvVelsPath == "" {
		rc.AvVelsPath = avVelsPath
	}
	if cmd.Flags().Changed("plot") {
		rc.Plot = plotAfter
	}
	if cmd.Flags().Changed("live") {
		rc.Live = live
	}
	if cmd.Flags().Changed("workers") {
		rc.Workers = workers
	} else {
		// The auto-chosen count must divide the grid height; an
		// explicit --workers that doesn't is an error instead.
		rc.Workers = decomp.Fit(params.NY, rc.Workers)
	}

	s, err := sim.New(params, mask, rc.Workers)
	if err != nil {
		return err
	}

	fmt.Printf("running %dx%d grid, %d iterations, %d workers...\n",
		params.NX, params.NY, params.MaxIters, rc.Workers)

	start := time.Now()
	var result *sim.Result
	if rc.Live {
		result, err = runWithProgress(s, params.MaxIters)
	} else {
		result, err = s.Run(context.Background())
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println("==done==")
	fmt.Printf("Reynolds number:\t\t%.12E\n", result.Reynolds)
	fmt.Printf("Elapsed time:\t\t\t%.6f (s)\n", elapsed.Seconds())

	if err := export.WriteFinalState(rc.FinalStatePath, s.Field()); err != nil {
		return err
	}
	if err := export.WriteAvVels(rc.AvVelsPath, result.AvgVelocities); err != nil {
		return err
	}

	if rc.Plot {
		fmt.Println()
		fmt.Println(viz.Trace(result.AvgVelocities, plotWidth))
	}
	return nil
}

func plotTrace(cmd *cobra.Command, args []string) error {
	trace, err := export.ReadAvVels(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.Trace(trace, plotWidth))
	return nil
}

// runWithProgress drives the simulator under a bubbletea progress
// view. Quitting the view cancels the run.
func runWithProgress(s *sim.Simulator, totalIters int) (*sim.Result, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(tui.NewModel(totalIters))
	s.AddObserver(&tui.Relay{Program: p})

	var result *sim.Result
	var runErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		result, runErr = s.Run(ctx)
		p.Send(tui.DoneMsg{Err: runErr})
	}()

	_, uiErr := p.Run()
	// Quitting the view early cancels the run; wait for the partial
	// result to land before reading it.
	cancel()
	<-done

	if uiErr != nil {
		return nil, uiErr
	}
	if runErr != nil && runErr != context.Canceled {
		return nil, runErr
	}
	return result, nil
}
