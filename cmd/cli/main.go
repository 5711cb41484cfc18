package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gomonte/adapters/excel"
	"gomonte/adapters/scenario"
	"gomonte/app"
	"gomonte/domain/run"
	"gomonte/internal"
	"gomonte/internal/analysis"
	"gomonte/internal/testkit"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gomonte",
		Short: "Deterministic Monte Carlo simulations",
	}

	rootCmd.AddCommand(
		newScenariosCmd(),
		newSimulateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List available scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTARGET\tDESCRIPTION")
			for _, s := range scenario.All() {
				fmt.Fprintf(w, "%s\t%.6f\t%s\n", s.Name(), s.Target(), s.Description())
			}
			return w.Flush()
		},
	}
}

func newSimulateCmd() *cobra.Command {
	var seed int64
	var samples int
	var reportEvery int
	var workers int
	var exportPath string

	cmd := &cobra.Command{
		Use:   "simulate [scenario]",
		Short: "Run a scenario and print the running estimate",
		Long: `Run a scenario to completion with a fixed seed and print running
estimates as samples accumulate. The same seed always reproduces the same
estimates, run after run.

Example: gomonte simulate montyhall --seed 1000 --samples 20000 --report-every 1000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Lookup(args[0])
			if err != nil {
				return err
			}

			if workers > 1 {
				return runParallel(cmd, sc.Name(), seed, samples, workers)
			}

			logger := internal.NewLogger(internal.LogLevelWarn)
			runs := app.NewRunService(testkit.NewInMemoryRunRepository(), logger)

			if reportEvery == 0 {
				reportEvery = samples / 20
				if reportEvery < 1 {
					reportEvery = 1
				}
			}

			rec, path, err := runs.Execute(cmd.Context(), sc, seed, samples, reportEvery)
			if err != nil {
				return err
			}

			for _, s := range path {
				fmt.Printf("%8d samples  estimate %.6f\n", s.SampleSize, s.Estimate)
			}
			printSummary(rec, path)

			if exportPath != "" {
				exporter := excel.NewRunExporter()
				if err := exporter.Export(rec, path, exportPath); err != nil {
					return err
				}
				fmt.Printf("exported to %s\n", exportPath)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1000, "Random seed for deterministic simulation")
	cmd.Flags().IntVar(&samples, "samples", 20000, "Number of samples to draw")
	cmd.Flags().IntVar(&reportEvery, "report-every", 0, "Print the estimate every N samples (default samples/20)")
	cmd.Flags().IntVar(&workers, "workers", 1, "Run sample chunks on N goroutines over split streams")
	cmd.Flags().StringVar(&exportPath, "export", "", "Export the run to an .xlsx file")

	return cmd
}

func runParallel(cmd *cobra.Command, name string, seed int64, samples, workers int) error {
	sc, err := scenario.Lookup(name)
	if err != nil {
		return err
	}

	driver := app.NewDriver()
	result, err := driver.SimulateParallel(cmd.Context(), sc, seed, samples, workers)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d samples on %d workers\n", name, result.Samples, workers)
	fmt.Printf("estimate %.6f (target %.6f)\n", result.Estimate, sc.Target())
	return nil
}

func printSummary(rec *run.Run, path []run.Sample) {
	fmt.Printf("\n%s: %d samples, %d successes\n", rec.Scenario, rec.Samples, rec.Successes)
	fmt.Printf("estimate %.6f (target %.6f)\n", rec.Estimate, rec.Target)

	low, high, err := analysis.WilsonInterval(rec.Successes, rec.Samples, 0.95)
	if err == nil {
		fmt.Printf("95%% interval for success ratio: [%.6f, %.6f]\n", low, high)
	}

	if len(path) >= 2 {
		tail := make([]float64, 0, len(path))
		for _, s := range path[len(path)/2:] {
			tail = append(tail, s.Estimate)
		}
		if summary, err := analysis.SummarizeEstimates(tail); err == nil {
			fmt.Printf("tail estimates: mean %.6f, stddev %.6f\n", summary.Mean, summary.StdDev)
		}
	}
}
