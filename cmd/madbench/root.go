package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "madbench",
		Short: "madbench - performance profiles for optimal-control solver benchmarks",
		Long: `madbench turns raw benchmark run records into Dolan–Moré performance
profiles: ranked, ratio-based comparisons of solver/model combinations
across problem instances, with robustness and efficiency statistics and
plottable profile curves.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newReportCommand())
	cmd.AddCommand(newCurvesCommand())
	cmd.AddCommand(newProfilesCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
