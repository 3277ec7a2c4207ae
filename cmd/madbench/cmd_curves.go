package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madbench/madbench/internal/curve"
	"github.com/madbench/madbench/internal/profile"
	"github.com/madbench/madbench/internal/report"
	"github.com/madbench/madbench/internal/results"
)

var (
	curvesProfileName string
	curvesConfigPath  string
	curvesMarkerCount int
)

func newCurvesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curves <results.json>",
		Short: "Emit profile curve points and marker indices as JSON",
		Long: `Build a performance profile and emit, for each solver combination, the
step-function points of its Dolan–Moré curve plus log-spaced marker
indices, as JSON for external chart renderers.`,
		Args: cobra.ExactArgs(1),
		RunE: curvesCommandE,
	}

	cmd.Flags().StringVarP(&curvesProfileName, "profile", "p", "time", "Registered profile to build")
	cmd.Flags().StringVarP(&curvesConfigPath, "config", "c", "", "YAML profile configuration file")
	cmd.Flags().IntVarP(&curvesMarkerCount, "markers", "m", curve.DefaultMarkerCount, "Marker count per curve")

	return cmd
}

func curvesCommandE(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry(curvesConfigPath)
	if err != nil {
		return err
	}
	cfg, err := reg.Get(curvesProfileName)
	if err != nil {
		return err
	}

	doc, err := results.Load(args[0])
	if err != nil {
		return err
	}

	p, err := profile.Build(doc.Results, doc.BenchID, cfg, nil)
	if err != nil {
		if errors.Is(err, profile.ErrNoData) {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return err
	}

	return report.WriteJSON(cmd.OutOrStdout(), curve.BuildSet(p, curvesMarkerCount))
}
