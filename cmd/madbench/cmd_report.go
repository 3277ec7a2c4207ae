package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/madbench/madbench/internal/analysis"
	"github.com/madbench/madbench/internal/profile"
	"github.com/madbench/madbench/internal/profileconfig"
	"github.com/madbench/madbench/internal/report"
	"github.com/madbench/madbench/internal/results"
)

var (
	reportProfileName  string
	reportOutputFormat string
	reportCombos       string
	reportConfigPath   string
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <results.json...>",
		Short: "Build performance profiles and print robustness/efficiency reports",
		Long: `Build a Dolan–Moré performance profile for each results file and print
its analysis. Files ending in .gz are decompressed transparently. Files
that yield no data are skipped, not fatal.`,
		Args: cobra.MinimumNArgs(1),
		RunE: reportCommandE,
	}

	cmd.Flags().StringVarP(&reportProfileName, "profile", "p", "time", "Registered profile to build")
	cmd.Flags().StringVarP(&reportOutputFormat, "format", "f", "table", "Output format: table or json")
	cmd.Flags().StringVar(&reportCombos, "combos", "", "Restrict to model:solver pairs, comma separated")
	cmd.Flags().StringVarP(&reportConfigPath, "config", "c", "", "YAML profile configuration file")

	return cmd
}

func reportCommandE(cmd *cobra.Command, args []string) error {
	if reportOutputFormat != "table" && reportOutputFormat != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", reportOutputFormat)
	}

	reg, err := loadRegistry(reportConfigPath)
	if err != nil {
		return err
	}
	cfg, err := reg.Get(reportProfileName)
	if err != nil {
		return err
	}

	allowed, err := parseComboList(reportCombos)
	if err != nil {
		return err
	}

	width := report.DefaultWidth
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}

	out := cmd.OutOrStdout()
	for _, path := range args {
		doc, err := results.Load(path)
		if err != nil {
			return err
		}

		p, err := profile.Build(doc.Results, doc.BenchID, cfg, allowed)
		if err != nil {
			if errors.Is(err, profile.ErrNoData) {
				fmt.Fprintf(out, "skipping %s: %v\n", path, err)
				continue
			}
			return err
		}

		a := analysis.Analyze(p)
		if reportOutputFormat == "json" {
			if err := report.WriteJSON(out, a); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, report.FormatAnalysis(a, width))
	}
	return nil
}

// loadRegistry returns the built-in registry, extended (or overwritten) by a
// YAML configuration file when one is given.
func loadRegistry(configPath string) (*profile.Registry, error) {
	reg := profile.Builtin()
	if configPath == "" {
		return reg, nil
	}
	if err := profileconfig.Load(configPath, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// parseComboList parses "exa:ipopt,jump:madnlp" into an allowed-combination
// set. An empty list means no restriction.
func parseComboList(list string) (map[profile.ComboKey]struct{}, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	allowed := make(map[profile.ComboKey]struct{})
	for _, pair := range strings.Split(list, ",") {
		parts := strings.Split(strings.TrimSpace(pair), ":")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid combo %q: expected model:solver", pair)
		}
		allowed[profile.ComboKey{Model: parts[0], Solver: parts[1]}] = struct{}{}
	}
	return allowed, nil
}
