package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var profilesConfigPath string

func newProfilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List registered profile configurations",
		Args:  cobra.NoArgs,
		RunE:  profilesCommandE,
	}

	cmd.Flags().StringVarP(&profilesConfigPath, "config", "c", "", "YAML profile configuration file")

	return cmd
}

func profilesCommandE(cmd *cobra.Command, _ []string) error {
	reg, err := loadRegistry(profilesConfigPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range reg.Names() {
		cfg, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-14s criterion=%s instances=(%s) combos=(%s)\n",
			name,
			cfg.Criterion.Name,
			strings.Join(cfg.InstanceCols, ", "),
			strings.Join(cfg.SolverCols, ", "))
	}
	return nil
}
