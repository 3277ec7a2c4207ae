// Package profileconfig loads profile configurations declared in YAML and
// registers them, overwriting built-ins of the same name.
package profileconfig

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/madbench/madbench/internal/profile"
	"github.com/madbench/madbench/internal/results"
	"github.com/madbench/madbench/internal/stats"
)

// File is the top-level YAML document.
type File struct {
	Profiles []Entry `yaml:"profiles"`
}

// Entry declares one named profile configuration.
type Entry struct {
	Name            string         `yaml:"name"`
	Criterion       string         `yaml:"criterion"`
	InstanceColumns []string       `yaml:"instance_columns"`
	SolverColumns   []string       `yaml:"solver_columns"`
	Aggregate       string         `yaml:"aggregate"`
	Options         map[string]any `yaml:"options"`
}

// entryOptions is the typed shape of the loosely-typed options map.
type entryOptions struct {
	MinGridSize int      `mapstructure:"min_grid_size"`
	Problems    []string `mapstructure:"problems"`
}

var criteria = map[string]func() profile.Criterion{
	"time":       profile.TimeCriterion,
	"iterations": profile.IterationsCriterion,
	"objective":  profile.ObjectiveCriterion,
}

var aggregates = map[string]func([]float64) float64{
	"mean":    stats.Mean,
	"median":  stats.Median,
	"geomean": stats.GeoMean,
	"min":     stats.Min,
	"max":     stats.Max,
}

// Load reads a YAML profile file and registers every entry. Unknown
// criterion or aggregate names fail at load time, not at build time.
func Load(path string, reg *profile.Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("profileconfig: read %s: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("profileconfig: parse %s: %w", path, err)
	}

	for _, entry := range file.Profiles {
		cfg, err := Parse(entry)
		if err != nil {
			return fmt.Errorf("profileconfig: %s: %w", path, err)
		}
		reg.Register(cfg.Name, cfg)
	}
	return nil
}

// Parse converts one YAML entry into a validated profile configuration.
func Parse(entry Entry) (*profile.Config, error) {
	if entry.Name == "" {
		return nil, fmt.Errorf("profile entry has no name")
	}

	criterionName := entry.Criterion
	if criterionName == "" {
		criterionName = entry.Name
	}
	newCriterion, ok := criteria[criterionName]
	if !ok {
		return nil, fmt.Errorf("profile %q: unknown criterion %q", entry.Name, criterionName)
	}

	aggregateName := entry.Aggregate
	if aggregateName == "" {
		aggregateName = "mean"
	}
	aggregate, ok := aggregates[aggregateName]
	if !ok {
		return nil, fmt.Errorf("profile %q: unknown aggregate %q", entry.Name, aggregateName)
	}

	var opts entryOptions
	if err := mapstructure.Decode(entry.Options, &opts); err != nil {
		return nil, fmt.Errorf("profile %q: options: %w", entry.Name, err)
	}

	cfg := profile.DefaultConfig(entry.Name, newCriterion())
	if len(entry.InstanceColumns) > 0 {
		cfg.InstanceCols = entry.InstanceColumns
	}
	if len(entry.SolverColumns) > 0 {
		cfg.SolverCols = entry.SolverColumns
	}
	cfg.Aggregate = aggregate
	cfg.RowFilter = rowFilter(opts)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// rowFilter builds the additional row predicate from the typed options.
// Returns nil when the options select nothing, keeping every row.
func rowFilter(opts entryOptions) func(results.Row) bool {
	if opts.MinGridSize <= 0 && len(opts.Problems) == 0 {
		return nil
	}
	problems := make(map[string]bool, len(opts.Problems))
	for _, p := range opts.Problems {
		problems[p] = true
	}
	return func(r results.Row) bool {
		if opts.MinGridSize > 0 {
			n, ok := r.Float("grid_size")
			if !ok || n < float64(opts.MinGridSize) {
				return false
			}
		}
		if len(problems) > 0 && !problems[r.String("problem")] {
			return false
		}
		return true
	}
}
