package profile

import (
	"fmt"

	"github.com/madbench/madbench/internal/results"
	"github.com/madbench/madbench/internal/stats"
)

// Config declares how a performance profile is built from raw run records:
// which columns identify a problem instance, which identify a solver
// combination, the criterion to rank by, and how rows are filtered and
// repeated runs aggregated.
type Config struct {
	// Name is the registry key for this configuration.
	Name string

	// InstanceCols are the columns whose value tuple identifies a problem
	// instance (commonly problem name and grid size).
	InstanceCols []string

	// SolverCols are the columns whose value tuple identifies a solver
	// combination (commonly model and solver).
	SolverCols []string

	// Criterion extracts and ranks the metric.
	Criterion Criterion

	// IsSuccess reports whether a run solved its instance. Unsuccessful rows
	// never produce ratios but their instances still count as attempted.
	IsSuccess func(results.Row) bool

	// RowFilter is an additional predicate applied before success filtering.
	// A nil filter keeps every row.
	RowFilter func(results.Row) bool

	// Aggregate reduces the metrics of repeated (instance, combination) runs
	// to a single value. A nil aggregator means the arithmetic mean.
	Aggregate func([]float64) float64
}

// Validate checks the structural invariants: both column sets are non-empty
// and disjoint, and the criterion and success predicate are present.
func (c *Config) Validate() error {
	if len(c.InstanceCols) == 0 {
		return fmt.Errorf("profile %q: instance columns must not be empty", c.Name)
	}
	if len(c.SolverCols) == 0 {
		return fmt.Errorf("profile %q: solver columns must not be empty", c.Name)
	}
	seen := make(map[string]bool, len(c.InstanceCols))
	for _, col := range c.InstanceCols {
		seen[col] = true
	}
	for _, col := range c.SolverCols {
		if seen[col] {
			return fmt.Errorf("profile %q: column %q appears in both instance and solver columns", c.Name, col)
		}
	}
	if c.Criterion.Value == nil || c.Criterion.Better == nil {
		return fmt.Errorf("profile %q: criterion is incomplete", c.Name)
	}
	if c.IsSuccess == nil {
		return fmt.Errorf("profile %q: success predicate is required", c.Name)
	}
	return nil
}

// aggregator returns the configured aggregator, defaulting to the mean.
func (c *Config) aggregator() func([]float64) float64 {
	if c.Aggregate != nil {
		return c.Aggregate
	}
	return stats.Mean
}

// SuccessField is the conventional success predicate: the boolean "success"
// field of the run record.
func SuccessField(r results.Row) bool {
	return r.Bool("success")
}

// DefaultConfig builds a configuration with the conventional column layout
// (problem/grid_size instances, model/solver combinations), the given
// criterion, and mean aggregation of repeated runs.
func DefaultConfig(name string, crit Criterion) *Config {
	return &Config{
		Name:         name,
		InstanceCols: []string{"problem", "grid_size"},
		SolverCols:   []string{"model", "solver"},
		Criterion:    crit,
		IsSuccess:    SuccessField,
		Aggregate:    stats.Mean,
	}
}
