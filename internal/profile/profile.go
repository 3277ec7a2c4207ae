package profile

import (
	"sort"
	"strings"

	"github.com/madbench/madbench/internal/results"
)

// Instance identifies one problem configuration attempted in a benchmark.
type Instance struct {
	// Key is the instance column values joined with "/", e.g. "beam/200".
	// Any "/" inside a value is escaped as `\/` (and `\` as `\\`) so two
	// different value tuples can never share a key.
	Key string `json:"key"`
	// Values maps each instance column to its rendered (unescaped) value.
	Values map[string]string `json:"values"`
}

// RatioRow is the performance record for one (instance, combination) cell:
// the aggregated metric, the best metric any combination achieved on that
// instance, and their quotient.
type RatioRow struct {
	Instance   string  `json:"instance"`
	Combo      string  `json:"combo"`
	Metric     float64 `json:"metric"`
	BestMetric float64 `json:"best_metric"`
	Ratio      float64 `json:"ratio"`
}

// Profile holds the Dolan–Moré performance ratios for one benchmark under
// one configuration. It is built once from a snapshot of raw rows and is
// immutable afterwards; when the raw data changes the profile is rebuilt,
// never updated in place.
type Profile struct {
	BenchID string `json:"bench_id"`

	// Instances is every instance attempted in the input, successful or not,
	// sorted by key.
	Instances []Instance `json:"instances"`

	// Ratios has one row per (instance, combination) cell with at least one
	// successful run. Instances nobody solved appear in Instances but have
	// no rows here, so no curve built from this profile can reach 1.0:
	// the Dolan–Moré convention of an implicit infinite ratio for failures.
	Ratios []RatioRow `json:"ratio_table"`

	// Combos is the distinct combination labels, sorted.
	Combos []string `json:"combos"`

	TotalInstances int     `json:"total_instances"`
	MinRatio       float64 `json:"min_ratio"`
	MaxRatio       float64 `json:"max_ratio"`

	Config *Config `json:"-"`
}

// RatiosFor returns the sorted ratios observed for one combination.
func (p *Profile) RatiosFor(combo string) []float64 {
	var ratios []float64
	for _, row := range p.Ratios {
		if row.Combo == combo {
			ratios = append(ratios, row.Ratio)
		}
	}
	sort.Float64s(ratios)
	return ratios
}

// instanceOf projects a row onto the instance columns.
func instanceOf(row results.Row, cols []string) Instance {
	values := make(map[string]string, len(cols))
	parts := make([]string, len(cols))
	for i, col := range cols {
		v := row.String(col)
		values[col] = v
		parts[i] = escapeKeyPart(v)
	}
	return Instance{Key: strings.Join(parts, "/"), Values: values}
}

// escapeKeyPart keeps "/" usable as the key separator when a column value
// itself contains one.
func escapeKeyPart(s string) string {
	if !strings.ContainsAny(s, `/\`) {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "/", `\/`)
}

// comboLabel projects a row onto the solver columns and renders the display
// label, e.g. "(exa, ipopt)".
func comboLabel(row results.Row, cols []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = row.String(col)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
