package profile

import (
	"github.com/madbench/madbench/internal/results"
)

// Criterion pairs a named metric extractor with an is-better comparator.
//
// Ratios divide a combination's metric by the best metric achieved on the
// same instance, which keeps the Dolan–Moré ≥1 convention only when smaller
// metrics are better. Criteria must normalize to that orientation: use
// Minimize for metrics like solve time, and Maximize (which stores the
// reciprocal of a positive raw metric) when larger raw values win.
type Criterion struct {
	// Name identifies the criterion in configuration files and reports.
	Name string

	// Value extracts the metric from a raw run record. The second return is
	// false when the metric is missing or not evaluable for this row.
	Value func(results.Row) (float64, bool)

	// Better reports whether challenger a should be preferred over incumbent b.
	Better func(a, b float64) bool
}

// Minimize builds a smaller-is-better criterion over a (possibly dotted)
// numeric field. The field must be on a positive scale; for signed metrics
// use MinimizePositive so non-positive values cannot poison the ratios.
func Minimize(name, field string) Criterion {
	return Criterion{
		Name: name,
		Value: func(r results.Row) (float64, bool) {
			return r.Float(field)
		},
		Better: func(a, b float64) bool { return a <= b },
	}
}

// MinimizePositive is Minimize for signed fields: non-positive raw values
// are treated as missing, since dividing signed metrics would push ratios
// below 1 (or negative) and break the ≥1 convention.
func MinimizePositive(name, field string) Criterion {
	return Criterion{
		Name: name,
		Value: func(r results.Row) (float64, bool) {
			v, ok := r.Float(field)
			if !ok || v <= 0 {
				return 0, false
			}
			return v, true
		},
		Better: func(a, b float64) bool { return a <= b },
	}
}

// Maximize builds a criterion for a metric where larger raw values are
// better. The stored metric is the reciprocal of the raw value, so ratios
// stay on the ≥1 side. Non-positive raw values are treated as missing.
func Maximize(name, field string) Criterion {
	return Criterion{
		Name: name,
		Value: func(r results.Row) (float64, bool) {
			v, ok := r.Float(field)
			if !ok || v <= 0 {
				return 0, false
			}
			return 1 / v, true
		},
		Better: func(a, b float64) bool { return a <= b },
	}
}

// TimeCriterion measures wall-clock solve time from the nested benchmark object.
func TimeCriterion() Criterion {
	return Minimize("time", "benchmark.time")
}

// IterationsCriterion measures solver iteration count.
func IterationsCriterion() Criterion {
	return Minimize("iterations", "iterations")
}

// ObjectiveCriterion measures the final objective value (minimization
// problems). Objectives can be negative, so non-positive values are treated
// as missing rather than divided into a sub-1 ratio.
func ObjectiveCriterion() Criterion {
	return MinimizePositive("objective", "objective")
}
