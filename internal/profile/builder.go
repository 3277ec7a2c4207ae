package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/madbench/madbench/internal/results"
)

// ErrNoData signals that a build produced nothing to report: no instances in
// the input, no row surviving the filters, or no evaluable metric. Callers
// should skip the benchmark rather than abort.
var ErrNoData = errors.New("no data")

// ComboKey identifies a (model, solver) pair for the allowed-combination
// filter.
type ComboKey struct {
	Model  string
	Solver string
}

// cell is one (instance, combination) group during building.
type cell struct {
	instance string
	combo    string
	comboKey ComboKey
	metrics  []float64
}

// Build converts raw run records into a performance Profile.
//
// The instance set is computed over the entire input, so instances with no
// successful run still count as attempted. Rows then pass the configured row
// filter and success predicate; rows whose metric is missing are silently
// dropped. Repeated runs of the same (instance, combination) cell are
// reduced with the configured aggregator, the per-instance best metric is
// selected with the criterion's comparator, and each cell's ratio is its
// metric divided by that best.
//
// allowed, when non-nil, restricts rows to the given (model, solver) pairs.
// The filter only supports the conventional ["model", "solver"] solver
// column layout; for any other layout it is skipped with a warning and
// processing continues unfiltered.
//
// Build fails with ErrNoData (wrapped) when there is nothing to report.
func Build(rows []results.Row, benchID string, cfg *Config, allowed map[ComboKey]struct{}) (*Profile, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Instances are counted over all rows, success or not.
	instances := make(map[string]Instance)
	for _, row := range rows {
		inst := instanceOf(row, cfg.InstanceCols)
		if _, ok := instances[inst.Key]; !ok {
			instances[inst.Key] = inst
		}
	}
	if len(instances) == 0 {
		return nil, fmt.Errorf("%w: no instances in %q", ErrNoData, benchID)
	}

	applyAllowed := allowed != nil
	if applyAllowed && !isModelSolverLayout(cfg.SolverCols) {
		slog.Warn("allowed-combination filter skipped: only the (model, solver) column layout is supported",
			"bench_id", benchID,
			"profile", cfg.Name,
			"solver_columns", cfg.SolverCols)
		applyAllowed = false
	}

	// Group surviving metrics by (instance, combination).
	cells := make(map[string]*cell)
	var cellOrder []string
	for _, row := range rows {
		if cfg.RowFilter != nil && !cfg.RowFilter(row) {
			continue
		}
		if !cfg.IsSuccess(row) {
			continue
		}
		key := ComboKey{Model: row.String("model"), Solver: row.String("solver")}
		if applyAllowed {
			if _, ok := allowed[key]; !ok {
				continue
			}
		}
		metric, ok := cfg.Criterion.Value(row)
		if !ok {
			continue
		}

		inst := instanceOf(row, cfg.InstanceCols)
		combo := comboLabel(row, cfg.SolverCols)
		ck := inst.Key + "\x00" + combo
		c, ok := cells[ck]
		if !ok {
			c = &cell{instance: inst.Key, combo: combo, comboKey: key}
			cells[ck] = c
			cellOrder = append(cellOrder, ck)
		}
		c.metrics = append(c.metrics, metric)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: no successful run with an evaluable %q metric in %q",
			ErrNoData, cfg.Criterion.Name, benchID)
	}

	// Aggregate repeated runs, then fold the per-instance best.
	aggregate := cfg.aggregator()
	best := make(map[string]float64)
	metrics := make(map[string]float64, len(cells))
	for _, ck := range cellOrder {
		c := cells[ck]
		m := aggregate(c.metrics)
		metrics[ck] = m
		cur, ok := best[c.instance]
		if !ok || cfg.Criterion.Better(m, cur) {
			best[c.instance] = m
		}
	}

	ratios := make([]RatioRow, 0, len(cells))
	comboSet := make(map[string]bool)
	minRatio := math.Inf(1)
	maxRatio := 1.0
	for _, ck := range cellOrder {
		c := cells[ck]
		m := metrics[ck]
		b := best[c.instance]
		ratio := m / b
		ratios = append(ratios, RatioRow{
			Instance:   c.instance,
			Combo:      c.combo,
			Metric:     m,
			BestMetric: b,
			Ratio:      ratio,
		})
		comboSet[c.combo] = true
		if ratio < minRatio {
			minRatio = ratio
		}
		if ratio > maxRatio {
			maxRatio = ratio
		}
	}
	sort.Slice(ratios, func(i, j int) bool {
		if ratios[i].Instance != ratios[j].Instance {
			return ratios[i].Instance < ratios[j].Instance
		}
		return ratios[i].Combo < ratios[j].Combo
	})

	combos := make([]string, 0, len(comboSet))
	for combo := range comboSet {
		combos = append(combos, combo)
	}
	sort.Strings(combos)

	instList := make([]Instance, 0, len(instances))
	for _, inst := range instances {
		instList = append(instList, inst)
	}
	sort.Slice(instList, func(i, j int) bool { return instList[i].Key < instList[j].Key })

	return &Profile{
		BenchID:        benchID,
		Instances:      instList,
		Ratios:         ratios,
		Combos:         combos,
		TotalInstances: len(instList),
		MinRatio:       minRatio,
		MaxRatio:       maxRatio,
		Config:         cfg,
	}, nil
}

func isModelSolverLayout(cols []string) bool {
	return len(cols) == 2 && cols[0] == "model" && cols[1] == "solver"
}
