// Package analysis derives robustness, efficiency, and failure summaries
// from a performance profile. Analyze is deterministic and side-effect-free;
// rendering a human-readable report is layered on top in the report package.
package analysis

import (
	"sort"

	"github.com/madbench/madbench/internal/profile"
)

// ratioEps absorbs floating-point noise when testing a ratio for exactly 1.
const ratioEps = 1e-9

// ComboStats holds the per-combination summary.
type ComboStats struct {
	Combo string `json:"combo"`

	// SolvedInstances is the number of distinct instances this combination
	// solved; BestInstances is how many of those it solved with ratio 1.
	SolvedInstances int `json:"solved_instances"`
	BestInstances   int `json:"best_instances"`

	// Robustness and Efficiency are percentages of the attempted instance
	// count, not of the solved count.
	Robustness float64 `json:"robustness"`
	Efficiency float64 `json:"efficiency"`
}

// Analysis is the derived summary of one profile.
type Analysis struct {
	BenchID     string `json:"bench_id"`
	ProfileName string `json:"profile"`

	NProblems      int `json:"n_problems"`
	NInstances     int `json:"n_instances"`
	NCombos        int `json:"n_combos"`
	SuccessfulRuns int `json:"n_successful_runs"`
	TotalRuns      int `json:"total_runs"`

	SuccessfulInstances   int      `json:"n_successful_instances"`
	UnsuccessfulInstances []string `json:"unsuccessful_instances"`

	// Combos is sorted by label. MostRobust and MostEfficient keep every
	// label tied at the maximum.
	Combos        []ComboStats `json:"combos"`
	MostRobust    []string     `json:"most_robust"`
	MostEfficient []string     `json:"most_efficient"`
}

// Analyze derives the summary statistics of a profile.
func Analyze(p *profile.Profile) *Analysis {
	a := &Analysis{
		BenchID:        p.BenchID,
		NInstances:     p.TotalInstances,
		NCombos:        len(p.Combos),
		SuccessfulRuns: len(p.Ratios),
		TotalRuns:      p.TotalInstances * len(p.Combos),

		// Never nil: the JSON export promises a list, not null.
		UnsuccessfulInstances: []string{},
	}
	if p.Config != nil {
		a.ProfileName = p.Config.Name
	}
	a.NProblems = countProblems(p)

	solved := make(map[string]map[string]bool, len(p.Combos))
	bests := make(map[string]int, len(p.Combos))
	solvedInstances := make(map[string]bool)
	for _, row := range p.Ratios {
		byCombo := solved[row.Combo]
		if byCombo == nil {
			byCombo = make(map[string]bool)
			solved[row.Combo] = byCombo
		}
		byCombo[row.Instance] = true
		solvedInstances[row.Instance] = true
		if row.Ratio <= 1+ratioEps {
			bests[row.Combo]++
		}
	}

	a.SuccessfulInstances = len(solvedInstances)
	for _, inst := range p.Instances {
		if !solvedInstances[inst.Key] {
			a.UnsuccessfulInstances = append(a.UnsuccessfulInstances, inst.Key)
		}
	}
	sort.Strings(a.UnsuccessfulInstances)

	a.Combos = make([]ComboStats, 0, len(p.Combos))
	for _, combo := range p.Combos {
		cs := ComboStats{
			Combo:           combo,
			SolvedInstances: len(solved[combo]),
			BestInstances:   bests[combo],
		}
		if p.TotalInstances > 0 {
			cs.Robustness = 100 * float64(cs.SolvedInstances) / float64(p.TotalInstances)
			cs.Efficiency = 100 * float64(cs.BestInstances) / float64(p.TotalInstances)
		}
		a.Combos = append(a.Combos, cs)
	}

	a.MostRobust = argmax(a.Combos, func(cs ComboStats) float64 { return cs.Robustness })
	a.MostEfficient = argmax(a.Combos, func(cs ComboStats) float64 { return cs.Efficiency })
	return a
}

// countProblems counts distinct values of the "problem" instance column when
// the profile is keyed on one, falling back to the instance count.
func countProblems(p *profile.Profile) int {
	hasProblem := false
	if p.Config != nil {
		for _, col := range p.Config.InstanceCols {
			if col == "problem" {
				hasProblem = true
				break
			}
		}
	}
	if !hasProblem {
		return p.TotalInstances
	}
	problems := make(map[string]bool)
	for _, inst := range p.Instances {
		problems[inst.Values["problem"]] = true
	}
	return len(problems)
}

// argmax returns every combo label tied at the maximum of the given measure.
func argmax(combos []ComboStats, measure func(ComboStats) float64) []string {
	if len(combos) == 0 {
		return nil
	}
	max := measure(combos[0])
	for _, cs := range combos[1:] {
		if m := measure(cs); m > max {
			max = m
		}
	}
	var winners []string
	for _, cs := range combos {
		if measure(cs) >= max-ratioEps {
			winners = append(winners, cs.Combo)
		}
	}
	return winners
}
