// Package curve turns a performance profile into plottable step-function
// points and marker positions. Chart rendering itself lives outside this
// module; renderers consume the Set value.
package curve

import (
	"math"
	"sort"

	"github.com/madbench/madbench/internal/profile"
)

// DefaultMarkerCount is the marker target used when a renderer does not ask
// for a specific count.
const DefaultMarkerCount = 6

// Curve returns the Dolan–Moré step function for one combination: xs is the
// sorted ratios observed for that combination and ys[i] is the fraction of
// all attempted instances solved within ratio xs[i]. The function is
// non-decreasing and ys never exceeds 1; a combination that failed on some
// instance tops out below 1.
func Curve(p *profile.Profile, combo string) (xs, ys []float64) {
	xs = p.RatiosFor(combo)
	if len(xs) == 0 {
		return nil, nil
	}
	ys = make([]float64, len(xs))
	total := float64(p.TotalInstances)
	for i, x := range xs {
		// count of ratios <= x; duplicates share the same y
		n := sort.SearchFloat64s(xs, math.Nextafter(x, math.Inf(1)))
		ys[i] = float64(n) / total
	}
	return xs, ys
}

// MarkerIndices picks up to count indices into the sorted ratio sequence for
// marker placement on a log-scaled plot. Targets are spaced uniformly in
// log2 between the first and last ratio, then snapped to the nearest
// observed ratio. The result is sorted, unique, within range, and includes
// index 0 whenever the sequence is non-empty.
func MarkerIndices(ratios []float64, count int) []int {
	n := len(ratios)
	if n == 0 {
		return nil
	}
	if n == 1 || count <= 1 {
		return []int{0}
	}

	lo := math.Log2(ratios[0])
	hi := math.Log2(ratios[n-1])

	seen := make(map[int]bool, count)
	var indices []int
	for k := 0; k < count; k++ {
		pos := lo + (hi-lo)*float64(k)/float64(count-1)
		target := math.Exp2(pos)

		nearest := 0
		bestDist := math.Abs(ratios[0] - target)
		for i := 1; i < n; i++ {
			if d := math.Abs(ratios[i] - target); d < bestDist {
				bestDist = d
				nearest = i
			}
		}
		if !seen[nearest] {
			seen[nearest] = true
			indices = append(indices, nearest)
		}
	}
	sort.Ints(indices)
	return indices
}

// ComboCurve is the plottable data for one combination.
type ComboCurve struct {
	Combo   string    `json:"combo"`
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	Markers []int     `json:"marker_indices"`
}

// Set bundles the curves of every combination in a profile.
type Set struct {
	BenchID        string       `json:"bench_id"`
	ProfileName    string       `json:"profile"`
	TotalInstances int          `json:"total_instances"`
	MaxRatio       float64      `json:"max_ratio"`
	Curves         []ComboCurve `json:"curves"`
}

// BuildSet generates the curve and marker data for every combination.
func BuildSet(p *profile.Profile, markerCount int) *Set {
	s := &Set{
		BenchID:        p.BenchID,
		TotalInstances: p.TotalInstances,
		MaxRatio:       p.MaxRatio,
	}
	if p.Config != nil {
		s.ProfileName = p.Config.Name
	}
	for _, combo := range p.Combos {
		xs, ys := Curve(p, combo)
		s.Curves = append(s.Curves, ComboCurve{
			Combo:   combo,
			X:       xs,
			Y:       ys,
			Markers: MarkerIndices(xs, markerCount),
		})
	}
	return s
}
