package curve

import (
	"math"
	"testing"

	"github.com/madbench/madbench/internal/profile"
	"github.com/madbench/madbench/internal/results"
)

func runRow(problem string, grid int, model, solver string, success bool, seconds float64) results.Row {
	return results.Row{
		"problem":   problem,
		"grid_size": float64(grid),
		"model":     model,
		"solver":    solver,
		"success":   success,
		"benchmark": map[string]any{"time": seconds},
	}
}

func buildProfile(t *testing.T, rows []results.Row) *profile.Profile {
	t.Helper()
	cfg := profile.DefaultConfig("time", profile.TimeCriterion())
	p, err := profile.Build(rows, "bench-1", cfg, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return p
}

func TestCurvePlateau(t *testing.T) {
	// Combo A fails on exactly one of three instances: its curve must top
	// out at 2/3, never reaching 1.
	rows := []results.Row{
		runRow("beam", 100, "exa", "ipopt", true, 1.0),
		runRow("beam", 200, "exa", "ipopt", true, 2.0),
		runRow("beam", 300, "exa", "ipopt", false, 0),
	}
	p := buildProfile(t, rows)

	xs, ys := Curve(p, "(exa, ipopt)")
	if len(xs) != 2 {
		t.Fatalf("expected 2 points, got %d", len(xs))
	}
	last := ys[len(ys)-1]
	want := 2.0 / 3.0
	if math.Abs(last-want) > 1e-12 {
		t.Errorf("curve plateau = %f, want %f", last, want)
	}
}

func TestCurveIsNonDecreasing(t *testing.T) {
	rows := []results.Row{
		runRow("beam", 100, "exa", "ipopt", true, 1.0),
		runRow("beam", 200, "exa", "ipopt", true, 3.0),
		runRow("beam", 300, "exa", "ipopt", true, 2.0),
		runRow("beam", 100, "jump", "ipopt", true, 0.5),
		runRow("beam", 200, "jump", "ipopt", true, 1.0),
		runRow("beam", 300, "jump", "ipopt", true, 4.0),
	}
	p := buildProfile(t, rows)

	for _, combo := range p.Combos {
		xs, ys := Curve(p, combo)
		for i := 1; i < len(xs); i++ {
			if xs[i] < xs[i-1] {
				t.Errorf("%s: xs not sorted at %d", combo, i)
			}
			if ys[i] < ys[i-1] {
				t.Errorf("%s: ys decreasing at %d", combo, i)
			}
		}
		if len(ys) > 0 && ys[len(ys)-1] > 1.0+1e-12 {
			t.Errorf("%s: ys exceeds 1: %f", combo, ys[len(ys)-1])
		}
	}
}

func TestCurveTiedRatiosShareY(t *testing.T) {
	// Both instances solved at ratio 1 by the same combo: the two points
	// share the same cumulative fraction.
	rows := []results.Row{
		runRow("beam", 100, "exa", "ipopt", true, 1.0),
		runRow("beam", 200, "exa", "ipopt", true, 2.0),
	}
	p := buildProfile(t, rows)

	xs, ys := Curve(p, "(exa, ipopt)")
	if len(xs) != 2 {
		t.Fatalf("expected 2 points, got %d", len(xs))
	}
	if ys[0] != ys[1] {
		t.Errorf("tied ratios must share y: got %f and %f", ys[0], ys[1])
	}
	if math.Abs(ys[1]-1.0) > 1e-12 {
		t.Errorf("fully solved combo must reach 1.0, got %f", ys[1])
	}
}

func TestCurveUnknownCombo(t *testing.T) {
	rows := []results.Row{
		runRow("beam", 100, "exa", "ipopt", true, 1.0),
	}
	p := buildProfile(t, rows)

	xs, ys := Curve(p, "(nope, nope)")
	if xs != nil || ys != nil {
		t.Errorf("expected no points for unknown combo, got %v %v", xs, ys)
	}
}

func TestMarkerIndices(t *testing.T) {
	tests := []struct {
		name   string
		ratios []float64
		count  int
		want   []int
	}{
		{name: "empty", ratios: nil, count: 6, want: nil},
		{name: "single", ratios: []float64{1.0}, count: 6, want: []int{0}},
		{name: "identical ratios", ratios: []float64{2, 2, 2, 2}, count: 6, want: []int{0}},
		{name: "two points", ratios: []float64{1, 8}, count: 2, want: []int{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkerIndices(tt.ratios, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("MarkerIndices = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("MarkerIndices = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMarkerIndicesInvariants(t *testing.T) {
	ratios := []float64{1, 1.1, 1.5, 2, 3, 4.5, 8, 16, 32, 100}

	for _, count := range []int{1, 2, 6, 25} {
		got := MarkerIndices(ratios, count)
		if len(got) == 0 || got[0] != 0 {
			t.Fatalf("count=%d: first marker must be index 0, got %v", count, got)
		}
		for i := 1; i < len(got); i++ {
			if got[i] <= got[i-1] {
				t.Errorf("count=%d: indices not strictly increasing: %v", count, got)
			}
		}
		for _, idx := range got {
			if idx < 0 || idx >= len(ratios) {
				t.Errorf("count=%d: index %d out of range", count, idx)
			}
		}
		if len(got) > count && count >= 1 {
			t.Errorf("count=%d: returned %d markers", count, len(got))
		}
	}
}

func TestBuildSet(t *testing.T) {
	rows := []results.Row{
		runRow("beam", 100, "exa", "ipopt", true, 1.0),
		runRow("beam", 100, "jump", "ipopt", true, 2.0),
		runRow("beam", 200, "exa", "ipopt", false, 0),
	}
	p := buildProfile(t, rows)

	set := BuildSet(p, DefaultMarkerCount)
	if set.BenchID != "bench-1" || set.TotalInstances != 2 {
		t.Fatalf("unexpected set header: %+v", set)
	}
	if len(set.Curves) != 2 {
		t.Fatalf("expected 2 curves, got %d", len(set.Curves))
	}
	for _, c := range set.Curves {
		if len(c.X) != len(c.Y) {
			t.Errorf("%s: X/Y length mismatch", c.Combo)
		}
		if len(c.X) > 0 && (len(c.Markers) == 0 || c.Markers[0] != 0) {
			t.Errorf("%s: markers must include index 0, got %v", c.Combo, c.Markers)
		}
	}
}
