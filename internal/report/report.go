// Package report renders Analysis values as human-readable text or JSON.
// It is a rendering layer only; all statistics come from the analysis package.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/madbench/madbench/internal/analysis"
)

// DefaultWidth is used when the caller has no terminal width to offer.
const DefaultWidth = 100

// InterpretRobustness returns a plain-language label for a robustness
// percentage.
func InterpretRobustness(pct float64) string {
	switch {
	case pct >= 100:
		return "solves everything"
	case pct >= 90:
		return "very robust (≥90%)"
	case pct >= 50:
		return "solves most instances (50-90%)"
	default:
		return "fragile (<50%)"
	}
}

// FormatAnalysis produces the full plain-language report for one benchmark.
// width bounds the combo table; values below 40 are treated as DefaultWidth.
func FormatAnalysis(a *analysis.Analysis, width int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Performance profile: %s (%s) ===\n\n", a.BenchID, a.ProfileName)

	fmt.Fprintf(&b, "Problems:   %d\n", a.NProblems)
	fmt.Fprintf(&b, "Instances:  %d (%d solved by at least one combination)\n",
		a.NInstances, a.SuccessfulInstances)
	fmt.Fprintf(&b, "Runs:       %d successful out of %d (instances × combinations)\n",
		a.SuccessfulRuns, a.TotalRuns)

	if len(a.UnsuccessfulInstances) > 0 {
		fmt.Fprintf(&b, "Unsolved:   %s\n", strings.Join(a.UnsuccessfulInstances, ", "))
	}

	b.WriteString("\n")
	b.WriteString(FormatComboTable(a, width))

	if len(a.MostRobust) > 0 {
		fmt.Fprintf(&b, "\nMost robust:    %s\n", strings.Join(a.MostRobust, ", "))
	}
	if len(a.MostEfficient) > 0 {
		fmt.Fprintf(&b, "Most efficient: %s\n", strings.Join(a.MostEfficient, ", "))
	}
	return b.String()
}

// FormatComboTable renders the per-combination robustness/efficiency table.
func FormatComboTable(a *analysis.Analysis, width int) string {
	if width < 40 {
		width = DefaultWidth
	}

	// Fixed columns: solved, robustness, efficiency. The combo column takes
	// whatever width remains.
	const fixed = 10 + 13 + 13
	comboWidth := 12
	for _, cs := range a.Combos {
		if w := runewidth.StringWidth(cs.Combo); w > comboWidth {
			comboWidth = w
		}
	}
	if max := width - fixed; comboWidth > max {
		comboWidth = max
	}

	var b strings.Builder
	b.WriteString(padRight("COMBINATION", comboWidth))
	b.WriteString(padLeft("SOLVED", 10))
	b.WriteString(padLeft("ROBUSTNESS", 13))
	b.WriteString(padLeft("EFFICIENCY", 13))
	b.WriteString("\n")

	for _, cs := range a.Combos {
		b.WriteString(padRight(truncateName(cs.Combo, comboWidth), comboWidth))
		b.WriteString(padLeft(fmt.Sprintf("%d/%d", cs.SolvedInstances, a.NInstances), 10))
		b.WriteString(padLeft(fmt.Sprintf("%.1f%%", cs.Robustness), 13))
		b.WriteString(padLeft(fmt.Sprintf("%.1f%%", cs.Efficiency), 13))
		b.WriteString("\n")
	}
	return b.String()
}

// WriteJSON writes v as indented JSON, for consumption by external chart and
// report pipelines.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncateName shortens a name to maxLen runes, replacing the last rune with
// "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// padLeft pads s on the left so its display width reaches width.
func padLeft(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return strings.Repeat(" ", width-sw) + s
}
