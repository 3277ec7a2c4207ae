package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madbench/madbench/internal/results"
)

func TestTimeCriterionReadsNestedField(t *testing.T) {
	row := runRow("beam", 100, "exa", "ipopt", true, 0.25)

	crit := TimeCriterion()
	v, ok := crit.Value(row)
	require.True(t, ok)
	assert.InDelta(t, 0.25, v, 1e-12)
	assert.True(t, crit.Better(1.0, 2.0))
	assert.False(t, crit.Better(2.0, 1.0))
}

func TestMinimizeMissingField(t *testing.T) {
	crit := Minimize("iterations", "iterations")
	_, ok := crit.Value(results.Row{"problem": "beam"})
	assert.False(t, ok)
}

func TestMinimizePositiveRejectsNonPositive(t *testing.T) {
	crit := MinimizePositive("objective", "objective")

	_, ok := crit.Value(results.Row{"objective": -5.0})
	assert.False(t, ok)

	_, ok = crit.Value(results.Row{"objective": 0.0})
	assert.False(t, ok)

	v, ok := crit.Value(results.Row{"objective": 8.25})
	require.True(t, ok)
	assert.InDelta(t, 8.25, v, 1e-12)
}

func TestMaximizeRejectsNonPositive(t *testing.T) {
	crit := Maximize("throughput", "rate")

	_, ok := crit.Value(results.Row{"rate": 0.0})
	assert.False(t, ok)

	v, ok := crit.Value(results.Row{"rate": 4.0})
	require.True(t, ok)
	assert.InDelta(t, 0.25, v, 1e-12)
}
