package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGetUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Get("nope")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestRegistryOverwrite(t *testing.T) {
	reg := Builtin()

	replacement := DefaultConfig("time", IterationsCriterion())
	reg.Register("time", replacement)

	cfg, err := reg.Get("time")
	require.NoError(t, err)
	assert.Equal(t, "iterations", cfg.Criterion.Name)
}

func TestBuiltinNames(t *testing.T) {
	reg := Builtin()
	assert.Equal(t, []string{"iterations", "objective", "time"}, reg.Names())
}
