package profile

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned by Registry.Get for unregistered profile names.
// It is distinct from ErrNoData so callers can tell "unknown profile" apart
// from "nothing to report".
var ErrNotFound = errors.New("unknown profile")

// Registry maps profile names to configurations. Registering an existing
// name overwrites it, which lets configuration files replace built-ins.
type Registry struct {
	configs map[string]*Config
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]*Config)}
}

// Builtin returns a registry pre-populated with the conventional profiles:
// "time" (wall-clock solve time), "iterations", and "objective".
func Builtin() *Registry {
	r := NewRegistry()
	r.Register("time", DefaultConfig("time", TimeCriterion()))
	r.Register("iterations", DefaultConfig("iterations", IterationsCriterion()))
	r.Register("objective", DefaultConfig("objective", ObjectiveCriterion()))
	return r
}

// Register adds or replaces a configuration under the given name.
func (r *Registry) Register(name string, cfg *Config) {
	r.configs[name] = cfg
}

// Get looks up a configuration by name, failing with ErrNotFound when absent.
func (r *Registry) Get(name string) (*Config, error) {
	cfg, ok := r.configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return cfg, nil
}

// Names returns the registered profile names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
