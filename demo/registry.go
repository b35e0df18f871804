package demo

import (
	"errors"
	"fmt"
)

// ErrUnknownDemo is returned when a demo name is not registered.
var ErrUnknownDemo = errors.New("unknown demo")

// Registry maps demo names to definitions and keeps their order.
type Registry struct {
	names []string
	demos map[string]Definition
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	r := new(Registry)
	r.demos = make(map[string]Definition)
	return r
}

// Builtin returns a Registry holding every built-in demo.
func Builtin() (*Registry, error) {
	r := NewRegistry()
	for _, group := range [][]Definition{chainDemos(), countDemos(), stateDemos()} {
		for _, d := range group {
			if err := r.Register(d); err != nil {
				return nil, fmt.Errorf("builtin: %w", err)
			}
		}
	}
	return r, nil
}

// Register validates d and appends it. A name can be registered only once.
func (r *Registry) Register(d Definition) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if _, ok := r.demos[d.Name]; ok {
		return fmt.Errorf("%w: %s: already registered", ErrInvalidDefinition, d.Name)
	}
	r.names = append(r.names, d.Name)
	r.demos[d.Name] = d.WithDefaults()
	return nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (Definition, error) {
	d, ok := r.demos[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownDemo, name)
	}
	return d, nil
}

// Len returns the number of registered demos.
func (r *Registry) Len() int { return len(r.names) }
