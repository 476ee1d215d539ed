package weapon

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicateType is returned when a factory is registered twice for a type.
var ErrDuplicateType = errors.New("weapon: type already registered")

// Factory builds a fresh weapon with its starting rounds.
type Factory func() Weapon

// Registry maps weapon types to factories. The set of registered types is
// the set of recognized weapon categories.
type Registry struct {
	factories map[Type]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Type]Factory)}
}

// Register adds a factory for t.
func (r *Registry) Register(t Type, f Factory) error {
	if t == TypeNone {
		return fmt.Errorf("register %v: invalid type", t)
	}
	if f == nil {
		return fmt.Errorf("register %v: nil factory", t)
	}
	if _, ok := r.factories[t]; ok {
		return fmt.Errorf("register %v: %w", t, ErrDuplicateType)
	}
	r.factories[t] = f
	return nil
}

// Known reports whether t has a factory.
func (r *Registry) Known(t Type) bool {
	_, ok := r.factories[t]
	return ok
}

// New builds a weapon of type t. The bool is false for unrecognized types.
func (r *Registry) New(t Type) (Weapon, bool) {
	f, ok := r.factories[t]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Types returns the registered types in ascending order.
func (r *Registry) Types() []Type {
	out := make([]Type, 0, len(r.factories))
	for t := range r.factories {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
