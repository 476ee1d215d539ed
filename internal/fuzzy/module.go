package fuzzy

import (
	"errors"
	"fmt"
)

// ErrUnknownVariable is returned when a variable name is not part of the module.
var ErrUnknownVariable = errors.New("fuzzy: unknown variable")

// Method selects a defuzzification strategy.
type Method int

const (
	// MaxAverage averages the representative values of every rule that
	// reaches the highest firing strength.
	MaxAverage Method = iota
)

func (m Method) String() string {
	switch m {
	case MaxAverage:
		return "max_av"
	default:
		return "unknown"
	}
}

// Module owns a set of variables and a static rule base. Build it once with
// a Builder; Fuzzify and DeFuzzify only update per-set membership caches.
//
// A Module is not safe for concurrent use. Each agent owns its own.
type Module struct {
	variables map[string]*Variable
	order     []string
	rules     []Rule
}

// Variable returns the named variable, or nil.
func (m *Module) Variable(name string) *Variable {
	return m.variables[name]
}

// Variables returns variable names in declaration order.
func (m *Module) Variables() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Rules returns the number of rules in the rule base.
func (m *Module) Rules() int { return len(m.rules) }

// Fuzzify computes the membership of x in every set of the named variable
// and caches it for the rest of the inference cycle.
func (m *Module) Fuzzify(variable string, x float64) error {
	v, ok := m.variables[variable]
	if !ok {
		return fmt.Errorf("fuzzify %q: %w", variable, ErrUnknownVariable)
	}
	v.fuzzify(x)
	return nil
}

// Membership returns the cached degree of membership of a set.
// Unknown names read as 0.
func (m *Module) Membership(variable, set string) float64 {
	v, ok := m.variables[variable]
	if !ok {
		return 0
	}
	s := v.Set(set)
	if s == nil {
		return 0
	}
	return s.DOM()
}

// DeFuzzify evaluates every rule whose consequent belongs to the named
// variable, clips each consequent set to the strongest rule implying it and
// converts the result to a crisp value. It returns 0 when no rule fires.
func (m *Module) DeFuzzify(variable string, method Method) (float64, error) {
	v, ok := m.variables[variable]
	if !ok {
		return 0, fmt.Errorf("defuzzify %q: %w", variable, ErrUnknownVariable)
	}

	// Output sets only carry what this cycle's rules imply.
	v.reset()

	best := 0.0
	sum := 0.0
	n := 0
	for _, r := range m.rules {
		if r.consequent.variable != variable {
			continue
		}
		strength := r.Strength()
		if strength > r.consequent.dom {
			r.consequent.dom = strength
		}

		switch {
		case strength > best:
			best = strength
			sum = r.consequent.Representative()
			n = 1
		case strength == best && strength > 0:
			sum += r.consequent.Representative()
			n++
		}
	}

	switch method {
	case MaxAverage:
		if n == 0 {
			return 0, nil
		}
		return sum / float64(n), nil
	default:
		return 0, fmt.Errorf("defuzzify %q: unsupported method %d", variable, method)
	}
}
