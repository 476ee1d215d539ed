// Package fuzzy is a small fuzzy-logic inference engine: linguistic variables
// made of left-shoulder sets, an AND rule base, and max-average defuzzification.
package fuzzy

import (
	"errors"
	"fmt"
)

// ErrInvalidShoulder is returned when breakpoints are not ordered a <= b <= c.
var ErrInvalidShoulder = errors.New("fuzzy: shoulder breakpoints must satisfy a <= b <= c")

// Set is a left-shoulder membership function over a crisp domain.
//
//	    b ______ c ______ ...
//	     /
//	    /
//	___/ a
//
// Membership is 0 up to a, rises linearly to 1 at b and stays at 1 for every
// larger input, c included and beyond.
type Set struct {
	name     string
	variable string
	a, b, c  float64

	// dom is the degree of membership from the latest Fuzzify or DeFuzzify
	// call touching this set's variable.
	dom float64
}

func newSet(variable, name string, a, b, c float64) (*Set, error) {
	if !(a <= b && b <= c) {
		return nil, fmt.Errorf("set %s/%s (%g, %g, %g): %w", variable, name, a, b, c, ErrInvalidShoulder)
	}
	return &Set{name: name, variable: variable, a: a, b: b, c: c}, nil
}

// Name returns the set's label.
func (s *Set) Name() string { return s.name }

// Variable returns the name of the variable the set belongs to.
func (s *Set) Variable() string { return s.variable }

// Breakpoints returns a, b and c.
func (s *Set) Breakpoints() (a, b, c float64) { return s.a, s.b, s.c }

// Representative is the crisp value that stands for the set when
// defuzzifying: the start of the plateau.
func (s *Set) Representative() float64 { return s.b }

// Membership evaluates the shoulder at x without touching the cached value.
func (s *Set) Membership(x float64) float64 {
	switch {
	case x >= s.b:
		return 1
	case x <= s.a:
		return 0
	default:
		return (x - s.a) / (s.b - s.a)
	}
}

// DOM returns the cached degree of membership.
func (s *Set) DOM() float64 { return s.dom }
