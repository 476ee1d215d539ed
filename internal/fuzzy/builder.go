package fuzzy

import (
	"errors"
	"fmt"
)

// Builder registers variables, sets and rules once, at agent construction.
// The first error is kept and reported by Build, so registration calls can
// be chained without checks.
type Builder struct {
	m   *Module
	err error
}

// NewBuilder starts an empty module.
func NewBuilder() *Builder {
	return &Builder{m: &Module{variables: make(map[string]*Variable)}}
}

// VariableBuilder adds sets to one variable.
type VariableBuilder struct {
	b *Builder
	v *Variable
}

// Variable creates (or reopens) a variable.
func (b *Builder) Variable(name string) *VariableBuilder {
	v, ok := b.m.variables[name]
	if !ok {
		v = &Variable{name: name}
		b.m.variables[name] = v
		b.m.order = append(b.m.order, name)
	}
	return &VariableBuilder{b: b, v: v}
}

// LeftShoulder adds a left-shoulder set and returns it for use in rules.
// On error it records the failure and returns a detached set so rule
// registration can continue.
func (vb *VariableBuilder) LeftShoulder(name string, a, b, c float64) *Set {
	if vb.v.Set(name) != nil {
		vb.b.fail(fmt.Errorf("set %s/%s: duplicate name", vb.v.name, name))
		return &Set{name: name, variable: vb.v.name}
	}
	s, err := newSet(vb.v.name, name, a, b, c)
	if err != nil {
		vb.b.fail(err)
		return &Set{name: name, variable: vb.v.name}
	}
	vb.v.sets = append(vb.v.sets, s)
	return s
}

// Rule adds "IF AND(antecedent...) THEN consequent".
func (b *Builder) Rule(antecedent []*Set, consequent *Set) *Builder {
	if consequent == nil {
		b.fail(errors.New("rule: nil consequent"))
		return b
	}
	if len(antecedent) == 0 {
		b.fail(fmt.Errorf("rule -> %s: empty antecedent", consequent.name))
		return b
	}
	if !b.owns(consequent) {
		b.fail(fmt.Errorf("rule -> %s: consequent is not registered in this module", setLabel(consequent)))
		return b
	}
	for _, s := range antecedent {
		if !b.owns(s) {
			b.fail(fmt.Errorf("rule -> %s: set %s is not registered in this module", consequent.name, setLabel(s)))
			return b
		}
	}
	terms := make([]*Set, len(antecedent))
	copy(terms, antecedent)
	b.m.rules = append(b.m.rules, Rule{antecedent: terms, consequent: consequent})
	return b
}

// Build returns the finished module or the first registration error.
func (b *Builder) Build() (*Module, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.m, nil
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) owns(s *Set) bool {
	if s == nil {
		return false
	}
	v, ok := b.m.variables[s.variable]
	if !ok {
		return false
	}
	for _, own := range v.sets {
		if own == s {
			return true
		}
	}
	return false
}

func setLabel(s *Set) string {
	if s == nil {
		return "<nil>"
	}
	return s.variable + "/" + s.name
}
