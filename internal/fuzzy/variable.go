package fuzzy

// Variable is a named input or output of a Module, made of ordered sets that
// may overlap.
type Variable struct {
	name string
	sets []*Set
}

// Name returns the variable's name.
func (v *Variable) Name() string { return v.name }

// Sets returns the sets in declaration order.
func (v *Variable) Sets() []*Set {
	out := make([]*Set, len(v.sets))
	copy(out, v.sets)
	return out
}

// Set returns the named set, or nil.
func (v *Variable) Set(name string) *Set {
	for _, s := range v.sets {
		if s.name == name {
			return s
		}
	}
	return nil
}

func (v *Variable) fuzzify(x float64) {
	for _, s := range v.sets {
		s.dom = s.Membership(x)
	}
}

func (v *Variable) reset() {
	for _, s := range v.sets {
		s.dom = 0
	}
}

// RepresentativeRange bounds every crisp value DeFuzzify can return for v.
func (v *Variable) RepresentativeRange() (lo, hi float64) {
	for i, s := range v.sets {
		r := s.Representative()
		if i == 0 || r < lo {
			lo = r
		}
		if i == 0 || r > hi {
			hi = r
		}
	}
	return lo, hi
}
