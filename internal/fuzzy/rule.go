package fuzzy

// Rule is "IF antecedent[0] AND antecedent[1] AND ... THEN consequent".
type Rule struct {
	antecedent []*Set
	consequent *Set
}

// And groups sets into a conjunctive antecedent.
func And(sets ...*Set) []*Set {
	return sets
}

// Strength is the minimum cached membership over the antecedent.
// An empty antecedent never fires.
func (r Rule) Strength() float64 {
	if len(r.antecedent) == 0 {
		return 0
	}
	strength := r.antecedent[0].dom
	for _, s := range r.antecedent[1:] {
		if s.dom < strength {
			strength = s.dom
		}
	}
	return strength
}
