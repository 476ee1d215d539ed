package weapon

import "math"

// Select puts the most desirable weapon for the situation in the agent's
// hand and returns its type.
//
// Without a target the base weapon is wielded and nothing is scored. With
// one, every held weapon is scored at distance; the strictly highest score
// wins, so ties go to the lowest type.
func Select(inv *Inventory, targetPresent bool, distance float64) Type {
	if !targetPresent {
		inv.SetCurrent(Base)
		return Base
	}

	best := math.Inf(-1)
	chosen := inv.CurrentType()
	for _, s := range inv.slots {
		if s.weapon == nil {
			continue
		}
		score := s.weapon.Desirability(distance)
		if score > best {
			best = score
			chosen = s.Type
		}
	}
	inv.SetCurrent(chosen)
	return chosen
}
