package weapon

// SlotState tells apart "owned", "known but not owned" and "not a weapon type".
type SlotState int

const (
	SlotUnknown SlotState = iota // not a recognized weapon type
	SlotEmpty                    // recognized, not acquired yet
	SlotLive                     // an instance is held
)

func (s SlotState) String() string {
	switch s {
	case SlotEmpty:
		return "empty"
	case SlotLive:
		return "live"
	default:
		return "unknown"
	}
}

// Slot pairs a weapon type with the instance held for it, if any.
type Slot struct {
	Type   Type
	weapon Weapon
}

// Weapon returns the held instance. The bool is false for an empty slot.
func (s Slot) Weapon() (Weapon, bool) {
	return s.weapon, s.weapon != nil
}

// Inventory owns every weapon instance of one agent. It holds one slot per
// recognized type, ordered by type, and names the current weapon by type so
// switching is a key swap.
type Inventory struct {
	registry *Registry
	slots    []Slot // ascending Type
	current  Type
}

// NewInventory creates the inventory with only the base weapon live and
// current. Every other registered type gets an empty slot.
//
// It panics if the registry cannot build the base weapon: an agent without
// one violates the inventory's contract.
func NewInventory(registry *Registry) *Inventory {
	inv := &Inventory{registry: registry}
	for _, t := range registry.Types() {
		inv.slots = append(inv.slots, Slot{Type: t})
	}

	base, ok := registry.New(Base)
	if !ok {
		panic("weapon: registry has no factory for the base weapon " + Base.String())
	}
	inv.slot(Base).weapon = base
	inv.current = Base
	return inv
}

func (inv *Inventory) slot(t Type) *Slot {
	for i := range inv.slots {
		if inv.slots[i].Type == t {
			return &inv.slots[i]
		}
	}
	return nil
}

// State classifies t for this inventory.
func (inv *Inventory) State(t Type) SlotState {
	s := inv.slot(t)
	switch {
	case s == nil:
		return SlotUnknown
	case s.weapon == nil:
		return SlotEmpty
	default:
		return SlotLive
	}
}

// Add acquires a weapon of type t. When one is already held, the new
// instance's starting rounds are added to it and the new instance is
// dropped. Unrecognized types are ignored. It returns the resulting state.
func (inv *Inventory) Add(t Type) SlotState {
	s := inv.slot(t)
	if s == nil {
		return SlotUnknown
	}
	w, ok := inv.registry.New(t)
	if !ok {
		return SlotUnknown
	}
	if s.weapon != nil {
		s.weapon.IncrementRounds(w.RoundsRemaining())
		return SlotLive
	}
	s.weapon = w
	return SlotLive
}

// Get returns the instance held for t, if any.
func (inv *Inventory) Get(t Type) (Weapon, bool) {
	s := inv.slot(t)
	if s == nil {
		return nil, false
	}
	return s.Weapon()
}

// AmmoRemaining is 0 for absent weapons.
func (inv *Inventory) AmmoRemaining(t Type) int {
	w, ok := inv.Get(t)
	if !ok {
		return 0
	}
	return w.RoundsRemaining()
}

// SetCurrent wields the weapon held for t. Without one it does nothing.
func (inv *Inventory) SetCurrent(t Type) bool {
	if inv.State(t) != SlotLive {
		return false
	}
	inv.current = t
	return true
}

// CurrentType returns the type of the wielded weapon.
func (inv *Inventory) CurrentType() Type { return inv.current }

// Current returns the wielded weapon. It is never nil.
func (inv *Inventory) Current() Weapon {
	return inv.slot(inv.current).weapon
}

// Slots returns a copy of every slot, ascending by type.
func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Each calls fn for every held weapon in ascending type order.
func (inv *Inventory) Each(fn func(Weapon)) {
	for _, s := range inv.slots {
		if s.weapon != nil {
			fn(s.weapon)
		}
	}
}

// Live counts held weapons.
func (inv *Inventory) Live() int {
	n := 0
	inv.Each(func(Weapon) { n++ })
	return n
}
