package arena

import (
	"math"
	"time"

	"github.com/Garsondee/Weapon-Sense/internal/geom"
	"github.com/Garsondee/Weapon-Sense/internal/targeting"
)

// never is the out-of-view time of an opponent that was never seen.
const never = time.Duration(math.MaxInt64)

// memoryRecord is what a bot remembers about one opponent.
type memoryRecord struct {
	lastSensed    time.Duration
	becameVisible time.Duration
	lastVisible   time.Duration
	lastPos       geom.Vec2
	sensed        bool
	seen          bool
	withinFOV     bool
	shootable     bool
}

// Tracker is a bot's short-term memory of opponents and its choice of
// target: the closest opponent sensed within the memory span.
type Tracker struct {
	owner  *Bot
	memory map[*Bot]*memoryRecord
	target *Bot
	now    time.Duration
}

var _ targeting.TargetSystem = (*Tracker)(nil)

func newTracker(owner *Bot) *Tracker {
	return &Tracker{owner: owner, memory: map[*Bot]*memoryRecord{}}
}

func (t *Tracker) reset() {
	clear(t.memory)
	t.target = nil
}

func (t *Tracker) record(op *Bot) *memoryRecord {
	rec, ok := t.memory[op]
	if !ok {
		rec = &memoryRecord{}
		t.memory[op] = rec
	}
	return rec
}

// Update refreshes visibility of every opponent and picks the target.
func (t *Tracker) Update(now time.Duration, opponents []*Bot) {
	t.now = now
	for _, op := range opponents {
		if !op.alive {
			delete(t.memory, op)
			continue
		}
		rec := t.record(op)
		rec.shootable = t.owner.HasLOSTo(op.pos)
		if rec.shootable && t.owner.InFOV(op.pos) {
			if !rec.withinFOV {
				rec.becameVisible = now
			}
			rec.withinFOV = true
			rec.sensed = true
			rec.seen = true
			rec.lastVisible = now
			rec.lastSensed = now
			rec.lastPos = op.pos
		} else {
			rec.withinFOV = false
		}
	}

	t.target = nil
	best := math.Inf(1)
	for op, rec := range t.memory {
		if !op.alive || !rec.sensed || now-rec.lastSensed > t.owner.params.MemorySpan {
			continue
		}
		d := t.owner.pos.Dist(op.pos)
		if d < best || (d == best && t.target != nil && op.id < t.target.id) {
			best = d
			t.target = op
		}
	}
}

// Hear marks op as sensed at its current position without seeing it.
func (t *Tracker) Hear(op *Bot, now time.Duration) {
	rec := t.record(op)
	rec.sensed = true
	rec.lastSensed = now
	rec.lastPos = op.pos
}

func (t *Tracker) IsTargetPresent() bool { return t.target != nil }

func (t *Tracker) Target() targeting.Target {
	if t.target == nil {
		return nil
	}
	return t.target
}

// TargetBot is Target as a *Bot, nil when none.
func (t *Tracker) TargetBot() *Bot { return t.target }

func (t *Tracker) IsTargetShootable() bool {
	if t.target == nil {
		return false
	}
	return t.memory[t.target].shootable
}

// TimeTargetVisible is how long the target has been continuously in view,
// 0 when it is not in view now.
func (t *Tracker) TimeTargetVisible() time.Duration {
	if t.target == nil {
		return 0
	}
	rec := t.memory[t.target]
	if !rec.withinFOV {
		return 0
	}
	return t.now - rec.becameVisible
}

// TimeTargetOutOfView is how long since the target was last in view.
func (t *Tracker) TimeTargetOutOfView() time.Duration {
	if t.target == nil {
		return never
	}
	rec := t.memory[t.target]
	if !rec.seen {
		return never
	}
	return t.now - rec.lastVisible
}

// LastSensedPos returns where op was last seen or heard.
func (t *Tracker) LastSensedPos(op *Bot) (geom.Vec2, bool) {
	rec, ok := t.memory[op]
	if !ok || !rec.sensed {
		return geom.Vec2{}, false
	}
	return rec.lastPos, true
}
