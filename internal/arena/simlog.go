package arena

import (
	"fmt"
	"strings"
)

// Event categories.
const (
	CatWeapon = "weapon"
	CatShot   = "shot"
	CatHit    = "hit"
	CatMove   = "move"
	CatPickup = "pickup"
	CatState  = "state"
)

// arenaLabel stands in for the bot and team of events no bot owns.
const arenaLabel = "--"

// LogEntry is one arena event.
type LogEntry struct {
	Tick     int
	Bot      string
	Team     string
	Category string
	Key      string
	Value    string
	NumVal   float64
}

// String renders the entry as one aligned line.
//
//	[T=042] R0   weapon    change           Blaster → Rail Gun
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Bot, e.Category, e.Key, e.Value)
}

// Query selects log entries. Zero fields match anything; ToTick 0 leaves
// the tick window open-ended.
type Query struct {
	Bot      string
	Category string
	Key      string
	Contains string
	FromTick int
	ToTick   int
}

// Match reports whether e satisfies every set field of q.
func (q Query) Match(e LogEntry) bool {
	switch {
	case q.Bot != "" && e.Bot != q.Bot,
		q.Category != "" && e.Category != q.Category,
		q.Key != "" && e.Key != q.Key,
		e.Tick < q.FromTick,
		q.ToTick > 0 && e.Tick > q.ToTick:
		return false
	}
	return q.Contains == "" || strings.Contains(e.Value, q.Contains)
}

// SimLog is the arena's append-only event record. Tests, the report and
// the on-screen feed all read from it.
type SimLog struct {
	entries []LogEntry
	verbose bool
}

// NewSimLog creates a log. Verbose logs also keep the per-tick detail
// (shots, hits, positions).
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

func (sl *SimLog) Add(e LogEntry) {
	if e.Bot == "" {
		e.Bot, e.Team = arenaLabel, arenaLabel
	}
	sl.entries = append(sl.entries, e)
}

// AddVerbose is Add for per-tick detail; it is dropped unless verbose.
func (sl *SimLog) AddVerbose(e LogEntry) {
	if sl.verbose {
		sl.Add(e)
	}
}

func (sl *SimLog) Entries() []LogEntry { return sl.entries }

// Since returns the entries recorded after the first n.
func (sl *SimLog) Since(n int) []LogEntry {
	if n >= len(sl.entries) {
		return nil
	}
	return sl.entries[max(n, 0):]
}

// Select returns the matching entries in record order.
func (sl *SimLog) Select(q Query) []LogEntry {
	var out []LogEntry
	for _, e := range sl.entries {
		if q.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

func (sl *SimLog) Count(q Query) int {
	n := 0
	for _, e := range sl.entries {
		if q.Match(e) {
			n++
		}
	}
	return n
}

// First returns the earliest matching entry.
func (sl *SimLog) First(q Query) (LogEntry, bool) {
	for _, e := range sl.entries {
		if q.Match(e) {
			return e, true
		}
	}
	return LogEntry{}, false
}

// Last returns the latest matching entry.
func (sl *SimLog) Last(q Query) (LogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		if q.Match(sl.entries[i]) {
			return sl.entries[i], true
		}
	}
	return LogEntry{}, false
}

func (sl *SimLog) Has(q Query) bool {
	_, ok := sl.First(q)
	return ok
}

// Format renders the matching entries one per line.
func (sl *SimLog) Format(q Query) string {
	var sb strings.Builder
	for _, e := range sl.entries {
		if q.Match(e) {
			sb.WriteString(e.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// botEvent records an event owned by b.
func (s *Sim) botEvent(b *Bot, category, key, value string, num float64) {
	s.log.Add(LogEntry{Tick: s.tick, Bot: b.label, Team: b.team, Category: category, Key: key, Value: value, NumVal: num})
}

// botDetail records per-tick detail owned by b.
func (s *Sim) botDetail(b *Bot, category, key, value string, num float64) {
	s.log.AddVerbose(LogEntry{Tick: s.tick, Bot: b.label, Team: b.team, Category: category, Key: key, Value: value, NumVal: num})
}
