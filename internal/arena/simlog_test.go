package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLog() *SimLog {
	sl := NewSimLog(false)
	sl.Add(LogEntry{Tick: 1, Bot: "R0", Team: "red", Category: CatWeapon, Key: "change", Value: "Blaster → Shotgun"})
	sl.Add(LogEntry{Tick: 2, Bot: "B1", Team: "blue", Category: CatPickup, Key: "weapon", Value: "Rail Gun (15 rounds)"})
	sl.Add(LogEntry{Tick: 3, Bot: "R0", Team: "red", Category: CatWeapon, Key: "change", Value: "Shotgun → Blaster"})
	sl.AddVerbose(LogEntry{Tick: 3, Bot: "R0", Team: "red", Category: CatMove, Key: "position", Value: "(1,1)"})
	sl.Add(LogEntry{Tick: 4, Category: CatShot, Key: "explosion", Value: "at (5,5)"})
	return sl
}

func TestSimLog_VerboseDetailDroppedByDefault(t *testing.T) {
	assert.Len(t, sampleLog().Entries(), 4)

	sl := NewSimLog(true)
	sl.AddVerbose(LogEntry{Tick: 1, Bot: "R0", Category: CatMove, Key: "position"})
	assert.Len(t, sl.Entries(), 1)
}

func TestSimLog_ArenaEventsGetPlaceholderLabel(t *testing.T) {
	e, ok := sampleLog().Last(Query{Category: CatShot})
	require.True(t, ok)
	assert.Equal(t, "--", e.Bot)
	assert.Equal(t, "--", e.Team)
}

func TestSimLog_Query(t *testing.T) {
	sl := sampleLog()
	changes := Query{Category: CatWeapon, Key: "change"}

	assert.Equal(t, 2, sl.Count(changes))
	assert.Len(t, sl.Select(Query{Bot: "R0"}), 2)
	assert.Len(t, sl.Select(Query{FromTick: 2, ToTick: 3}), 2)
	assert.Len(t, sl.Select(Query{FromTick: 3}), 2)

	first, ok := sl.First(changes)
	require.True(t, ok)
	assert.Equal(t, 1, first.Tick)
	last, ok := sl.Last(changes)
	require.True(t, ok)
	assert.Equal(t, 3, last.Tick)
	_, ok = sl.Last(Query{Category: CatState, Key: "killed"})
	assert.False(t, ok)

	assert.True(t, sl.Has(Query{Category: CatPickup, Contains: "Rail"}))
	assert.False(t, sl.Has(Query{Category: CatPickup, Contains: "Rocket"}))
}

func TestSimLog_Since(t *testing.T) {
	sl := sampleLog()
	assert.Len(t, sl.Since(1), 3)
	assert.Len(t, sl.Since(-1), 4)
	assert.Nil(t, sl.Since(4))
}

func TestSimLog_FormatWindow(t *testing.T) {
	sl := sampleLog()
	all := sl.Format(Query{})
	assert.Contains(t, all, "[T=001] R0   weapon    change")

	tail := sl.Format(Query{FromTick: 3})
	assert.NotContains(t, tail, "[T=001]")
	assert.Contains(t, tail, "[T=003] R0   weapon    change           Shotgun → Blaster\n")
	assert.Contains(t, tail, "[T=004] --   shot")
}
