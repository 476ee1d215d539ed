package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Weapon-Sense/internal/arena"
)

const (
	FeedPanelWidth = 320
	feedMaxEntries = 60
	feedLineHeight = 16
)

// EventFeed is a ring buffer of arena events rendered on-screen.
type EventFeed struct {
	entries []arena.LogEntry
	head    int
	count   int
	synced  int // SimLog entries already consumed
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{entries: make([]arena.LogEntry, feedMaxEntries)}
}

// Add appends an entry to the feed.
func (f *EventFeed) Add(e arena.LogEntry) {
	f.entries[f.head] = e
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Sync pulls the entries log recorded since the last call.
func (f *EventFeed) Sync(log *arena.SimLog) {
	fresh := log.Since(f.synced)
	for _, e := range fresh {
		f.Add(e)
	}
	f.synced += len(fresh)
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []arena.LogEntry {
	result := make([]arena.LogEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Draw renders the feed panel at panelX, newest entry at the bottom.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, FeedPanelWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, FeedPanelWidth, 16, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)

	entries := f.visible(panelH)
	y := 20
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), FeedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+5), 3, 6, TeamColour(e.Team), false)
		ebitenutil.DebugPrintAt(screen, feedLine(e), panelX+12, y)
		y += feedLineHeight
	}
}

// visible is the newest entries that fit a panel panelH pixels tall.
func (f *EventFeed) visible(panelH int) []arena.LogEntry {
	entries := f.Recent()
	maxVisible := max((panelH-24)/feedLineHeight, 0)
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	return entries
}

func feedLine(e arena.LogEntry) string {
	return fmt.Sprintf("%4d [%s] %s %s", e.Tick, e.Bot, e.Key, e.Value)
}
