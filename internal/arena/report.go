package arena

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

// BotReport is the end-of-run line for one bot.
type BotReport struct {
	Label          string
	Team           string
	Alive          bool
	Kills          int
	Deaths         int
	TriggerPulls   int
	RoundsFired    int
	Hits           int
	DamageDealt    float64
	Pickups        int
	MeanAimQuality float64
	Favourite      weapon.Type
	Wielded        map[weapon.Type]int
}

// Accuracy is hits per round fired.
func (r BotReport) Accuracy() float64 {
	if r.RoundsFired == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.RoundsFired)
}

// Report summarises a run.
type Report struct {
	Seed    int64
	Ticks   int
	Elapsed time.Duration
	Events  int
	Bots    []BotReport
}

// Report builds the summary of the run so far. Bots are ordered by kills,
// then by label.
func (s *Sim) Report() Report {
	r := Report{
		Seed:    s.seed,
		Ticks:   s.tick,
		Elapsed: s.Now(),
		Events:  len(s.log.Entries()),
	}
	for _, b := range s.bots {
		st := b.stats
		wielded := make(map[weapon.Type]int, len(st.Wielded))
		for t, n := range st.Wielded {
			wielded[t] = n
		}
		r.Bots = append(r.Bots, BotReport{
			Label:          b.label,
			Team:           b.team,
			Alive:          b.alive,
			Kills:          st.Kills,
			Deaths:         st.Deaths,
			TriggerPulls:   st.TriggerPulls,
			RoundsFired:    st.RoundsFired,
			Hits:           st.Hits,
			DamageDealt:    st.DamageDealt,
			Pickups:        st.Pickups,
			MeanAimQuality: st.MeanAimQuality(),
			Favourite:      st.Favourite(),
			Wielded:        wielded,
		})
	}
	sort.SliceStable(r.Bots, func(i, j int) bool {
		if r.Bots[i].Kills != r.Bots[j].Kills {
			return r.Bots[i].Kills > r.Bots[j].Kills
		}
		return r.Bots[i].Label < r.Bots[j].Label
	})
	return r
}

// TeamKills totals kills per team.
func (r Report) TeamKills() map[string]int {
	out := map[string]int{}
	for _, b := range r.Bots {
		out[b.Team] += b.Kills
	}
	return out
}

// String renders the report as plain fixed-width text.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Arena report: seed=%d ticks=%d (%s) events=%d ---\n",
		r.Seed, r.Ticks, r.Elapsed.Round(time.Millisecond), r.Events)
	fmt.Fprintf(&sb, "%-6s %-6s %5s %6s %6s %6s %6s %7s %6s  %s\n",
		"bot", "team", "kills", "deaths", "pulls", "rounds", "acc", "damage", "aimq", "favourite")
	for _, b := range r.Bots {
		fmt.Fprintf(&sb, "%-6s %-6s %5d %6d %6d %6d %5.0f%% %7.1f %6.2f  %s\n",
			b.Label, b.Team, b.Kills, b.Deaths, b.TriggerPulls, b.RoundsFired,
			100*b.Accuracy(), b.DamageDealt, b.MeanAimQuality, b.Favourite)
	}
	return sb.String()
}
