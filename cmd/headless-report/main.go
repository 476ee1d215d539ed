package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/Weapon-Sense/internal/arena"
	"github.com/Garsondee/Weapon-Sense/internal/config"
	"github.com/Garsondee/Weapon-Sense/internal/script"
	"github.com/Garsondee/Weapon-Sense/internal/targeting"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228"))
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	styleRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	styleBlue   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

type runStats struct {
	runIndex int
	runID    string
	seed     int64

	firstKillTick   int
	firstPickupTick int

	weaponChanges int
	kills         int
	respawns      int
	pickups       int

	report arena.Report
}

type options struct {
	config   string
	runs     int
	ticks    int
	seedBase int64
	seedStep int64
	parallel int
	verbose  bool
}

func main() {
	var opt options
	flag.StringVar(&opt.config, "config", "configs/arena.yaml", "arena config (YAML)")
	flag.IntVar(&opt.runs, "runs", 5, "number of headless arena runs")
	flag.IntVar(&opt.ticks, "ticks", 0, "ticks per run (0 uses the config)")
	flag.Int64Var(&opt.seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&opt.seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&opt.parallel, "parallel", runtime.GOMAXPROCS(0), "runs in flight at once")
	flag.BoolVar(&opt.verbose, "v", false, "debug logging from the weapon system")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opt, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opt options, out io.Writer) error {
	if opt.runs <= 0 {
		return fmt.Errorf("-runs must be > 0")
	}

	cfg, err := config.LoadArena(opt.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level := cfg.Level()
	if opt.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	targeting.EnableDebugLogging(level == slog.LevelDebug)

	params, err := cfg.LoadParams()
	if err != nil {
		return err
	}
	ticks := opt.ticks
	if ticks <= 0 {
		ticks = cfg.Ticks
	}
	if ticks <= 0 {
		return fmt.Errorf("-ticks must be > 0")
	}

	fmt.Fprintln(out, styleTitle.Render("=== Headless Arena Report ==="))
	fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("config=%s runs=%d ticks=%d seed_base=%d seed_step=%d",
		opt.config, opt.runs, ticks, opt.seedBase, opt.seedStep)))
	fmt.Fprintln(out)

	all, err := runAll(ctx, cfg, params, opt, ticks)
	if err != nil {
		return err
	}
	for _, rs := range all {
		printRun(out, rs)
	}
	printAggregate(out, all)
	return nil
}

// runAll runs every arena on its own goroutine. Arenas share nothing, so
// results only need collecting by index.
func runAll(ctx context.Context, cfg config.Arena, params script.Params, opt options, ticks int) ([]runStats, error) {
	all := make([]runStats, opt.runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opt.parallel, 1))
	for i := range opt.runs {
		seed := opt.seedBase + int64(i)*opt.seedStep
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rs, err := runArena(cfg, params, i+1, seed, ticks)
			if err != nil {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
			all[i] = rs
			slog.Debug("run finished", "run", rs.runIndex, "id", rs.runID, "seed", seed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

func runArena(cfg config.Arena, params script.Params, runIndex int, seed int64, ticks int) (runStats, error) {
	sim, err := cfg.NewSim(params, seed)
	if err != nil {
		return runStats{}, err
	}
	sim.RunTicks(ticks)
	return collect(sim, runIndex, uuid.NewString()), nil
}

func collect(sim *arena.Sim, runIndex int, runID string) runStats {
	log := sim.Log()
	r := sim.Report()

	kills := arena.Query{Category: arena.CatState, Key: "killed"}
	pickups := arena.Query{Category: arena.CatPickup, Key: "weapon"}
	return runStats{
		runIndex:        runIndex,
		runID:           runID,
		seed:            r.Seed,
		firstKillTick:   firstTick(log, kills),
		firstPickupTick: firstTick(log, pickups),
		weaponChanges:   log.Count(arena.Query{Category: arena.CatWeapon, Key: "change"}),
		kills:           log.Count(kills),
		respawns:        log.Count(arena.Query{Category: arena.CatState, Key: "respawn"}),
		pickups:         log.Count(pickups),
		report:          r,
	}
}

// firstTick is the tick of the first matching event, -1 if none.
func firstTick(log *arena.SimLog, q arena.Query) int {
	e, ok := log.First(q)
	if !ok {
		return -1
	}
	return e.Tick
}

func teamStyle(team string) lipgloss.Style {
	switch team {
	case "red":
		return styleRed
	case "blue":
		return styleBlue
	default:
		return lipgloss.NewStyle()
	}
}

func printRun(out io.Writer, rs runStats) {
	fmt.Fprintln(out, styleHeader.Render(fmt.Sprintf("--- Run %d (seed=%d) ---", rs.runIndex, rs.seed)))
	fmt.Fprintln(out, styleDim.Render("run_id="+rs.runID))
	fmt.Fprintf(out, "phase_markers: first_pickup=%d first_kill=%d\n",
		rs.firstPickupTick, rs.firstKillTick)
	fmt.Fprintf(out, "event_totals: weapon_change=%d kills=%d respawns=%d pickups=%d\n",
		rs.weaponChanges, rs.kills, rs.respawns, rs.pickups)
	for _, b := range rs.report.Bots {
		line := fmt.Sprintf("  %-4s %-5s K=%d D=%d rounds=%d acc=%.0f%% dmg=%.0f aimq=%.2f fav=%s",
			b.Label, b.Team, b.Kills, b.Deaths, b.RoundsFired, 100*b.Accuracy(), b.DamageDealt, b.MeanAimQuality, b.Favourite)
		fmt.Fprintln(out, teamStyle(b.Team).Render(line))
	}
	fmt.Fprintln(out)
}

type botAgg struct {
	kills, deaths int
	rounds, hits  int
	damage        float64
	quality       float64
	runs          int
	favourites    map[string]int
}

func aggregate(all []runStats) map[string]*botAgg {
	aggs := map[string]*botAgg{}
	for _, rs := range all {
		for _, b := range rs.report.Bots {
			ag, ok := aggs[b.Label]
			if !ok {
				ag = &botAgg{favourites: map[string]int{}}
				aggs[b.Label] = ag
			}
			ag.kills += b.Kills
			ag.deaths += b.Deaths
			ag.rounds += b.RoundsFired
			ag.hits += b.Hits
			ag.damage += b.DamageDealt
			ag.quality += b.MeanAimQuality
			ag.runs++
			ag.favourites[b.Favourite.String()]++
		}
	}
	return aggs
}

func printAggregate(out io.Writer, all []runStats) {
	totalChanges, totalKills, totalPickups := 0, 0, 0
	killTicks := make([]int, 0, len(all))
	teamKills := map[string]int{}
	for _, rs := range all {
		totalChanges += rs.weaponChanges
		totalKills += rs.kills
		totalPickups += rs.pickups
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
		for team, k := range rs.report.TeamKills() {
			teamKills[team] += k
		}
	}

	fmt.Fprintln(out, styleTitle.Render("=== Aggregate ==="))
	fmt.Fprintf(out, "runs=%d\n", len(all))
	fmt.Fprintf(out, "avg_events_per_run: weapon_change=%.1f kills=%.1f pickups=%.1f\n",
		avg(totalChanges, len(all)), avg(totalKills, len(all)), avg(totalPickups, len(all)))
	fmt.Fprintf(out, "phase_marker_avg_ticks: first_kill=%s\n", avgTickString(killTicks))
	fmt.Fprintf(out, "team_kills: %s\n", joinCounts(teamKills))

	fmt.Fprintln(out)
	fmt.Fprintln(out, styleHeader.Render("=== Aggregate Bot Performance ==="))
	aggs := aggregate(all)
	labels := make([]string, 0, len(aggs))
	for label := range aggs {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		ag := aggs[label]
		acc := 0.0
		if ag.rounds > 0 {
			acc = 100 * float64(ag.hits) / float64(ag.rounds)
		}
		fmt.Fprintf(out, "  %-4s K/D=%d/%d acc=%.0f%% avg_dmg=%.1f avg_aimq=%.2f favourite=%s\n",
			label, ag.kills, ag.deaths, acc, ag.damage/float64(ag.runs), ag.quality/float64(ag.runs), topCount(ag.favourites))
	}
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

// topCount returns the most frequent key, alphabetically first on ties.
func topCount(counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}
	best := ""
	bestN := 0
	for k, v := range counts {
		if v > bestN || (v == bestN && k < best) {
			best = k
			bestN = v
		}
	}
	return fmt.Sprintf("%s(%d)", best, bestN)
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}
