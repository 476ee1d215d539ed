package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Weapon-Sense/internal/config"
	"github.com/Garsondee/Weapon-Sense/internal/targeting"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "configs/arena.yaml", "arena config (YAML)")
	seed := flag.Int64("seed", 0, "override the configured seed (0 keeps it)")
	flag.Parse()

	cfg, err := config.LoadArena(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))
	targeting.EnableDebugLogging(level == slog.LevelDebug)

	params, err := cfg.LoadParams()
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	g, err := newGame(cfg, params)
	if err != nil {
		return err
	}
	slog.Info("arena ready", "config", *cfgPath, "bots", len(cfg.Bots), "seed", cfg.Seed)

	ebiten.SetWindowTitle("Weapon Sense")
	ebiten.SetWindowSize(g.Layout(0, 0))
	return ebiten.RunGame(g)
}
