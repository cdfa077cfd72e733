package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/myboss/common"
)

func main() {
	arena := flag.String("arena", "arena.yaml", "arena prefab to load")
	debug := flag.Bool("debug", false, "enable debug drawing")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	dev := flag.Bool("dev", false, "use the development log encoder")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	log, err := common.SetupLogger(*logLevel, *dev)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("myboss")
	ebiten.SetTPS(common.TicksPerSecond)

	game, err := NewGame(*arena, *debug)
	if err != nil {
		log.Fatalw("failed to start", "arena", *arena, "error", err)
	}
	defer game.Close()

	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Errorw("game exited", "error", err)
	}
}
