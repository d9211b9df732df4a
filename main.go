package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/milk9111/pursuit/gamelog"
	"github.com/milk9111/pursuit/prefabs"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}
	src := prefabs.SourceFromEnv()

	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tuningPath := flag.String("tuning", src.Path, "tuning yaml (defaults to prefabs/tuning.yaml)")
	touch := flag.Bool("touch", src.Touch, "use the touch tuning profile")
	seed := flag.Uint64("seed", 0, "fixed RNG seed (0 = random)")
	noWatch := flag.Bool("nowatch", false, "disable prefab hot reload")
	flag.Parse()
	src.Path, src.Touch = *tuningPath, *touch

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := gamelog.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tuning, err := src.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("tuning loaded", "name", tuning.Name, "from", src.Describe(), "touch", src.Touch)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(tuning.Bounds.Width), int(tuning.Bounds.Height))
	ebiten.SetWindowTitle("pursuit")
	ebiten.SetTPS(tuning.TickRate)

	game := NewGame(Options{
		Source: src,
		Tuning: tuning,
		Seed:   *seed,
		Debug:  *debug,
		Watch:  !*noWatch,
		Logger: logger,
	})
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
