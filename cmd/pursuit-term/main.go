package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/ecs/system"
	"github.com/milk9111/pursuit/gamelog"
	"github.com/milk9111/pursuit/prefabs"
)

// keyStep is how far one arrow key press moves the target, in world units.
const keyStep = 40

type Game struct {
	screen tcell.Screen
	world  *ecs.World
	music  *loop
	log    gamelog.Logger

	source  prefabs.Source
	watcher *prefabs.Watcher
	target  component.Input
	buttons tcell.ButtonMask
}

func NewGame(screen tcell.Screen, world *ecs.World, src prefabs.Source, log gamelog.Logger) *Game {
	g := &Game{screen: screen, world: world, source: src, log: log}
	g.target = component.Input{Target: world.Player().Pos}
	return g
}

func (g *Game) viewport() viewport {
	cols, rows := g.screen.Size()
	return newViewport(g.world.Bounds(), cols, rows)
}

// handleEvent applies one terminal event and reports whether to keep running.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.nudge(0, -keyStep)
		case tcell.KeyDown:
			g.nudge(0, keyStep)
		case tcell.KeyLeft:
			g.nudge(-keyStep, 0)
		case tcell.KeyRight:
			g.nudge(keyStep, 0)
		case tcell.KeyEnter:
			g.world.PrimaryAction()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				g.world.PrimaryAction()
			case 'm':
				g.log.Info("background loop", "playing", g.music.Toggle())
			case 'h':
				g.nudge(-keyStep, 0)
			case 'j':
				g.nudge(0, keyStep)
			case 'k':
				g.nudge(0, -keyStep)
			case 'l':
				g.nudge(keyStep, 0)
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if y > 0 {
			g.target.Target = g.viewport().toWorld(x, y)
			g.world.SetInput(g.target)
		}
		// Motion events repeat the held buttons; only a fresh press counts.
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && g.buttons&tcell.Button1 == 0 {
			g.world.PrimaryAction()
		}
		g.buttons = buttons
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) nudge(dx, dy float64) {
	bb := g.world.Bounds()
	p := g.target.Target
	p.X = min(max(p.X+dx, bb.L), bb.R)
	p.Y = min(max(p.Y+dy, bb.B), bb.T)
	g.target.Target = p
	g.world.SetInput(g.target)
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	changes := g.watcher.Pending()
	if len(changes) == 0 {
		return
	}
	for _, c := range changes {
		g.log.Debug("prefab changed", "path", c.Path, "kind", c.Kind)
	}
	t, err := g.source.Load()
	if err != nil {
		g.log.Error("tuning reload rejected", "err", err)
		return
	}
	g.world.SetTuning(t)
}

func (g *Game) draw() {
	g.screen.Clear()
	drawSnapshot(g.screen, g.world.Snapshot())
	g.screen.Show()
}

func (g *Game) run() {
	ticker := time.NewTicker(g.world.Tuning().TickDuration())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.applyReloads()
			g.world.Update()
			for _, evt := range g.world.Events().Drain() {
				g.log.Debug("event", "type", evt.Type, "data", evt.Data)
			}
			g.draw()
		}
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}
	src := prefabs.SourceFromEnv()

	tuningPath := flag.String("tuning", src.Path, "tuning yaml (defaults to prefabs/tuning.yaml)")
	seed := flag.Uint64("seed", 0, "fixed RNG seed (0 = random)")
	logPath := flag.String("log", "", "write logs to this file (the terminal is busy drawing)")
	mute := flag.Bool("mute", false, "do not open the audio device")
	flag.Parse()
	src.Path = *tuningPath

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logger := gamelog.NewSlog(slog.New(slog.NewTextHandler(out, nil)))

	tuning, err := src.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("tuning loaded", "name", tuning.Name, "from", src.Describe(), "touch", src.Touch)

	opts := []ecs.Option{ecs.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, ecs.WithSeed(*seed))
	}
	world := system.NewWorld(tuning, opts...)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	game := NewGame(screen, world, src, logger)
	if !*mute {
		if music, err := newLoop(); err != nil {
			// Non-fatal, the game runs without sound.
			logger.Warn("audio initialization failed", "err", err)
		} else {
			game.music = music
			defer music.Close()
		}
	}
	if dirs := src.WatchDirs(); len(dirs) > 0 {
		if w, err := prefabs.NewWatcher(dirs...); err != nil {
			logger.Warn("prefab hot reload disabled", "err", err)
		} else {
			game.watcher = w
			defer w.Close()
		}
	}

	defer screen.Fini()
	game.run()
}
