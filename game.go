package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pursuit/assets"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/system"
	"github.com/milk9111/pursuit/gamelog"
	"github.com/milk9111/pursuit/prefabs"
)

type Options struct {
	Source prefabs.Source
	Tuning *prefabs.Tuning
	Seed   uint64
	Debug  bool
	Watch  bool
	Logger gamelog.Logger
}

type Game struct {
	frames int
	debug  bool

	world    *ecs.World
	renderer *Renderer
	gameOver *ebitenui.UI
	scoreMsg func(string)

	source  prefabs.Source
	watcher *prefabs.Watcher
	music   *assets.LoopPlayer
	log     gamelog.Logger

	pointer pointer
}

func NewGame(opts Options) *Game {
	log := opts.Logger
	if log == nil {
		log = gamelog.Nop
	}

	worldOpts := []ecs.Option{ecs.WithLogger(log)}
	if opts.Seed != 0 {
		worldOpts = append(worldOpts, ecs.WithSeed(opts.Seed))
	}

	g := &Game{
		debug:  opts.Debug,
		world:  system.NewWorld(opts.Tuning, worldOpts...),
		source: opts.Source,
		log:    log,
	}

	sprites, err := assets.LoadSprites()
	if err != nil {
		log.Warn("some sprites failed to load", "err", err)
	}
	g.renderer = NewRenderer(sprites)

	if music, err := assets.NewLoopPlayer(0.5); err != nil {
		log.Warn("background loop unavailable", "err", err)
	} else {
		g.music = music
	}

	if opts.Watch {
		if dirs := opts.Source.WatchDirs(); len(dirs) > 0 {
			w, err := prefabs.NewWatcher(dirs...)
			if err != nil {
				log.Warn("prefab hot reload disabled", "err", err)
			} else {
				g.watcher = w
			}
		}
	}

	g.gameOver, g.scoreMsg = NewGameOverUI(g)
	return g
}

func (g *Game) Update() error {
	g.frames++

	g.applyReloads()
	g.handleInput()
	g.world.Update()

	for _, evt := range g.world.Events().Drain() {
		g.log.Debug("event", "type", evt.Type, "data", evt.Data)
	}

	if g.world.GameOver() {
		g.scoreMsg(fmt.Sprintf("Score %d", g.world.State().Score))
		g.gameOver.Update()
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.ToggleMusic()
	}

	if in, ok := g.pointer.sample(readPointer()); ok {
		g.world.SetInput(in)
	}

	primary := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if !g.world.GameOver() {
		// While the panel is up, clicks belong to its buttons.
		primary = primary ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	}
	if primary {
		g.world.PrimaryAction()
	}
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		g.log.Warn("prefab watcher error", "err", err)
	default:
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
		g.log.Error("tuning reload rejected", "err", err, "path", changes[0].Path)
		return
	}
	g.world.SetTuning(t)
}

// ToggleMusic flips the background loop and reports whether it is playing.
func (g *Game) ToggleMusic() bool {
	playing := g.music.Toggle()
	g.log.Info("background loop", "playing", playing)
	return playing
}

func (g *Game) Restart() {
	g.world.Restart()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world.Snapshot(), g.world.Tuning().Palette)

	if g.world.GameOver() {
		g.gameOver.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS()), 4, int(g.world.Bounds().T)-16)
	}
}

func (g *Game) Close() {
	_ = g.watcher.Close()
	_ = g.music.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	bb := g.world.Bounds()
	return bb.R - bb.L, bb.T - bb.B
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
