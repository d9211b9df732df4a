package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// Renderer draws snapshots. It never touches the world.
type Renderer struct {
	sprites map[component.Kind]*ebiten.Image
	face    ebtext.Face
}

func NewRenderer(sprites map[component.Kind]*ebiten.Image) *Renderer {
	src, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("render: load font: %v", err)
	}
	return &Renderer{
		sprites: sprites,
		face:    &ebtext.GoTextFace{Source: src, Size: 20},
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, snap ecs.Snapshot, palette prefabs.PaletteSpec) {
	screen.Fill(palette.Background.Or(colornames.Black))

	for _, e := range snap.Entities {
		if img := r.sprites[e.Kind]; img != nil {
			drawSprite(screen, img, e)
		} else {
			vector.FillCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), entityColor(e, palette), true)
		}
		if e.Kind == component.KindBoss && e.MaxHP > 0 {
			drawBossBar(screen, e, palette)
		}
		if e.Kind == component.KindPlayer && snap.ShieldActive {
			vector.StrokeCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius+6), 4, palette.Shield.Or(colornames.Lightskyblue), true)
		}
	}

	for i, line := range hudLines(snap) {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(12, 10+float64(i)*24)
		op.ColorScale.ScaleWithColor(colornames.White)
		ebtext.Draw(screen, line, r.face, op)
	}
}

func drawSprite(screen, img *ebiten.Image, e ecs.EntityView) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*e.Radius/float64(b.Dx()), 2*e.Radius/float64(b.Dy()))
	op.GeoM.Translate(e.Pos.X-e.Radius, e.Pos.Y-e.Radius)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func drawBossBar(screen *ebiten.Image, e ecs.EntityView, palette prefabs.PaletteSpec) {
	w := float32(2 * e.Radius)
	x := float32(e.Pos.X - e.Radius)
	y := float32(e.Pos.Y - e.Radius - 12)
	frac := float32(e.HP) / float32(e.MaxHP)
	vector.FillRect(screen, x, y, w, 6, color.RGBA{R: 40, G: 40, B: 40, A: 200}, false)
	vector.FillRect(screen, x, y, w*frac, 6, palette.Boss.Or(colornames.Darkred), false)
}

func entityColor(e ecs.EntityView, p prefabs.PaletteSpec) color.Color {
	switch e.Kind {
	case component.KindPlayer:
		return p.Player.Or(colornames.Hotpink)
	case component.KindHostile:
		return p.Hostile.Or(colornames.Tomato)
	case component.KindBoss:
		return p.Boss.Or(colornames.Darkred)
	case component.KindProjectile:
		return p.Projectile.Or(colornames.Pink)
	case component.KindHealer:
		return p.Healer.Or(colornames.Limegreen)
	case component.KindStealer:
		if e.Stealer == component.StealerAttacking {
			return colornames.Orangered
		}
		return p.Stealer.Or(colornames.Mediumpurple)
	}
	return colornames.White
}

func hudLines(snap ecs.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Score %d", snap.Score),
		fmt.Sprintf("Health %.0f", snap.Health),
	}
	if snap.ShieldActive {
		lines = append(lines, fmt.Sprintf("Shield %d", snap.ShieldTicks))
	}
	if snap.GameOver {
		lines = append(lines, "Press space to restart")
	}
	return lines
}
