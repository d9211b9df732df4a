package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs/component"
)

// pointer turns raw cursor and touch samples into player input. A touch always
// wins; the cursor only counts once it moves, since mobile builds report it
// as (0,0) whether or not a finger is down.
type pointer struct {
	lastCursor image.Point
}

// sample reports the new target, or false to keep the previous one.
func (p *pointer) sample(touches []image.Point, cursor image.Point) (component.Input, bool) {
	if len(touches) > 0 {
		p.lastCursor = cursor
		t := touches[0]
		return component.Input{Target: cp.Vector{X: float64(t.X), Y: float64(t.Y)}, Touch: true}, true
	}
	if cursor == p.lastCursor {
		return component.Input{}, false
	}
	p.lastCursor = cursor
	return component.Input{Target: cp.Vector{X: float64(cursor.X), Y: float64(cursor.Y)}}, true
}

func readPointer() ([]image.Point, image.Point) {
	var touches []image.Point
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		touches = append(touches, image.Pt(x, y))
	}
	x, y := ebiten.CursorPosition()
	return touches, image.Pt(x, y)
}
