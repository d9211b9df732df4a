package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

// cellWriter is the part of tcell.Screen the renderer needs.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[component.Kind]glyph{
	component.KindPlayer:     {'@', tcell.StyleDefault.Foreground(tcell.ColorHotPink).Bold(true)},
	component.KindHostile:    {'x', tcell.StyleDefault.Foreground(tcell.ColorTomato)},
	component.KindBoss:       {'B', tcell.StyleDefault.Foreground(tcell.ColorDarkRed).Bold(true)},
	component.KindProjectile: {'*', tcell.StyleDefault.Foreground(tcell.ColorPink)},
	component.KindHealer:     {'+', tcell.StyleDefault.Foreground(tcell.ColorLimeGreen).Bold(true)},
	component.KindStealer:    {'s', tcell.StyleDefault.Foreground(tcell.ColorMediumPurple)},
}

// viewport maps world coordinates onto the cell grid below the status line.
type viewport struct {
	bounds     cp.BB
	cols, rows int
}

func newViewport(bounds cp.BB, cols, rows int) viewport {
	return viewport{bounds: bounds, cols: cols, rows: max(rows-1, 1)}
}

func (v viewport) toCell(p cp.Vector) (int, int, bool) {
	w, h := v.bounds.R-v.bounds.L, v.bounds.T-v.bounds.B
	if w <= 0 || h <= 0 || v.cols <= 0 {
		return 0, 0, false
	}
	x := int(math.Floor((p.X - v.bounds.L) / w * float64(v.cols)))
	y := int(math.Floor((p.Y - v.bounds.B) / h * float64(v.rows)))
	if x < 0 || x >= v.cols || y < 0 || y >= v.rows {
		return 0, 0, false
	}
	return x, y + 1, true
}

// toWorld returns the centre of a cell in world coordinates.
func (v viewport) toWorld(x, y int) cp.Vector {
	w, h := v.bounds.R-v.bounds.L, v.bounds.T-v.bounds.B
	return cp.Vector{
		X: v.bounds.L + (float64(x)+0.5)/float64(v.cols)*w,
		Y: v.bounds.B + (float64(y-1)+0.5)/float64(v.rows)*h,
	}
}

func drawSnapshot(s cellWriter, snap ecs.Snapshot) {
	cols, rows := s.Size()
	v := newViewport(snap.Bounds, cols, rows)

	for _, e := range snap.Entities {
		x, y, ok := v.toCell(e.Pos)
		if !ok {
			continue
		}
		g := glyphs[e.Kind]
		style := g.style
		if e.Kind == component.KindStealer && e.Stealer == component.StealerAttacking {
			style = style.Foreground(tcell.ColorOrangeRed)
		}
		if e.Kind == component.KindPlayer && snap.ShieldActive {
			style = style.Reverse(true)
		}
		s.SetContent(x, y, g.r, nil, style)
	}

	drawText(s, 0, 0, statusLine(snap), tcell.StyleDefault.Reverse(true), cols)
}

func statusLine(snap ecs.Snapshot) string {
	line := fmt.Sprintf(" score %d  health %.0f", snap.Score, snap.Health)
	if snap.ShieldActive {
		line += fmt.Sprintf("  shield %d", snap.ShieldTicks)
	}
	if snap.GameOver {
		line += "  GAME OVER (space restarts)"
	}
	return line + "  [m] music  [q] quit "
}

func drawText(s cellWriter, x, y int, text string, style tcell.Style, width int) {
	for _, r := range text {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
