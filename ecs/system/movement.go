package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/common"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/prefabs"
)

// MovementSystem moves the player towards the input target and steers every
// pursuer towards its goal.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w.GameOver() {
		return
	}
	t := w.Tuning()
	bb := w.Bounds()
	player := w.Player()

	movePlayer(player, w.Input(), t.Player, bb)

	ecs.ForEach(w, component.HostileComponent.Kind(), func(_ ecs.Entity, h *component.Hostile) {
		h.Pos = common.Seek(h.Pos, player.Pos, h.Speed)
	})
	if b := w.Boss(); b != nil {
		b.Pos = common.Seek(b.Pos, player.Pos, b.Speed)
	}

	pair := w.Pair()
	st := pair.Stealer()
	if st == nil {
		return
	}
	switch pair.Phase() {
	case component.PairStealerPursuing:
		st.Pos = common.Seek(st.Pos, pair.Healer().Pos, st.Speed)
	case component.PairCarrying:
		st.Pos = common.Seek(st.Pos, exitPoint(bb, st.Pos, st.Radius+st.Speed+1), st.Speed)
	case component.PairAttacking:
		st.Pos = common.Seek(st.Pos, player.Pos, st.Speed)
	}
}

func movePlayer(p *component.Player, in component.Input, spec prefabs.PlayerSpec, bb cp.BB) {
	if in.Active {
		switch spec.Movement {
		case prefabs.MovementDirect:
			p.Pos = in.Target
		default:
			k := spec.Smoothing
			if in.Touch {
				k = spec.TouchSmoothing
			}
			p.Pos = p.Pos.Add(in.Target.Sub(p.Pos).Mult(k))
		}
	}
	p.Pos = common.ClampInside(bb, p.Pos, p.Radius)
}

// exitPoint is the point past the nearest edge, offset outward by margin.
func exitPoint(bb cp.BB, pos cp.Vector, margin float64) cp.Vector {
	left, right := pos.X-bb.L, bb.R-pos.X
	top, bottom := pos.Y-bb.B, bb.T-pos.Y

	best := left
	out := cp.Vector{X: bb.L - margin, Y: pos.Y}
	if right < best {
		best, out = right, cp.Vector{X: bb.R + margin, Y: pos.Y}
	}
	if top < best {
		best, out = top, cp.Vector{X: pos.X, Y: bb.B - margin}
	}
	if bottom < best {
		out = cp.Vector{X: pos.X, Y: bb.T + margin}
	}
	return out
}
