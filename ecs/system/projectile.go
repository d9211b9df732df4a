package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/common"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

// ProjectileSystem fires at the current target whenever a fire intent is
// pending, then advances and culls the live projectiles.
type ProjectileSystem struct {
	dead []bool
}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w.GameOver() {
		return
	}
	t := w.Tuning()

	for n := w.Intents().Take(ecs.IntentFire); n > 0; n-- {
		if !fire(w) {
			break
		}
	}

	cull := common.Inset(w.Bounds(), -t.Projectile.CullMargin)
	maxAge := t.Ticks(t.Projectile.MaxAge)

	projectiles := w.Projectiles()
	s.dead = resize(s.dead, len(projectiles))
	removed := false
	for i, p := range projectiles {
		p.Pos = p.Pos.Add(p.Vel)
		p.AgeTicks++
		if !cull.ContainsVect(p.Pos) || (maxAge > 0 && p.AgeTicks >= maxAge) {
			s.dead[i] = true
			removed = true
		}
	}
	if removed {
		w.RemoveProjectiles(s.dead)
	}
}

// fire launches one projectile at the selected target. It reports false when
// there is nothing to shoot at.
func fire(w *ecs.World) bool {
	player := w.Player()
	target, ok := selectTarget(w, player.Pos)
	if !ok {
		return false
	}
	dir, _, ok := common.Direction(player.Pos, target)
	if !ok {
		return false
	}
	t := w.Tuning()
	p := &component.Projectile{
		Body: component.Body{Pos: player.Pos, Radius: t.Projectile.Radius},
		Vel:  dir.Mult(t.Projectile.Speed),
	}
	w.AddProjectile(p, t.Projectile.MaxLive)
	w.Events().Push(ecs.Event{Type: ecs.EventFired, Data: p.ID})
	return true
}

// selectTarget prefers a live boss, otherwise the hostile nearest to from.
// Ties keep the first hostile encountered.
func selectTarget(w *ecs.World, from cp.Vector) (cp.Vector, bool) {
	if b := w.Boss(); b != nil {
		return b.Pos, true
	}
	var (
		best  cp.Vector
		bestD float64
		found bool
	)
	ecs.ForEach(w, component.HostileComponent.Kind(), func(_ ecs.Entity, h *component.Hostile) {
		d := from.DistanceSq(h.Pos)
		if !found || d < bestD {
			best, bestD, found = h.Pos, d, true
		}
	})
	return best, found
}

// resize returns a cleared mark slice of length n, reusing buf when it can.
func resize(buf []bool, n int) []bool {
	if cap(buf) < n {
		return make([]bool, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}
