package system

import "github.com/milk9111/pursuit/ecs"

// CollisionSystem resolves contact damage, projectile hits and healer pickup,
// in that order. Removals are marked during the pass and compacted once after.
type CollisionSystem struct {
	deadProjectiles []bool
	deadHostiles    []bool
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w.GameOver() {
		return
	}
	if s.contactDamage(w) {
		return
	}
	s.projectileHits(w)
	pickup(w)
}

// contactDamage reports whether it ended the run.
func (s *CollisionSystem) contactDamage(w *ecs.World) bool {
	t := w.Tuning()
	player := w.Player().Pos

	for _, h := range w.Hostiles() {
		if h.Within(player) && w.Damage(t.Hostile.ContactDamage) {
			return true
		}
	}
	if b := w.Boss(); b != nil && b.Within(player) && w.Damage(t.Boss.ContactDamage) {
		return true
	}
	if st := w.Pair().Stealer(); st != nil && st.Within(player) && w.Damage(t.Stealer.ContactDamage) {
		return true
	}
	return false
}

func (s *CollisionSystem) projectileHits(w *ecs.World) {
	t := w.Tuning()
	state := w.State()
	projectiles := w.Projectiles()
	hostiles := w.Hostiles()
	s.deadProjectiles = resize(s.deadProjectiles, len(projectiles))
	s.deadHostiles = resize(s.deadHostiles, len(hostiles))

	boss := w.Boss()
	bossDead := false
	hits := 0

	for i, p := range projectiles {
		if boss != nil && !bossDead && p.Overlaps(&boss.Body) {
			s.deadProjectiles[i] = true
			hits++
			w.Events().Push(ecs.Event{Type: ecs.EventBossHit, Data: boss.ID})
			if boss.Hit(t.Boss.HitDamage) {
				bossDead = true
			}
			continue
		}
		for j, h := range hostiles {
			if s.deadHostiles[j] || !p.Overlaps(&h.Body) {
				continue
			}
			s.deadHostiles[j] = true
			s.deadProjectiles[i] = true
			hits++
			state.AddScore(t.Hostile.Value)
			w.Events().Push(ecs.Event{Type: ecs.EventHostileKilled, Data: h.ID})
			break
		}
	}
	if hits == 0 {
		return
	}

	w.RemoveProjectiles(s.deadProjectiles)
	w.RemoveHostiles(s.deadHostiles)
	if bossDead {
		id := boss.ID
		w.RemoveBoss()
		state.AddScore(t.Boss.Value)
		state.BossScore = state.Score + t.Boss.ScoreInterval
		w.Events().Push(ecs.Event{Type: ecs.EventBossKilled, Data: id})
		w.Logger().Info("boss killed", "run", state.RunID, "score", state.Score, "next_boss", state.BossScore)
	}
}

func pickup(w *ecs.World) {
	pair := w.Pair()
	h := pair.Healer()
	if h == nil || !h.Within(w.Player().Pos) {
		return
	}
	id := h.ID
	if !w.PickupHealer() {
		return
	}
	t := w.Tuning()
	state := w.State()
	state.Heal(t.Healer.Heal)
	state.ActivateShield(t.Ticks(t.Shield.PickupDuration))
	w.Events().Push(ecs.Event{Type: ecs.EventHealerPicked, Data: id})
}
