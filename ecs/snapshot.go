package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs/component"
)

// EntityView is a read-only copy of one live entity.
type EntityView struct {
	ID      Entity
	Kind    component.Kind
	Pos     cp.Vector
	Radius  float64
	HP      int
	MaxHP   int
	Stealer component.StealerState
}

// Snapshot is everything a renderer needs. It shares no memory with the world.
type Snapshot struct {
	RunID        string
	Tick         uint64
	Score        int
	Health       float64
	GameOver     bool
	ShieldActive bool
	ShieldTicks  int
	Phase        component.PairPhase
	Bounds       cp.BB
	Entities     []EntityView
}

// Snapshot copies the live state, back to front in draw order: pickups,
// projectiles, hostiles, boss, stealer, player.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		RunID:        w.state.RunID,
		Tick:         w.state.Tick,
		Score:        w.state.Score,
		Health:       w.state.Health,
		GameOver:     w.state.GameOver,
		ShieldActive: w.state.ShieldActive,
		ShieldTicks:  w.state.ShieldTicks,
		Phase:        w.pair.Phase(),
		Bounds:       w.bounds,
		Entities:     make([]EntityView, 0, Count(w, component.HostileComponent.Kind())+Count(w, component.ProjectileComponent.Kind())+4),
	}

	view := func(kind component.Kind, b component.Body) EntityView {
		return EntityView{ID: b.ID, Kind: kind, Pos: b.Pos, Radius: b.Radius}
	}

	if h := w.pair.Healer(); h != nil {
		s.Entities = append(s.Entities, view(component.KindHealer, h.Body))
	}
	ForEach(w, component.ProjectileComponent.Kind(), func(_ Entity, p *component.Projectile) {
		s.Entities = append(s.Entities, view(component.KindProjectile, p.Body))
	})
	ForEach(w, component.HostileComponent.Kind(), func(_ Entity, h *component.Hostile) {
		s.Entities = append(s.Entities, view(component.KindHostile, h.Body))
	})
	if b := w.Boss(); b != nil {
		v := view(component.KindBoss, b.Body)
		v.HP, v.MaxHP = b.HP, b.MaxHP
		s.Entities = append(s.Entities, v)
	}
	if st := w.pair.Stealer(); st != nil {
		v := view(component.KindStealer, st.Body)
		v.Stealer = st.State
		s.Entities = append(s.Entities, v)
	}
	if p := w.Player(); p != nil {
		s.Entities = append(s.Entities, view(component.KindPlayer, p.Body))
	}
	return s
}

// Count returns how many entities of kind the snapshot holds.
func (s Snapshot) Count(kind component.Kind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
