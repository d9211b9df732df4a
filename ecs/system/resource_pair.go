package system

import (
	"math"

	"github.com/milk9111/pursuit/common"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
)

// ResourcePairSystem drives the healer/stealer lifecycle. It runs after
// collision so a pickup in the same tick wins over a pending stealer spawn.
type ResourcePairSystem struct {
	spawn *SpawnSystem
}

// NewResourcePairSystem shares the spawn system's difficulty curve so the
// stealer always outpaces the hostiles. spawn may be nil.
func NewResourcePairSystem(spawn *SpawnSystem) *ResourcePairSystem {
	return &ResourcePairSystem{spawn: spawn}
}

func (s *ResourcePairSystem) Update(w *ecs.World) {
	if w.GameOver() {
		return
	}
	if w.Intents().Take(ecs.IntentSpawnStealer) > 0 {
		s.spawnStealer(w)
	}

	t := w.Tuning()
	pair := w.Pair()
	switch pair.Phase() {
	case component.PairStealerPursuing:
		st := pair.Stealer()
		if st.Within(pair.Healer().Pos) && w.CaptureHealer() {
			w.Events().Push(ecs.Event{Type: ecs.EventHealerStolen, Data: st.ID})
		}
	case component.PairCarrying:
		st := pair.Stealer()
		if common.Outside(w.Bounds(), st.Pos, st.Radius) {
			release(w)
			break
		}
		if limit := t.Ticks(t.Stealer.CarryTimeout); limit > 0 && pair.PhaseTicks() >= limit && pair.Attack() {
			w.Events().Push(ecs.Event{Type: ecs.EventStealerAttack, Data: st.ID})
		}
	case component.PairAttacking:
		if pair.PhaseTicks() >= t.Ticks(t.Stealer.AttackDuration) {
			release(w)
		}
	}
	pair.Tick()
}

// spawnStealer runs when the deferred timer fires. The pair is checked now,
// not when the timer was armed.
func (s *ResourcePairSystem) spawnStealer(w *ecs.World) {
	pair := w.Pair()
	if pair.Phase() != component.PairHealerPresent || pair.Healer() == nil {
		return
	}
	t := w.Tuning()
	speed := t.Stealer.Speed
	if s.spawn != nil {
		speed = math.Max(speed, s.spawn.Difficulty(w).HostileSpeed(w.State().Score)+0.5)
	}
	r := t.Stealer.Radius
	st := &component.Stealer{
		Body:  component.Body{Pos: cornerPoint(w.Bounds(), w.Rand(), r), Radius: r},
		Speed: speed,
	}
	if w.SpawnStealer(st) {
		w.Events().Push(ecs.Event{Type: ecs.EventStealerSpawn, Data: st.ID})
	}
}

func release(w *ecs.World) {
	st := w.Pair().Stealer()
	if st == nil {
		return
	}
	id := st.ID
	if w.ReleaseStealer() {
		w.Events().Push(ecs.Event{Type: ecs.EventStealerLeft, Data: id})
	}
}
