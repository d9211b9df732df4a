package system

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/prefabs"
)

// SpawnSystem introduces hostiles, the boss and the healer. Hostiles use a
// per-tick Bernoulli trial; the stealer is spawned by ResourcePairSystem when
// its timer intent is consumed.
type SpawnSystem struct {
	tuning     *prefabs.Tuning
	difficulty Difficulty
}

func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || w.GameOver() {
		return
	}
	t := s.refresh(w)
	rng := w.Rand()
	state := w.State()

	if rng.Float64() < t.Hostile.SpawnChance {
		s.spawnHostile(w, t, rng, state.Score)
	}

	if w.Boss() == nil && state.Score > state.BossScore {
		s.spawnBoss(w, t, rng, state.Score)
	}

	if w.Pair().Phase() == component.PairAbsent && rng.Float64() < t.Healer.SpawnChance {
		spawnHealer(w, t, rng)
	}
}

// Difficulty exposes the active curve.
func (s *SpawnSystem) Difficulty(w *ecs.World) Difficulty {
	s.refresh(w)
	return s.difficulty
}

// refresh rebuilds the curve when the world's tuning was swapped.
func (s *SpawnSystem) refresh(w *ecs.World) *prefabs.Tuning {
	t := w.Tuning()
	if s.difficulty == nil || s.tuning != t {
		s.tuning = t
		s.difficulty = LoadDifficulty(t, w.Logger())
	}
	return t
}

func (s *SpawnSystem) spawnHostile(w *ecs.World, t *prefabs.Tuning, rng *rand.Rand, score int) {
	r := t.Hostile.Radius
	w.AddHostile(&component.Hostile{
		Body:  component.Body{Pos: edgePoint(w.Bounds(), rng, r), Radius: r},
		Speed: s.difficulty.HostileSpeed(score),
	})
}

func (s *SpawnSystem) spawnBoss(w *ecs.World, t *prefabs.Tuning, rng *rand.Rand, score int) {
	bb := w.Bounds()
	r := t.Boss.Radius
	hp, speed := s.difficulty.Boss(score)
	boss := &component.Boss{
		Body:  component.Body{Pos: cp.Vector{X: bb.L + rng.Float64()*(bb.R-bb.L), Y: bb.B - r}, Radius: r},
		Speed: speed,
		HP:    hp,
		MaxHP: hp,
	}
	if !w.SpawnBoss(boss) {
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventBossSpawned, Data: boss.ID})
	w.Logger().Info("boss spawned", "run", w.State().RunID, "score", score, "hp", hp, "speed", speed)
}

func spawnHealer(w *ecs.World, t *prefabs.Tuning, rng *rand.Rand) {
	bb := w.Bounds()
	r := t.Healer.Radius
	x := bb.L + r + rng.Float64()*max(0, bb.R-bb.L-2*r)
	y := bb.B + r + rng.Float64()*max(0, bb.T-bb.B-2*r)
	h := &component.Healer{Body: component.Body{Pos: cp.Vector{X: x, Y: y}, Radius: r}}
	if w.SpawnHealer(h) {
		w.Events().Push(ecs.Event{Type: ecs.EventHealerSpawned, Data: h.ID})
	}
}

// edgePoint picks one of the four edges uniformly and a uniform point along
// it, offset outward by r so the entity starts just out of view.
func edgePoint(bb cp.BB, rng *rand.Rand, r float64) cp.Vector {
	u := rng.Float64()
	switch rng.IntN(4) {
	case 0:
		return cp.Vector{X: bb.L - r, Y: bb.B + u*(bb.T-bb.B)}
	case 1:
		return cp.Vector{X: bb.R + r, Y: bb.B + u*(bb.T-bb.B)}
	case 2:
		return cp.Vector{X: bb.L + u*(bb.R-bb.L), Y: bb.B - r}
	default:
		return cp.Vector{X: bb.L + u*(bb.R-bb.L), Y: bb.T + r}
	}
}

// cornerPoint picks a corner uniformly, just outside the bounds.
func cornerPoint(bb cp.BB, rng *rand.Rand, r float64) cp.Vector {
	switch rng.IntN(4) {
	case 0:
		return cp.Vector{X: bb.L - r, Y: bb.B - r}
	case 1:
		return cp.Vector{X: bb.R + r, Y: bb.B - r}
	case 2:
		return cp.Vector{X: bb.L - r, Y: bb.T + r}
	default:
		return cp.Vector{X: bb.R + r, Y: bb.T + r}
	}
}
