package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/stretchr/testify/require"
)

// TestInvariantsHoldUnderLoad drives a busy world with wandering input and
// checks the global invariants after every tick.
func TestInvariantsHoldUnderLoad(t *testing.T) {
	tuning := loadTuning(t)
	tuning.Hostile.SpawnChance = 0.08
	tuning.Healer.SpawnChance = 0.05
	tuning.Boss.ScoreThreshold = 5
	tuning.Boss.ScoreInterval = 10
	tuning.Stealer.SpawnDelay = 200 * time.Millisecond
	tuning.Stealer.CarryTimeout = 500 * time.Millisecond
	tuning.Stealer.AttackDuration = time.Second
	w := NewWorld(tuning, ecs.WithSeed(42))

	rng := rand.New(rand.NewPCG(42, 7))
	bb := w.Bounds()
	restarts := 0
	maxScore := 0

	for tick := 0; tick < 20000; tick++ {
		if tick%20 == 0 {
			w.SetInput(component.Input{Target: cp.Vector{X: rng.Float64() * bb.R, Y: rng.Float64() * bb.T}})
		}
		w.Update()

		state := w.State()
		require.GreaterOrEqual(t, state.Health, 0.0)
		require.LessOrEqual(t, state.Health, component.MaxHealth)
		require.GreaterOrEqual(t, state.Score, 0)
		maxScore = max(maxScore, state.Score)

		snap := w.Snapshot()
		require.LessOrEqual(t, snap.Count(component.KindBoss), 1)
		require.LessOrEqual(t, snap.Count(component.KindStealer), 1)
		require.LessOrEqual(t, snap.Count(component.KindHealer), 1)
		require.LessOrEqual(t, snap.Count(component.KindProjectile), tuning.Projectile.MaxLive)
		require.NoError(t, w.Pair().Validate())
		if st := w.Pair().Stealer(); st != nil && st.State == component.StealerCarrying {
			require.Nil(t, w.Pair().Healer())
		}

		if state.GameOver {
			w.PrimaryAction()
			restarts++
			require.False(t, w.GameOver())
			require.Equal(t, component.MaxHealth, w.State().Health)
			require.Zero(t, w.State().Score)
		}
	}
	require.Positive(t, maxScore)
	t.Logf("restarts=%d max score=%d", restarts, maxScore)
}

func TestRestartIsIdempotent(t *testing.T) {
	tuning := loadTuning(t)
	tuning.Hostile.SpawnChance = 0.5
	w := NewWorld(tuning, ecs.WithSeed(8))
	step(w, 300)

	w.Restart()
	once := w.Snapshot()
	w.Restart()
	twice := w.Snapshot()

	for _, snap := range []ecs.Snapshot{once, twice} {
		require.Equal(t, component.MaxHealth, snap.Health)
		require.Zero(t, snap.Score)
		require.False(t, snap.GameOver)
		require.Equal(t, component.PairAbsent, snap.Phase)
		require.Len(t, snap.Entities, 1, "only the player survives a restart")
	}
	require.Equal(t, once.Entities[0].Pos, twice.Entities[0].Pos)
	require.Empty(t, w.Projectiles())
	require.Empty(t, w.Hostiles())
	require.Nil(t, w.Boss())
}

func TestDefaultOrder(t *testing.T) {
	systems := Default()
	require.Len(t, systems, 6)
	require.IsType(t, &SpawnSystem{}, systems[0])
	require.IsType(t, &MovementSystem{}, systems[1])
	require.IsType(t, &ProjectileSystem{}, systems[2])
	require.IsType(t, &CollisionSystem{}, systems[3])
	require.IsType(t, &ResourcePairSystem{}, systems[4])
	require.IsType(t, &GameStateSystem{}, systems[5])
}
