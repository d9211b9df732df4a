package system

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStealerSpawnSuppressedBySameTickPickup(t *testing.T) {
	w := quietWorld(t)
	require.True(t, w.SpawnHealer(&component.Healer{Body: component.Body{Pos: w.Player().Pos, Radius: 42.5}}))

	// The timer intent and the pickup land in the same tick.
	w.Intents().Push(ecs.IntentSpawnStealer)
	w.Update()

	assert.Equal(t, component.PairAbsent, w.Pair().Phase())
	assert.Nil(t, w.Pair().Stealer())
	assert.Zero(t, w.Snapshot().Count(component.KindStealer))
}

func TestStealerTimerSpawnsAfterDelay(t *testing.T) {
	w := quietWorld(t)
	tuning := w.Tuning()
	require.True(t, w.SpawnHealer(&component.Healer{Body: component.Body{Pos: offset(w.Player().Pos, 400, 200), Radius: tuning.Healer.Radius}}))

	delay := tuning.Ticks(tuning.Stealer.SpawnDelay)
	step(w, delay-1)
	require.Equal(t, component.PairHealerPresent, w.Pair().Phase())

	step(w, 2)
	require.Equal(t, component.PairStealerPursuing, w.Pair().Phase())
	st := w.Pair().Stealer()
	require.NotNil(t, st)
	assert.Equal(t, component.StealerSeeking, st.State)
	assert.Greater(t, st.Speed, NewSpawnSystem().Difficulty(w).HostileSpeed(w.State().Score))
}

func TestStealerCapturesAndExits(t *testing.T) {
	w := quietWorld(t)
	tuning := w.Tuning()
	healerPos := offset(w.Player().Pos, -500, -250)
	require.True(t, w.SpawnHealer(&component.Healer{Body: component.Body{Pos: healerPos, Radius: tuning.Healer.Radius}}))
	w.Intents().Push(ecs.IntentSpawnStealer)

	seen := map[component.PairPhase]bool{}
	for i := 0; i < 2000 && !(seen[component.PairCarrying] && w.Pair().Phase() == component.PairAbsent); i++ {
		w.Update()
		pair := w.Pair()
		seen[pair.Phase()] = true
		require.NoError(t, pair.Validate())
		if pair.Phase() == component.PairCarrying {
			require.Nil(t, pair.Healer())
			require.Zero(t, w.Snapshot().Count(component.KindHealer))
		}
	}

	assert.True(t, seen[component.PairStealerPursuing])
	assert.True(t, seen[component.PairCarrying])
	assert.False(t, seen[component.PairAttacking])
	assert.Equal(t, component.PairAbsent, w.Pair().Phase())
	assert.Nil(t, w.Pair().Stealer())
}

func TestCarryTimeoutTurnsToAttack(t *testing.T) {
	tuning := quietTuning(t)
	tuning.Stealer.CarryTimeout = 10 * time.Millisecond
	tuning.Stealer.AttackDuration = 100 * time.Millisecond
	w := NewWorld(tuning, ecs.WithSeed(3))

	require.True(t, w.SpawnHealer(&component.Healer{Body: component.Body{Pos: offset(w.Player().Pos, -300, 0), Radius: tuning.Healer.Radius}}))
	w.Intents().Push(ecs.IntentSpawnStealer)

	var order []component.PairPhase
	for i := 0; i < 2000; i++ {
		w.Update()
		phase := w.Pair().Phase()
		if len(order) == 0 || order[len(order)-1] != phase {
			order = append(order, phase)
		}
		if phase == component.PairAbsent {
			break
		}
	}

	assert.Equal(t, []component.PairPhase{
		component.PairStealerPursuing,
		component.PairCarrying,
		component.PairAttacking,
		component.PairAbsent,
	}, order)
}

func TestExitPointNearestEdge(t *testing.T) {
	bb := cp.BB{L: 0, B: 0, R: 1280, T: 720}
	cases := []struct {
		name string
		pos  cp.Vector
		want cp.Vector
	}{
		{"left", cp.Vector{X: 10, Y: 300}, cp.Vector{X: -50, Y: 300}},
		{"right", cp.Vector{X: 1270, Y: 300}, cp.Vector{X: 1330, Y: 300}},
		{"top", cp.Vector{X: 600, Y: 5}, cp.Vector{X: 600, Y: -50}},
		{"bottom", cp.Vector{X: 600, Y: 715}, cp.Vector{X: 600, Y: 770}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, exitPoint(bb, c.pos, 50))
		})
	}
}
