package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerMovement(t *testing.T) {
	cases := []struct {
		name  string
		mode  string
		touch bool
		dx    float64
		want  float64
	}{
		{"direct", prefabs.MovementDirect, false, 100, 100},
		{"smooth_pointer", prefabs.MovementSmooth, false, 100, 18},
		{"smooth_touch", prefabs.MovementSmooth, true, 100, 22},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tuning := quietTuning(t)
			tuning.Player.Movement = c.mode
			w := ecs.NewWorld(tuning, ecs.WithSeed(1))
			start := w.Player().Pos
			w.SetInput(component.Input{Target: offset(start, c.dx, 0), Touch: c.touch})

			NewMovementSystem().Update(w)

			assert.InDelta(t, start.X+c.want, w.Player().Pos.X, 1e-9)
			assert.InDelta(t, start.Y, w.Player().Pos.Y, 1e-9)
		})
	}
}

func TestPlayerClampedInsideBounds(t *testing.T) {
	tuning := quietTuning(t)
	tuning.Player.Movement = prefabs.MovementDirect
	w := ecs.NewWorld(tuning, ecs.WithSeed(1))
	w.SetInput(component.Input{Target: cp.Vector{X: -500, Y: 5000}})

	NewMovementSystem().Update(w)

	r := tuning.Player.Radius
	assert.Equal(t, cp.Vector{X: r, Y: tuning.Bounds.Height - r}, w.Player().Pos)
}

func TestInactiveInputLeavesPlayer(t *testing.T) {
	w := quietWorld(t)
	start := w.Player().Pos
	NewMovementSystem().Update(w)
	assert.Equal(t, start, w.Player().Pos)
}

func TestSeekAtZeroDistanceSkips(t *testing.T) {
	w := quietWorld(t)
	pos := w.Player().Pos
	w.AddHostile(&component.Hostile{Body: component.Body{Pos: pos, Radius: 37.5}, Speed: 5})

	NewMovementSystem().Update(w)

	h := w.Hostiles()[0]
	assert.Equal(t, pos, h.Pos)
	assert.False(t, math.IsNaN(h.Pos.X) || math.IsNaN(h.Pos.Y))
}

func TestPursuersSeekTheirTargets(t *testing.T) {
	w := quietWorld(t)
	player := w.Player().Pos
	w.AddHostile(&component.Hostile{Body: component.Body{Pos: offset(player, 100, 0), Radius: 37.5}, Speed: 4})
	require.True(t, w.SpawnBoss(&component.Boss{Body: component.Body{Pos: offset(player, 0, -200), Radius: 70}, Speed: 3, HP: 1}))

	healer := offset(player, -300, 0)
	require.True(t, w.SpawnHealer(&component.Healer{Body: component.Body{Pos: healer, Radius: 42.5}}))
	require.True(t, w.SpawnStealer(&component.Stealer{Body: component.Body{Pos: offset(healer, 0, 100), Radius: 42.5}, Speed: 5}))

	NewMovementSystem().Update(w)

	assert.InDelta(t, player.X+96, w.Hostiles()[0].Pos.X, 1e-9)
	assert.InDelta(t, player.Y-197, w.Boss().Pos.Y, 1e-9)
	assert.InDelta(t, healer.Y+95, w.Pair().Stealer().Pos.Y, 1e-9)
}
