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

func TestSelectTarget(t *testing.T) {
	cases := []struct {
		name     string
		hostiles []cp.Vector // offsets from the player, in spawn order
		boss     *cp.Vector
		wantOK   bool
		wantDir  cp.Vector
	}{
		{
			name:     "nearest",
			hostiles: []cp.Vector{{X: 300}, {Y: -150}, {X: -400, Y: 10}},
			wantOK:   true,
			wantDir:  cp.Vector{Y: -1},
		},
		{
			name:     "tie_keeps_first",
			hostiles: []cp.Vector{{X: 200}, {Y: 200}, {X: -200}},
			wantOK:   true,
			wantDir:  cp.Vector{X: 1},
		},
		{
			name:     "boss_overrides_nearer_hostile",
			hostiles: []cp.Vector{{X: 100}},
			boss:     &cp.Vector{X: -300},
			wantOK:   true,
			wantDir:  cp.Vector{X: -1},
		},
		{
			name:   "no_target",
			wantOK: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := quietWorld(t)
			tuning := w.Tuning()
			player := w.Player().Pos
			for _, off := range c.hostiles {
				w.AddHostile(&component.Hostile{Body: component.Body{Pos: player.Add(off), Radius: tuning.Hostile.Radius}})
			}
			if c.boss != nil {
				require.True(t, w.SpawnBoss(&component.Boss{
					Body: component.Body{Pos: player.Add(*c.boss), Radius: tuning.Boss.Radius},
					HP:   3, MaxHP: 3,
				}))
			}

			_, ok := selectTarget(w, player)
			require.Equal(t, c.wantOK, ok)
			require.Equal(t, c.wantOK, fire(w))

			if !c.wantOK {
				assert.Empty(t, w.Projectiles())
				return
			}
			require.Len(t, w.Projectiles(), 1)
			vel := w.Projectiles()[0].Vel
			want := c.wantDir.Mult(tuning.Projectile.Speed)
			assert.InDelta(t, want.X, vel.X, 1e-9)
			assert.InDelta(t, want.Y, vel.Y, 1e-9)
		})
	}
}

func TestUnaimedShotIsDropped(t *testing.T) {
	w := quietWorld(t)
	w.PrimaryAction()
	w.Update()

	assert.Empty(t, w.Projectiles())
	assert.Zero(t, w.Intents().Len())
}

func TestProjectileCullMargin(t *testing.T) {
	w := quietWorld(t)
	tuning := w.Tuning()
	bb := w.Bounds()
	margin := tuning.Projectile.CullMargin
	speed := tuning.Projectile.Speed
	y := (bb.B + bb.T) / 2

	w.AddProjectile(&component.Projectile{
		Body: component.Body{Pos: cp.Vector{X: bb.R + margin - speed, Y: y}, Radius: tuning.Projectile.Radius},
		Vel:  cp.Vector{X: speed},
	}, tuning.Projectile.MaxLive)

	w.Update()
	require.Len(t, w.Projectiles(), 1, "a projectile exactly on the margin stays live")
	assert.Equal(t, bb.R+margin, w.Projectiles()[0].Pos.X)

	w.Update()
	assert.Empty(t, w.Projectiles(), "a projectile past the margin is culled")
}

func TestProjectileMaxAge(t *testing.T) {
	cases := []struct {
		name     string
		maxAge   time.Duration
		liveFor  int
		expected bool // still live after liveFor ticks
	}{
		{"disabled", 0, 200, true},
		{"expires_on_limit", 100 * time.Millisecond, 6, false},
		{"alive_before_limit", 100 * time.Millisecond, 5, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tuning := quietTuning(t)
			tuning.Projectile.MaxAge = c.maxAge
			w := NewWorld(tuning, ecs.WithSeed(7))

			w.AddProjectile(&component.Projectile{
				Body: component.Body{Pos: w.Player().Pos, Radius: tuning.Projectile.Radius},
			}, tuning.Projectile.MaxLive)

			step(w, c.liveFor)
			assert.Equal(t, c.expected, len(w.Projectiles()) == 1)
		})
	}
}
