package system

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/prefabs"
	"github.com/stretchr/testify/require"
)

func loadTuning(t *testing.T) *prefabs.Tuning {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	require.NoError(t, err)
	return tuning
}

// quietTuning disables random spawns and auto-fire so scenarios only contain
// what the test places.
func quietTuning(t *testing.T) *prefabs.Tuning {
	t.Helper()
	tuning := loadTuning(t)
	tuning.Hostile.SpawnChance = 0
	tuning.Healer.SpawnChance = 0
	tuning.Projectile.FireInterval = time.Hour
	return tuning
}

func quietWorld(t *testing.T) *ecs.World {
	t.Helper()
	return NewWorld(quietTuning(t), ecs.WithSeed(7))
}

func offset(p cp.Vector, dx, dy float64) cp.Vector {
	return cp.Vector{X: p.X + dx, Y: p.Y + dy}
}

func step(w *ecs.World, n int) {
	for i := 0; i < n; i++ {
		w.Update()
	}
}
