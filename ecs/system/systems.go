package system

import (
	"github.com/milk9111/pursuit/ecs"
	"github.com/milk9111/pursuit/prefabs"
)

// Default returns the per-tick system order.
func Default() []ecs.System {
	spawn := NewSpawnSystem()
	return []ecs.System{
		spawn,
		NewMovementSystem(),
		NewProjectileSystem(),
		NewCollisionSystem(),
		NewResourcePairSystem(spawn),
		NewGameStateSystem(),
	}
}

// NewWorld builds a world running the default systems.
func NewWorld(t *prefabs.Tuning, opts ...ecs.Option) *ecs.World {
	opts = append([]ecs.Option{ecs.WithSystems(Default()...)}, opts...)
	return ecs.NewWorld(t, opts...)
}
