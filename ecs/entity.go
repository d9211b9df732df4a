package ecs

import "github.com/milk9111/pursuit/ecs/component"

// Entity is a generational handle. A destroyed handle stays dead even after
// its slot is reused.
type Entity = component.EntityID
