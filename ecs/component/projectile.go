package component

import "github.com/jakecoffman/cp"

type Projectile struct {
	Body
	Vel      cp.Vector
	AgeTicks int
}

var ProjectileComponent = NewComponent[Projectile]()
