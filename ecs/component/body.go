package component

import "github.com/jakecoffman/cp"

// Body is the shared spatial part of every entity: a circle in screen space.
type Body struct {
	ID     EntityID
	Pos    cp.Vector
	Radius float64
}

func (b *Body) DistanceTo(p cp.Vector) float64 {
	return b.Pos.Distance(p)
}

// Within reports whether p lies strictly inside the body's radius.
func (b *Body) Within(p cp.Vector) bool {
	return b.Pos.Distance(p) < b.Radius
}

// Overlaps reports whether two circles intersect.
func (b *Body) Overlaps(o *Body) bool {
	if b == nil || o == nil {
		return false
	}
	return b.Pos.Distance(o.Pos) < b.Radius+o.Radius
}
