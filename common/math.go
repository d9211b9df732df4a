package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction returns the unit vector from `from` towards `to`. ok is false when the
// two points coincide, so callers never normalize a zero vector.
func Direction(from, to cp.Vector) (dir cp.Vector, dist float64, ok bool) {
	d := to.Sub(from)
	dist = d.Length()
	if dist == 0 || math.IsNaN(dist) {
		return cp.Vector{}, 0, false
	}
	return d.Mult(1 / dist), dist, true
}

// Seek steps pos towards target by speed. A zero-length offset leaves pos unchanged.
func Seek(pos, target cp.Vector, speed float64) cp.Vector {
	dir, _, ok := Direction(pos, target)
	if !ok {
		return pos
	}
	return pos.Add(dir.Mult(speed))
}

// Inset shrinks bb by margin on every side. Negative margins grow it.
func Inset(bb cp.BB, margin float64) cp.BB {
	return cp.BB{L: bb.L + margin, B: bb.B + margin, R: bb.R - margin, T: bb.T - margin}
}

// ClampInside keeps a circle of radius r fully inside bb.
func ClampInside(bb cp.BB, p cp.Vector, r float64) cp.Vector {
	in := Inset(bb, r)
	if in.L > in.R {
		in.L, in.R = (bb.L+bb.R)/2, (bb.L+bb.R)/2
	}
	if in.B > in.T {
		in.B, in.T = (bb.B+bb.T)/2, (bb.B+bb.T)/2
	}
	return cp.Vector{X: Clamp(p.X, in.L, in.R), Y: Clamp(p.Y, in.B, in.T)}
}

// Outside reports whether a circle of radius r lies entirely outside bb.
func Outside(bb cp.BB, p cp.Vector, r float64) bool {
	return !Inset(bb, -r).ContainsVect(p)
}
