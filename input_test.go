package main

import (
	"image"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestPointerSample(t *testing.T) {
	type step struct {
		touches []image.Point
		cursor  image.Point
		ok      bool
		target  cp.Vector
		touch   bool
	}
	cases := []struct {
		name  string
		steps []step
	}{
		{
			name: "mouse_moves",
			steps: []step{
				{cursor: image.Pt(300, 200), ok: true, target: cp.Vector{X: 300, Y: 200}},
				{cursor: image.Pt(300, 200), ok: false},
				{cursor: image.Pt(310, 200), ok: true, target: cp.Vector{X: 310, Y: 200}},
			},
		},
		{
			name: "lifted_finger_keeps_target",
			steps: []step{
				{touches: []image.Point{image.Pt(500, 400)}, ok: true, target: cp.Vector{X: 500, Y: 400}, touch: true},
				{ok: false},
				{ok: false},
				{touches: []image.Point{image.Pt(520, 410)}, ok: true, target: cp.Vector{X: 520, Y: 410}, touch: true},
			},
		},
		{
			name: "mouse_after_touch",
			steps: []step{
				{touches: []image.Point{image.Pt(50, 60)}, cursor: image.Pt(10, 10), ok: true, target: cp.Vector{X: 50, Y: 60}, touch: true},
				{cursor: image.Pt(10, 10), ok: false},
				{cursor: image.Pt(90, 10), ok: true, target: cp.Vector{X: 90, Y: 10}},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var p pointer
			for i, s := range c.steps {
				in, ok := p.sample(s.touches, s.cursor)
				assert.Equal(t, s.ok, ok, "step %d", i)
				if !s.ok {
					continue
				}
				assert.Equal(t, s.target, in.Target, "step %d", i)
				assert.Equal(t, s.touch, in.Touch, "step %d", i)
			}
		})
	}
}
