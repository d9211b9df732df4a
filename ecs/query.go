package ecs

import "github.com/milk9111/pursuit/ecs/component"

// ForEach visits every component of kind in dense order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	set := w.components.lookup(kind.ID())
	ents := set.Entities()
	vals := set.Values()
	for i := range ents {
		if v, ok := vals[i].(*T); ok {
			fn(ents[i], v)
		}
	}
}

// Query copies the components of kind into a new slice, in dense order.
func Query[T any](w *World, kind component.ComponentKind[T]) []*T {
	set := w.components.lookup(kind.ID())
	if set.Len() == 0 {
		return nil
	}
	out := make([]*T, 0, set.Len())
	for _, v := range set.Values() {
		if c, ok := v.(*T); ok {
			out = append(out, c)
		}
	}
	return out
}

// First returns the first component of kind, for singletons.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	set := w.components.lookup(kind.ID())
	if set.Len() == 0 {
		return 0, nil, false
	}
	c, ok := set.Values()[0].(*T)
	return set.Entities()[0], c, ok
}

// Count reports how many entities carry kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return w.components.lookup(kind.ID()).Len()
}
