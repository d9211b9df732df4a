package ecs

import "github.com/milk9111/pursuit/ecs/component"

// entityStore tracks entity generations and free slots.
type entityStore struct {
	gen   []uint32
	free  []uint32
	alive int
}

func (s *entityStore) create() Entity {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		idx = uint32(len(s.gen))
	}
	s.alive++
	return component.MakeEntityID(idx, s.gen[idx-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.Index()
	s.gen[idx-1]++
	s.free = append(s.free, idx)
	s.alive--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	idx := e.Index()
	if idx == 0 || int(idx) > len(s.gen) {
		return false
	}
	return s.gen[idx-1] == e.Generation()
}

// componentStore holds one SparseSet per component kind.
type componentStore struct {
	sets map[component.ComponentID]*SparseSet
}

func (c *componentStore) set(id component.ComponentID) *SparseSet {
	if c.sets == nil {
		c.sets = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := c.sets[id]
	if !ok {
		s = &SparseSet{}
		c.sets[id] = s
	}
	return s
}

func (c *componentStore) lookup(id component.ComponentID) *SparseSet {
	return c.sets[id]
}

func (c *componentStore) removeAll(e Entity) {
	for _, s := range c.sets {
		s.Remove(e)
	}
}

// CreateEntity allocates a new entity with no components.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity drops e and every component attached to it.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	w.components.removeAll(e)
	return true
}

// AddComponent attaches value under kind id. value must be a pointer.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.components.set(id).Set(e, value)
	return nil
}

func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	v := w.components.lookup(id).Get(e)
	return v, v != nil
}

func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	return w.components.lookup(id).Has(e)
}

func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	return w.components.lookup(id).Remove(e)
}

// compact removes the marked dense entries of kind id and destroys their
// entities in one pass.
func (w *World) compact(id component.ComponentID, dead []bool) int {
	removed := w.components.lookup(id).Compact(dead)
	for _, e := range removed {
		w.DestroyEntity(e)
	}
	return len(removed)
}
