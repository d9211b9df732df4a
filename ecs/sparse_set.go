package ecs

// SparseSet stores one component per entity, keyed by the entity's slot.
// Dense order is insertion order until Remove swaps the last entry into the
// hole; Compact removes many entries and keeps the survivors in order.
type SparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int
}

// Has returns true if the exact handle e is stored.
func (s *SparseSet) Has(e Entity) bool {
	if s == nil || !e.Valid() {
		return false
	}
	slot := int(e.Index()) - 1
	if slot >= len(s.sparse) {
		return false
	}
	idx := s.sparse[slot]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == e
}

// Get returns the component for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	if !s.Has(e) {
		return nil
	}
	return s.denseValues[s.sparse[e.Index()-1]]
}

// Set inserts or updates a component for e.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	slot := int(e.Index()) - 1
	for slot >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(e) {
		s.denseValues[s.sparse[slot]] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[slot] = len(s.denseEntities) - 1
}

// Remove deletes the component for e if present.
func (s *SparseSet) Remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	idx := s.sparse[e.Index()-1]
	last := len(s.denseEntities) - 1
	lastEnt := s.denseEntities[last]

	s.denseEntities[idx] = lastEnt
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastEnt.Index()-1] = idx

	s.denseValues[last] = nil
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[e.Index()-1] = -1
	return true
}

// Compact drops every dense index marked in dead, keeping the rest in order,
// and returns the removed entities.
func (s *SparseSet) Compact(dead []bool) []Entity {
	if s == nil {
		return nil
	}
	var removed []Entity
	kept := 0
	for i, e := range s.denseEntities {
		if i < len(dead) && dead[i] {
			s.sparse[e.Index()-1] = -1
			removed = append(removed, e)
			continue
		}
		s.denseEntities[kept] = e
		s.denseValues[kept] = s.denseValues[i]
		s.sparse[e.Index()-1] = kept
		kept++
	}
	for i := kept; i < len(s.denseValues); i++ {
		s.denseValues[i] = nil
	}
	s.denseEntities = s.denseEntities[:kept]
	s.denseValues = s.denseValues[:kept]
	return removed
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns the dense entity list.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

// Values returns the dense component list.
func (s *SparseSet) Values() []any {
	if s == nil {
		return nil
	}
	return s.denseValues
}
