package ecs

// componentStore is the type-erased view the world uses for bookkeeping
// (entity destruction, queries) without knowing the component type.
type componentStore interface {
	has(e Entity) bool
	remove(e Entity) bool
	entities() []Entity
	len() int
}

// SparseSet is a cache-friendly storage for components keyed by entity slot.
type SparseSet[T any] struct {
	dense  []Entity
	values []*T
	sparse []int
}

func (s *SparseSet[T]) has(e Entity) bool {
	id := int(e.slot())
	if id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.dense) && s.dense[idx] == e
}

func (s *SparseSet[T]) get(e Entity) (*T, bool) {
	if !s.has(e) {
		return nil, false
	}
	return s.values[s.sparse[e.slot()-1]], true
}

func (s *SparseSet[T]) set(e Entity, v *T) {
	id := int(e.slot())
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[id-1]; idx >= 0 && idx < len(s.dense) && s.dense[idx].slot() == e.slot() {
		// Same slot: overwrite, replacing any stale epoch.
		s.dense[idx] = e
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

func (s *SparseSet[T]) remove(e Entity) bool {
	if !s.has(e) {
		return false
	}
	idx := s.sparse[e.slot()-1]
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.slot()-1] = idx

	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e.slot()-1] = -1
	return true
}

// entities returns a snapshot so callers may mutate the set while iterating.
func (s *SparseSet[T]) entities() []Entity {
	return append([]Entity(nil), s.dense...)
}

func (s *SparseSet[T]) len() int {
	return len(s.dense)
}
