package ecs

// smallest picks the store with the fewest entries to drive an intersection.
func smallest(stores ...componentStore) componentStore {
	best := stores[0]
	for _, s := range stores[1:] {
		if s.len() < best.len() {
			best = s
		}
	}
	return best
}
