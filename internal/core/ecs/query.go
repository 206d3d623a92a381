package ecs

// Each calls fn for every entity with a T. Order is unspecified. fn must not
// bind or release T; use MarkForRelease to defer removals.
func Each[T any](w *World, fn func(EntityID, *T)) {
	if s := lookup[T](w.registry); s != nil {
		s.Each(fn)
	}
}

// Each2 iterates over entities that have both component A and B.
// It iterates over the smaller store and checks the larger one.
func Each2[A, B any](w *World, fn func(EntityID, *A, *B)) {
	sa := lookup[A](w.registry)
	sb := lookup[B](w.registry)
	if sa == nil || sb == nil {
		return
	}
	if sa.Len() <= sb.Len() {
		for id, a := range sa.bound {
			if b, ok := sb.bound[id]; ok {
				fn(id, a, b)
			}
		}
	} else {
		for id, b := range sb.bound {
			if a, ok := sa.bound[id]; ok {
				fn(id, a, b)
			}
		}
	}
}
