package ecs

import "reflect"

// Registry indexes one Store per component type. Stores are created lazily on
// first bind and kept in registration order.
type Registry struct {
	index  map[reflect.Type]int
	stores []anyStore
}

func NewRegistry() *Registry {
	return &Registry{
		index:  make(map[reflect.Type]int, 16),
		stores: make([]anyStore, 0, 16),
	}
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// lookup returns the store for T, or nil if T was never bound.
func lookup[T any](r *Registry) *Store[T] {
	i, ok := r.index[typeKey[T]()]
	if !ok {
		return nil
	}
	return r.stores[i].(*Store[T])
}

// ensure returns the store for T, registering an empty one if needed.
func ensure[T any](r *Registry) *Store[T] {
	t := typeKey[T]()
	if i, ok := r.index[t]; ok {
		return r.stores[i].(*Store[T])
	}
	s := newStore[T](t.String(), t.Size())
	r.index[t] = len(r.stores)
	r.stores = append(r.stores, s)
	return s
}

// Len returns the number of registered component types.
func (r *Registry) Len() int { return len(r.stores) }

// ReleaseAll releases id from every registered store and returns how many
// components were released.
func (r *Registry) ReleaseAll(id EntityID) int {
	n := 0
	for _, s := range r.stores {
		if s.release(id) {
			n++
		}
	}
	return n
}

// TypeStats is a per-type snapshot of binding and pool sizes.
type TypeStats struct {
	Name   string
	Bound  int
	Pooled int
}

func (r *Registry) Stats() []TypeStats {
	out := make([]TypeStats, len(r.stores))
	for i, s := range r.stores {
		out[i] = TypeStats{Name: s.typeName(), Bound: s.boundLen(), Pooled: s.pooledLen()}
	}
	return out
}
