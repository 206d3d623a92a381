package ecs

import "slices"

// Releaser is implemented by components that need cleanup when they are
// unbound from an entity. Release is called exactly once per unbind, before the
// instance is returned to its pool.
type Releaser interface {
	Release()
}

// anyStore is implemented by every Store so the registry can release an
// entity's data from all stores without knowing the concrete type.
type anyStore interface {
	release(id EntityID) bool
	typeName() string
	boundLen() int
	pooledLen() int
}

// Store holds the bindings of one component type plus a FIFO pool of released
// instances. A pointer is never present in both, and is bound to at most one
// entity.
type Store[T any] struct {
	name  string
	bound map[EntityID]*T
	pool  []*T

	// owner maps a bound pointer back to its entity. Zero-size types are
	// not tracked: distinct allocations may share an address, so one
	// pointer may legitimately be bound to many entities.
	owner   map[*T]EntityID
	tracked bool
}

func newStore[T any](name string, size uintptr) *Store[T] {
	return &Store[T]{
		name:    name,
		bound:   make(map[EntityID]*T, 64),
		pool:    make([]*T, 0, 16),
		owner:   make(map[*T]EntityID, 64),
		tracked: size > 0,
	}
}

type bindResult int

const (
	bindOK bindResult = iota
	bindDuplicate
	bindInUse
)

// bind inserts c for id. A pooled c is claimed out of the pool first. The
// store is left untouched when id already has a binding or c is bound to
// another entity.
func (s *Store[T]) bind(id EntityID, c *T) bindResult {
	if _, ok := s.bound[id]; ok {
		return bindDuplicate
	}
	if s.tracked {
		if _, ok := s.owner[c]; ok {
			return bindInUse
		}
		s.owner[c] = id
	}
	s.unpool(c)
	s.bound[id] = c
	return bindOK
}

// unpool removes c from the pool, keeping the order of the rest.
func (s *Store[T]) unpool(c *T) {
	for i, p := range s.pool {
		if p == c {
			copy(s.pool[i:], s.pool[i+1:])
			s.pool[len(s.pool)-1] = nil
			s.pool = s.pool[:len(s.pool)-1]
			return
		}
	}
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.bound[id]
	return c, ok
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.bound[id]
	return ok
}

func (s *Store[T]) Len() int { return len(s.bound) }

func (s *Store[T]) PoolLen() int { return len(s.pool) }

// release unbinds id, runs the cleanup hook and appends the instance to the
// pool tail.
func (s *Store[T]) release(id EntityID) bool {
	c, ok := s.bound[id]
	if !ok {
		return false
	}
	delete(s.bound, id)
	delete(s.owner, c)
	if r, ok := any(c).(Releaser); ok {
		r.Release()
	}
	s.pool = append(s.pool, c)
	return true
}

// take pops the oldest pooled instance.
func (s *Store[T]) take() (*T, bool) {
	if len(s.pool) == 0 {
		return nil, false
	}
	c := s.pool[0]
	s.pool[0] = nil
	s.pool = s.pool[1:]
	return c, true
}

// Entities returns the bound ids in ascending order.
func (s *Store[T]) Entities() []EntityID {
	ids := make([]EntityID, 0, len(s.bound))
	for id := range s.bound {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Components returns the bound components in the same order as Entities.
func (s *Store[T]) Components() []*T {
	ids := s.Entities()
	out := make([]*T, len(ids))
	for i, id := range ids {
		out[i] = s.bound[id]
	}
	return out
}

func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.bound {
		fn(id, c)
	}
}

func (s *Store[T]) typeName() string { return s.name }
func (s *Store[T]) boundLen() int    { return len(s.bound) }
func (s *Store[T]) pooledLen() int   { return len(s.pool) }
