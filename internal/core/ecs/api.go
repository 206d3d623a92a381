package ecs

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// TryBind binds c to id as its component of type T.
//
// A nil c fails with ErrInvalidComponent whatever id is. An id that was never
// issued fails with ErrUnknownEntity, and an id that already has a T fails
// with ErrDuplicateBinding. An instance already bound to another entity fails
// with ErrComponentInUse. Failed calls leave the world unchanged.
//
// Binding an instance that sits in the T pool takes it out of the pool, as if
// TakePooled had returned it.
func TryBind[T any](w *World, id EntityID, c *T) error {
	if c == nil {
		err := eris.Wrapf(ErrInvalidComponent, "bind %s to entity %d", typeKey[T](), id)
		w.log.Debug("bind rejected", zap.Error(err))
		return err
	}
	if !w.entities.known(id) {
		w.log.Debug("bind rejected",
			zap.Uint64("entity", uint64(id)),
			zap.Stringer("component", typeKey[T]()),
			zap.String("reason", "unknown entity"),
		)
		return eris.Wrapf(ErrUnknownEntity, "bind %s to entity %d", typeKey[T](), id)
	}
	s := ensure[T](w.registry)
	var err error
	switch s.bind(id, c) {
	case bindOK:
		return nil
	case bindDuplicate:
		err = eris.Wrapf(ErrDuplicateBinding, "bind %s to entity %d", s.name, id)
	case bindInUse:
		err = eris.Wrapf(ErrComponentInUse, "bind %s to entity %d", s.name, id)
	}
	w.log.Debug("bind rejected",
		zap.Uint64("entity", uint64(id)),
		zap.String("component", s.name),
		zap.Error(err),
	)
	return err
}

// GetStore returns the store for T, registering an empty one if T was never
// bound. Systems may cache the pointer; it stays valid for the world's
// lifetime.
func GetStore[T any](w *World) *Store[T] {
	return ensure[T](w.registry)
}

// TryGet returns the T bound to id. The pointer is non-nil whenever ok is true.
func TryGet[T any](w *World, id EntityID) (*T, bool) {
	s := lookup[T](w.registry)
	if s == nil {
		return nil, false
	}
	return s.Get(id)
}

// Has reports whether id has a T bound.
func Has[T any](w *World, id EntityID) bool {
	s := lookup[T](w.registry)
	return s != nil && s.Has(id)
}

// TryRelease unbinds the T bound to id, runs its Release hook if it has one
// and appends it to the T pool. It returns false if id has no T. The id is
// not checked against the issued range.
func TryRelease[T any](w *World, id EntityID) bool {
	s := lookup[T](w.registry)
	if s == nil {
		return false
	}
	if !s.release(id) {
		return false
	}
	w.log.Debug("component released",
		zap.Uint64("entity", uint64(id)),
		zap.String("component", s.name),
	)
	return true
}

// TakePooled removes and returns the oldest released T. It never creates a
// new value: ok is false when the pool is empty or T was never bound.
func TakePooled[T any](w *World) (*T, bool) {
	s := lookup[T](w.registry)
	if s == nil {
		return nil, false
	}
	return s.take()
}

// Acquire returns a pooled T if one is available, otherwise a new zero T.
// Pooled instances keep whatever state their Release hook left them in.
func Acquire[T any](w *World) *T {
	if c, ok := TakePooled[T](w); ok {
		return c
	}
	return new(T)
}

// EntitiesWith returns the ids that currently have a T, in ascending order.
// The result is never nil.
func EntitiesWith[T any](w *World) []EntityID {
	s := lookup[T](w.registry)
	if s == nil {
		return []EntityID{}
	}
	return s.Entities()
}

// ComponentsOf returns every bound T, ordered like EntitiesWith. The result
// is never nil.
func ComponentsOf[T any](w *World) []*T {
	s := lookup[T](w.registry)
	if s == nil {
		return []*T{}
	}
	return s.Components()
}

// BoundLen returns the number of entities with a T.
func BoundLen[T any](w *World) int {
	if s := lookup[T](w.registry); s != nil {
		return s.Len()
	}
	return 0
}

// PoolLen returns the number of released T waiting for reuse.
func PoolLen[T any](w *World) int {
	if s := lookup[T](w.registry); s != nil {
		return s.PoolLen()
	}
	return 0
}
