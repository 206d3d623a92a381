package ecs

// EntityID is an opaque, strictly positive entity identifier. Ids are issued
// sequentially starting at 1 and are never reused.
type EntityID uint64

// NilEntity is never issued by a World.
const NilEntity EntityID = 0

func (id EntityID) IsZero() bool { return id == NilEntity }

// entityCounter hands out sequential ids. The highest issued id doubles as the
// registry's "known entity" bound.
type entityCounter struct {
	last EntityID
}

func (c *entityCounter) next() EntityID {
	c.last++
	return c.last
}

// known reports whether id has been issued.
func (c *entityCounter) known(id EntityID) bool {
	return id != NilEntity && id <= c.last
}
