package system

import (
	"time"

	"github.com/n88/worlds/internal/component"
	"github.com/n88/worlds/internal/core/ecs"
	coresys "github.com/n88/worlds/internal/core/system"
)

// LifetimeSystem counts down Lifetime.TTL and queues expired entities for
// release. The release itself happens in CleanupSystem so other systems in
// the same tick still see the entity.
// Phase 3 (PostUpdate).
type LifetimeSystem struct {
	world     *ecs.World
	lifetimes *ecs.Store[component.Lifetime]
}

func NewLifetimeSystem(world *ecs.World) *LifetimeSystem {
	return &LifetimeSystem{
		world:     world,
		lifetimes: ecs.GetStore[component.Lifetime](world),
	}
}

func (s *LifetimeSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *LifetimeSystem) Update(_ time.Duration) {
	s.lifetimes.Each(func(id ecs.EntityID, lt *component.Lifetime) {
		if lt.TTL > 0 {
			lt.TTL--
		}
		if lt.TTL == 0 {
			s.world.MarkForRelease(id)
		}
	})
}
