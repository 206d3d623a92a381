package system

import (
	"time"

	"github.com/n88/worlds/internal/component"
	"github.com/n88/worlds/internal/core/ecs"
	coresys "github.com/n88/worlds/internal/core/system"
)

// MovementSystem applies Velocity to Position once per tick.
// Phase 2 (Update).
type MovementSystem struct {
	world *ecs.World
}

func NewMovementSystem(world *ecs.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MovementSystem) Update(_ time.Duration) {
	ecs.Each2(s.world, func(_ ecs.EntityID, p *component.Position, v *component.Velocity) {
		p.X += v.DX
		p.Y += v.DY
	})
}
