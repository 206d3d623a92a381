package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/n88/worlds/internal/core/ecs"
	coresys "github.com/n88/worlds/internal/core/system"
)

// CleanupSystem flushes the deferred release queue at tick end.
// Phase 4 (Cleanup).
type CleanupSystem struct {
	world *ecs.World
	log   *zap.Logger
}

func NewCleanupSystem(world *ecs.World, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{world: world, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	if n := s.world.FlushReleaseQueue(); n > 0 {
		s.log.Debug("released entities", zap.Int("count", n))
	}
}
