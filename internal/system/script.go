package system

import (
	"time"

	coresys "github.com/n88/worlds/internal/core/system"
)

// TickHook is called once per tick with the tick number.
type TickHook interface {
	OnTick(tick int)
}

// ScriptSystem forwards the tick counter to a script hook.
// Phase 1 (PreUpdate).
type ScriptSystem struct {
	hook      TickHook
	tickCount int
}

func NewScriptSystem(hook TickHook) *ScriptSystem {
	return &ScriptSystem{hook: hook}
}

func (s *ScriptSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *ScriptSystem) Update(_ time.Duration) {
	s.tickCount++
	s.hook.OnTick(s.tickCount)
}
