package system

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

type recordSystem struct {
	name  string
	phase Phase
	log   *[]string
}

func (s recordSystem) Phase() Phase           { return s.phase }
func (s recordSystem) Update(_ time.Duration) { *s.log = append(*s.log, s.name) }

func TestRunnerOrdersByPhase(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recordSystem{"cleanup", PhaseCleanup, &log})
	r.Register(recordSystem{"move", PhaseUpdate, &log})
	r.Register(recordSystem{"input", PhaseInput, &log})
	r.Register(recordSystem{"move2", PhaseUpdate, &log})
	assert.Equal(t, r.Len(), 4)

	r.Tick(time.Millisecond)
	assert.DeepEqual(t, log, []string{"input", "move", "move2", "cleanup"})
}

func TestRunnerTickPhase(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recordSystem{"a", PhaseUpdate, &log})
	r.Register(recordSystem{"b", PhasePostUpdate, &log})

	r.TickPhase(PhasePostUpdate, time.Millisecond)
	assert.DeepEqual(t, log, []string{"b"})
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, PhaseCleanup.String(), "cleanup")
	assert.Equal(t, Phase(42).String(), "unknown")
}
