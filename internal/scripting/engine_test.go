package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gotest.tools/v3/assert"

	"github.com/n88/worlds/internal/component"
	"github.com/n88/worlds/internal/core/ecs"
	"github.com/n88/worlds/internal/scripting"
	"github.com/n88/worlds/internal/world"
)

func newEngine(t *testing.T, dir string, log *zap.Logger) (*scripting.Engine, *ecs.World) {
	t.Helper()
	w := ecs.NewWorld()
	e, err := scripting.NewEngine(dir, w, world.NewSpawner(w, log), log)
	assert.NilError(t, err)
	t.Cleanup(e.Close)
	return e, w
}

func TestSpawnAndRelease(t *testing.T) {
	e, w := newEngine(t, "", zap.NewNop())

	assert.NilError(t, e.DoString(`
		id = spawn("probe", 1, 2, 0, 0, 4, 9)
		bound = alive_count("health")
		ok = release(id)
		pooled = pooled_count("health")
		again = release(id)
		missing = release(1000)
	`))

	assert.Equal(t, w.HighestEntity(), ecs.EntityID(1))
	assert.Assert(t, !ecs.Has[component.Health](w, 1))
	assert.Equal(t, ecs.PoolLen[component.Health](w), 1)
	assert.NilError(t, e.DoString(`assert(bound == 1 and ok == true and pooled == 1)`))
	assert.NilError(t, e.DoString(`assert(again == true and missing == false)`))
}

func TestUnknownKindIsAnError(t *testing.T) {
	e, _ := newEngine(t, "", zap.NewNop())
	err := e.DoString(`alive_count("mana")`)
	assert.ErrorContains(t, err, "unknown component kind")
}

func TestOnTickFromScriptDir(t *testing.T) {
	dir := t.TempDir()
	src := `
function on_tick(tick)
  if alive_count("lifetime") < 2 then
    spawn("spark", 0, 0, 0, 0, tick)
  end
end
`
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "tick.lua"), []byte(src), 0o644))
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	e, w := newEngine(t, dir, zap.NewNop())
	for tick := 1; tick <= 4; tick++ {
		e.OnTick(tick)
	}
	assert.Equal(t, ecs.BoundLen[component.Lifetime](w), 2)
}

func TestOnTickErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	e, _ := newEngine(t, "", zap.New(core))
	assert.NilError(t, e.DoString(`function on_tick(t) error("boom") end`))

	e.OnTick(1)
	assert.Equal(t, logs.FilterMessage("lua on_tick error").Len(), 1)
}

func TestMissingDirLoadsNothing(t *testing.T) {
	e, _ := newEngine(t, filepath.Join(t.TempDir(), "absent"), zap.NewNop())
	e.OnTick(1)
}

func TestBadScriptFailsLoad(t *testing.T) {
	dir := t.TempDir()
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "bad.lua"), []byte("function ("), 0o644))
	w := ecs.NewWorld()
	_, err := scripting.NewEngine(dir, w, world.NewSpawner(w, zap.NewNop()), zap.NewNop())
	assert.ErrorContains(t, err, "load scripts")
}

func TestSpawnRejectsNegativeArguments(t *testing.T) {
	e, w := newEngine(t, "", zap.NewNop())

	err := e.DoString(`spawn("bad", 0, 0, 0, 0, -1, 5)`)
	assert.ErrorContains(t, err, "bad argument #6")
	assert.ErrorContains(t, err, "ttl must not be negative")

	err = e.DoString(`spawn("bad", 0, 0, 0, 0, 5, -1)`)
	assert.ErrorContains(t, err, "bad argument #7")
	assert.ErrorContains(t, err, "hp must not be negative")

	assert.Equal(t, w.HighestEntity(), ecs.NilEntity)
}
