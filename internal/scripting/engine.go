package scripting

import (
	"fmt"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/n88/worlds/internal/component"
	"github.com/n88/worlds/internal/core/ecs"
	"github.com/n88/worlds/internal/data"
	"github.com/n88/worlds/internal/world"
)

// Engine wraps a single gopher-lua VM that drives the world from tick
// scripts. Single-goroutine access only (game loop).
type Engine struct {
	vm      *lua.LState
	world   *ecs.World
	spawner *world.Spawner
	log     *zap.Logger
}

type counter func(*ecs.World) int

// kinds maps the component names scripts may ask about to their counters.
var kinds = map[string]struct{ bound, pooled counter }{
	"position": {ecs.BoundLen[component.Position], ecs.PoolLen[component.Position]},
	"velocity": {ecs.BoundLen[component.Velocity], ecs.PoolLen[component.Velocity]},
	"lifetime": {ecs.BoundLen[component.Lifetime], ecs.PoolLen[component.Lifetime]},
	"health":   {ecs.BoundLen[component.Health], ecs.PoolLen[component.Health]},
	"label":    {ecs.BoundLen[component.Label], ecs.PoolLen[component.Label]},
}

// NewEngine creates a Lua engine bound to w and loads all scripts in
// scriptsDir. An empty or missing directory loads nothing.
func NewEngine(scriptsDir string, w *ecs.World, spawner *world.Spawner, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, world: w, spawner: spawner, log: log}
	vm.SetGlobal("spawn", vm.NewFunction(e.luaSpawn))
	vm.SetGlobal("release", vm.NewFunction(e.luaRelease))
	vm.SetGlobal("alive_count", vm.NewFunction(e.luaCount(false)))
	vm.SetGlobal("pooled_count", vm.NewFunction(e.luaCount(true)))

	if scriptsDir != "" {
		if err := e.loadDir(scriptsDir); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load scripts: %w", err)
		}
	}
	return e, nil
}

// loadDir runs every *.lua file directly under dir, in name order. A missing
// dir matches nothing.
func (e *Engine) loadDir(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.lua"))
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("script loaded", zap.String("file", path))
	}
	return nil
}

// DoString runs a chunk of Lua source in the engine's VM.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// OnTick calls the Lua on_tick function if a script defined one. Script
// errors are logged and do not stop the loop.
func (e *Engine) OnTick(tick int) {
	fn := e.vm.GetGlobal("on_tick")
	if fn == lua.LNil {
		return
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(tick)); err != nil {
		e.log.Error("lua on_tick error", zap.Int("tick", tick), zap.Error(err))
	}
}

// spawn(name, x, y, dx, dy, ttl, hp) -> id | nil
func (e *Engine) luaSpawn(L *lua.LState) int {
	entry := data.SpawnEntry{
		Name:  L.CheckString(1),
		Count: 1,
		X:     float64(L.OptNumber(2, 0)),
		Y:     float64(L.OptNumber(3, 0)),
		DX:    float64(L.OptNumber(4, 0)),
		DY:    float64(L.OptNumber(5, 0)),
		TTL:   L.OptInt(6, 0),
		HP:    L.OptInt(7, 0),
	}
	if entry.TTL < 0 {
		L.ArgError(6, "ttl must not be negative")
		return 0
	}
	if entry.HP < 0 {
		L.ArgError(7, "hp must not be negative")
		return 0
	}
	ids, err := e.spawner.Spawn(entry)
	if err != nil || len(ids) == 0 {
		e.log.Error("lua spawn failed", zap.String("name", entry.Name), zap.Error(err))
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(ids[0]))
	return 1
}

// release(id) -> bool
func (e *Engine) luaRelease(L *lua.LState) int {
	n := L.CheckInt64(1)
	if n <= 0 {
		L.Push(lua.LFalse)
		return 1
	}
	L.Push(lua.LBool(e.world.ReleaseEntity(ecs.EntityID(n))))
	return 1
}

// alive_count(kind) / pooled_count(kind) -> number
func (e *Engine) luaCount(pooled bool) lua.LGFunction {
	return func(L *lua.LState) int {
		name := L.CheckString(1)
		k, ok := kinds[name]
		if !ok {
			L.ArgError(1, "unknown component kind "+name)
			return 0
		}
		fn := k.bound
		if pooled {
			fn = k.pooled
		}
		L.Push(lua.LNumber(fn(e.world)))
		return 1
	}
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
