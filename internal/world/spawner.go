package world

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/n88/worlds/internal/component"
	"github.com/n88/worlds/internal/core/ecs"
	"github.com/n88/worlds/internal/data"
)

// Spawner creates entities from spawn entries, drawing component instances
// from the world's pools before allocating new ones.
type Spawner struct {
	world *ecs.World
	log   *zap.Logger
}

func NewSpawner(w *ecs.World, log *zap.Logger) *Spawner {
	return &Spawner{world: w, log: log}
}

// Spawn creates e.Copies() entities for one entry.
func (s *Spawner) Spawn(e data.SpawnEntry) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, e.Copies())
	for i := 0; i < e.Copies(); i++ {
		id, err := s.spawnOne(e)
		if err != nil {
			return ids, eris.Wrapf(err, "spawn %q copy %d", e.Name, i)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SpawnTable spawns every entry in order and returns the number of entities
// created.
func (s *Spawner) SpawnTable(t *data.SpawnTable) (int, error) {
	total := 0
	for _, e := range t.Entries() {
		ids, err := s.Spawn(e)
		total += len(ids)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (s *Spawner) spawnOne(e data.SpawnEntry) (ecs.EntityID, error) {
	id := s.world.CreateEntity()
	if err := s.fill(id, e); err != nil {
		return id, err
	}
	s.log.Debug("entity spawned", zap.Uint64("entity", uint64(id)), zap.String("name", e.Name))
	return id, nil
}

// fill binds e's components to id. On failure every component id holds is
// released to its pool so the entity is not left half-built.
func (s *Spawner) fill(id ecs.EntityID, e data.SpawnEntry) error {
	if err := s.populate(id, e); err != nil {
		s.world.ReleaseEntity(id)
		s.log.Debug("spawn unwound", zap.Uint64("entity", uint64(id)), zap.Error(err))
		return err
	}
	return nil
}

// populate binds the entry's components to id, stopping at the first error.
func (s *Spawner) populate(id ecs.EntityID, e data.SpawnEntry) error {
	w := s.world
	pos := ecs.Acquire[component.Position](w)
	pos.X, pos.Y = e.X, e.Y
	if err := ecs.TryBind(w, id, pos); err != nil {
		return err
	}

	if e.DX != 0 || e.DY != 0 {
		vel := ecs.Acquire[component.Velocity](w)
		vel.DX, vel.DY = e.DX, e.DY
		if err := ecs.TryBind(w, id, vel); err != nil {
			return err
		}
	}
	if e.TTL > 0 {
		lt := ecs.Acquire[component.Lifetime](w)
		lt.TTL = e.TTL
		if err := ecs.TryBind(w, id, lt); err != nil {
			return err
		}
	}
	if e.HP > 0 {
		hp := ecs.Acquire[component.Health](w)
		hp.HP, hp.Max = e.HP, e.HP
		if err := ecs.TryBind(w, id, hp); err != nil {
			return err
		}
	}
	if e.Name != "" {
		lbl := ecs.Acquire[component.Label](w)
		lbl.Name = e.Name
		if err := ecs.TryBind(w, id, lbl); err != nil {
			return err
		}
	}
	return nil
}
