package ecs

import "go.uber.org/zap"

// World tracks entities and the components bound to them, and recycles
// released components through per-type pools.
//
// A World is not safe for concurrent use. Callers that share one across
// goroutines must serialize every call, including reads.
type World struct {
	entities     entityCounter
	registry     *Registry
	releaseQueue []EntityID
	log          *zap.Logger
}

type Option func(*World)

// WithLogger sets the logger used for debug output on rejected binds and
// releases.
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

func NewWorld(opts ...Option) *World {
	w := &World{
		registry:     NewRegistry(),
		releaseQueue: make([]EntityID, 0, 64),
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *World) Registry() *Registry { return w.registry }

// CreateEntity issues the next entity id. The first call returns 1.
func (w *World) CreateEntity() EntityID {
	return w.entities.next()
}

// HighestEntity returns the last issued id, or NilEntity if none.
func (w *World) HighestEntity() EntityID { return w.entities.last }

// Alive reports whether id has been issued. Ids are never retired, so an
// entity stays alive after its components are released.
func (w *World) Alive(id EntityID) bool {
	return w.entities.known(id)
}

// ReleaseEntity releases every component bound to id, running cleanup hooks
// and pooling the instances. It returns false only when id was never issued;
// an entity with nothing bound still reports true.
func (w *World) ReleaseEntity(id EntityID) bool {
	if !w.entities.known(id) {
		return false
	}
	n := w.registry.ReleaseAll(id)
	if n > 0 {
		w.log.Debug("entity released",
			zap.Uint64("entity", uint64(id)),
			zap.Int("components", n),
		)
	}
	return true
}

// MarkForRelease queues id for ReleaseEntity at the next FlushReleaseQueue.
func (w *World) MarkForRelease(id EntityID) {
	w.releaseQueue = append(w.releaseQueue, id)
}

// FlushReleaseQueue releases all queued entities and returns how many of
// them were known ids.
func (w *World) FlushReleaseQueue() int {
	n := 0
	for _, id := range w.releaseQueue {
		if w.ReleaseEntity(id) {
			n++
		}
	}
	w.releaseQueue = w.releaseQueue[:0]
	return n
}

// Stats returns binding and pool sizes for each registered type.
func (w *World) Stats() []TypeStats {
	return w.registry.Stats()
}
