package component

// Lifetime counts down the ticks an entity has left. The entity is released
// when TTL reaches zero.
type Lifetime struct {
	TTL int
}

func (l *Lifetime) Release() { l.TTL = 0 }

// Health is a simple hit point pool.
type Health struct {
	HP  int
	Max int
}

func (h *Health) Release() {
	h.HP = 0
	h.Max = 0
}

// Label names an entity for logs and scripts.
type Label struct {
	Name string
}

func (l *Label) Release() { l.Name = "" }
