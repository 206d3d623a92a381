package component

// Position is an entity's location on the simulation plane.
type Position struct {
	X, Y float64
}

// Velocity is applied to Position once per tick.
type Velocity struct {
	DX, DY float64
}
