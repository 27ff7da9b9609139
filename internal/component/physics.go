package component

// Position is a world-space location.
type Position struct {
	X float64
	Y float64
}

// Velocity is linear velocity in world units per second.
type Velocity struct {
	DX float64
	DY float64
}

// Collider is a circular collision boundary centered on Position.
type Collider struct {
	Radius float64
}

func (Position) Tag() Tag { return TagPosition }
func (Velocity) Tag() Tag { return TagVelocity }
func (Collider) Tag() Tag { return TagCollider }
