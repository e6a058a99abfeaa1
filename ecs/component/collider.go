package component

import "github.com/milk9111/divechase/ecs"

// Collider is a circular overlap area centered on the transform.
type Collider struct {
	Radius float64
}

var ColliderComponent = ecs.NewComponent[Collider]()

// Overlap is written by the overlap system each frame.
type Overlap struct {
	// Player is true while the entity's collider intersects the collider of
	// the player it pursues.
	Player bool
}

var OverlapComponent = ecs.NewComponent[Overlap]()
