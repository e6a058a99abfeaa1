package component

import (
	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
)

// LevelBounds stores the world-space rectangle every actor is kept inside.
type LevelBounds struct {
	common.Bounds
}

var LevelBoundsComponent = ecs.NewComponent[LevelBounds]()
