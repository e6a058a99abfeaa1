package component

import (
	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
)

// Transform is an entity's world-space placement. Rotation is in degrees.
type Transform struct {
	Position common.Vec2
	Rotation float64
}

var TransformComponent = ecs.NewComponent[Transform]()
