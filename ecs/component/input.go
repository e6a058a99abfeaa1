package component

import (
	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
)

// Input stores per-frame input state for an entity.
type Input struct {
	Pointer common.Vec2
	Dive    bool
}

var InputComponent = ecs.NewComponent[Input]()
