package component

import (
	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
)

// Attachment pins an entity to a parent's frame. The child's world position
// is the parent's position plus Offset rotated by the parent's rotation.
type Attachment struct {
	Parent ecs.Entity
	Offset common.Vec2
}

var AttachmentComponent = ecs.NewComponent[Attachment]()
