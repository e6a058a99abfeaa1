package system

import (
	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
)

// AttachmentSystem places attached entities in their parent's frame. It runs
// last so children observe the parent's final position for the frame.
type AttachmentSystem struct{}

func NewAttachmentSystem() *AttachmentSystem {
	return &AttachmentSystem{}
}

func (a *AttachmentSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.AttachmentComponent, func(e ecs.Entity, att *component.Attachment) {
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		// a dead parent leaves the child where it was last placed
		parent, ok := ecs.Get(w, att.Parent, component.TransformComponent)
		if !ok {
			return
		}
		resolveAttachment(att, transform, parent)
	})
}

func resolveAttachment(att *component.Attachment, transform, parent *component.Transform) {
	transform.Position = parent.Position.Add(att.Offset.Rotate(parent.Rotation))
	transform.Rotation = parent.Rotation
}
