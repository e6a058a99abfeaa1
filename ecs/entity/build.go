package entity

import (
	"github.com/milk9111/divechase/ecs"
)

type componentAdder func(w *ecs.World, e ecs.Entity) error

func with[T any](handle ecs.ComponentHandle[T], value *T) componentAdder {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, handle, value)
	}
}

// spawn creates an entity carrying every component, or none of them.
func spawn(w *ecs.World, adders ...componentAdder) (ecs.Entity, error) {
	if w == nil {
		return 0, ecs.ErrEntityNotAlive
	}
	e := w.CreateEntity()
	for _, add := range adders {
		if err := add(w, e); err != nil {
			w.DestroyEntity(e)
			return 0, err
		}
	}
	return e, nil
}
