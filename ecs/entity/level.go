package entity

import (
	"fmt"

	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
	"github.com/milk9111/divechase/prefabs"
)

// NewLevel spawns the level entity holding the frame clock and the bounds.
func NewLevel(w *ecs.World, spec prefabs.LevelSpec) (ecs.Entity, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	e, err := spawn(w,
		with(component.LevelTagComponent, &component.LevelTag{}),
		with(component.ClockComponent, &component.Clock{}),
		with(component.LevelBoundsComponent, &component.LevelBounds{Bounds: spec.Bounds}),
	)
	if err != nil {
		return 0, fmt.Errorf("level: %w", err)
	}
	return e, nil
}

// ApplyLevelSpec replaces the level bounds. Spawn positions only matter
// when a scene is built.
func ApplyLevelSpec(w *ecs.World, spec prefabs.LevelSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	bounds, ok := ecs.Singleton(w, component.LevelBoundsComponent)
	if !ok {
		return fmt.Errorf("level: no level bounds in world")
	}
	bounds.Bounds = spec.Bounds
	return nil
}
