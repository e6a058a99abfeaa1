package entity

import (
	"fmt"

	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
	"github.com/milk9111/divechase/prefabs"
)

// NewTarget spawns an idle target that flees from player.
func NewTarget(w *ecs.World, spec prefabs.TargetSpec, player ecs.Entity, at common.Vec2) (ecs.Entity, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	if w == nil || !w.IsAlive(player) {
		return 0, fmt.Errorf("target: player %v: %w", player, ecs.ErrEntityNotAlive)
	}
	tuning := TargetTuning(spec)
	e, err := spawn(w,
		with(component.TargetTagComponent, &component.TargetTag{}),
		with(component.TargetComponent, &tuning),
		with(component.TargetMotionComponent, &component.TargetMotion{State: component.TargetIdle}),
		with(component.TransformComponent, &component.Transform{Position: at}),
		with(component.PursuesComponent, &component.Pursues{Player: player}),
		with(component.OverlapComponent, &component.Overlap{}),
		with(component.ColliderComponent, &component.Collider{Radius: spec.Collider.Radius}),
	)
	if err != nil {
		return 0, fmt.Errorf("target: %w", err)
	}
	return e, nil
}

func TargetTuning(spec prefabs.TargetSpec) component.Target {
	return component.Target{
		HopTime:         spec.HopTime,
		HopSpeed:        spec.HopSpeed,
		ScaredDistance:  spec.ScaredDistance,
		MaxMoveAttempts: spec.MaxMoveAttempts,
		HopStartDelay:   spec.HopStartDelay,
		HopDistance:     spec.HopDistance,
		CaughtOffset:    spec.CaughtOffset,
	}
}

// ApplyTargetSpec replaces the tunables of every target. Runtime state is
// left alone; caught targets move to the new caught offset on their next
// controller update.
func ApplyTargetSpec(w *ecs.World, spec prefabs.TargetSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	for _, e := range w.Query(component.TargetTagComponent.Kind(), component.TargetComponent.Kind()) {
		tuning, _ := ecs.Get(w, e, component.TargetComponent)
		*tuning = TargetTuning(spec)
		if collider, ok := ecs.Get(w, e, component.ColliderComponent); ok {
			collider.Radius = spec.Collider.Radius
		}
	}
	return nil
}
