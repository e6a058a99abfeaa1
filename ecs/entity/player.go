package entity

import (
	"fmt"

	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
	"github.com/milk9111/divechase/prefabs"
)

// NewPlayer spawns a player at the given position, facing right and moving
// slowly.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, at common.Vec2) (ecs.Entity, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	tuning := PlayerTuning(spec)
	e, err := spawn(w,
		with(component.PlayerTagComponent, &component.PlayerTag{}),
		with(component.PlayerComponent, &tuning),
		with(component.PlayerMotionComponent, &component.PlayerMotion{State: component.PlayerMoveSlow}),
		with(component.TransformComponent, &component.Transform{Position: at}),
		with(component.InputComponent, &component.Input{Pointer: at}),
		with(component.ColliderComponent, &component.Collider{Radius: spec.Collider.Radius}),
	)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}

func PlayerTuning(spec prefabs.PlayerSpec) component.Player {
	return component.Player{
		MaxSpeed:         spec.MaxSpeed,
		SlowSpeed:        spec.SlowSpeed,
		IncSpeed:         spec.IncSpeed,
		MagnitudeFast:    spec.MagnitudeFast,
		MagnitudeSlow:    spec.MagnitudeSlow,
		FastRotateSpeed:  spec.FastRotateSpeed,
		FastRotateMax:    spec.FastRotateMax,
		DiveTime:         spec.DiveTime,
		DiveRecoveryTime: spec.DiveRecoveryTime,
		DiveDistance:     spec.DiveDistance,
	}
}

// ApplyPlayerSpec replaces the tunables of every player. Runtime state is
// left alone.
func ApplyPlayerSpec(w *ecs.World, spec prefabs.PlayerSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.PlayerComponent.Kind()) {
		tuning, _ := ecs.Get(w, e, component.PlayerComponent)
		*tuning = PlayerTuning(spec)
		if collider, ok := ecs.Get(w, e, component.ColliderComponent); ok {
			collider.Radius = spec.Collider.Radius
		}
	}
	return nil
}
