package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
	"github.com/milk9111/divechase/ecs/render"
)

// InputSystem copies the cursor, projected into the world, and the held
// left mouse button into every Input component.
type InputSystem struct {
	camera *render.Camera
}

func NewInputSystem(camera *render.Camera) *InputSystem {
	return &InputSystem{camera: camera}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	x, y := ebiten.CursorPosition()
	pointer := i.camera.ToWorld(float64(x), float64(y))
	dive := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		input.Pointer = pointer
		input.Dive = dive
	})
}
