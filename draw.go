package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
	"github.com/milk9111/divechase/ecs/render"
)

const headingLength = 0.8

func drawWorld(screen *ebiten.Image, w *ecs.World, cam render.Camera) {
	if bounds, ok := ecs.Singleton(w, component.LevelBoundsComponent); ok {
		x0, y0 := cam.ToScreen(common.V(bounds.Min.X, bounds.Max.Y))
		x1, y1 := cam.ToScreen(common.V(bounds.Max.X, bounds.Min.Y))
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 2, colornames.Lightgrey, false)
	}

	for _, e := range w.Query(component.TargetTagComponent.Kind(), component.TargetMotionComponent.Kind(), component.TransformComponent.Kind()) {
		motion, _ := ecs.Get(w, e, component.TargetMotionComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		drawActor(screen, cam, w, e, transform, render.TargetColor(motion.State))
	}

	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.PlayerMotionComponent.Kind(), component.TransformComponent.Kind()) {
		motion, _ := ecs.Get(w, e, component.PlayerMotionComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		drawActor(screen, cam, w, e, transform, render.PlayerColor(motion.State))

		// heading marker along the local right axis
		x0, y0 := cam.ToScreen(transform.Position)
		x1, y1 := cam.ToScreen(transform.Position.Add(common.Heading(transform.Rotation).Scale(headingLength)))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, colornames.Yellow, true)
	}
}

func drawActor(screen *ebiten.Image, cam render.Camera, w *ecs.World, e ecs.Entity, transform *component.Transform, clr color.Color) {
	radius := 0.5
	if collider, ok := ecs.Get(w, e, component.ColliderComponent); ok && collider.Radius > 0 {
		radius = collider.Radius
	}
	x, y := cam.ToScreen(transform.Position)
	vector.FillCircle(screen, float32(x), float32(y), float32(cam.Length(radius)), clr, true)
}
