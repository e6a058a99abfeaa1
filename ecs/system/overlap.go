package system

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
	"github.com/milk9111/divechase/logging"
)

// OverlapSystem reports which targets currently touch the player they pursue.
// Chipmunk is used only as a spatial index: bodies are kinematic with zero
// velocity and the space is stepped only to refresh the index.
type OverlapSystem struct {
	log    *zap.Logger
	space  *cp.Space
	bodies map[ecs.Entity]*overlapBody
}

type overlapBody struct {
	body   *cp.Body
	shape  *cp.Shape
	radius float64
}

func NewOverlapSystem(log *zap.Logger) *OverlapSystem {
	return &OverlapSystem{
		log:    logging.OrNop(log).Named("overlap"),
		space:  cp.NewSpace(),
		bodies: make(map[ecs.Entity]*overlapBody),
	}
}

func (o *OverlapSystem) Update(w *ecs.World) {
	if o == nil || w == nil {
		return
	}
	o.pruneBodies(w)
	o.syncBodies(w)
	// stepping refreshes the shape index; bodies have no velocity so
	// nothing moves
	o.space.Step(1)

	ecs.ForEach(w, component.OverlapComponent, func(e ecs.Entity, overlap *component.Overlap) {
		overlap.Player = false
		pursues, ok := ecs.Get(w, e, component.PursuesComponent)
		if !ok {
			return
		}
		info := o.bodies[e]
		if info == nil || o.bodies[pursues.Player] == nil {
			return
		}
		o.space.ShapeQuery(info.shape, func(shape *cp.Shape, _ *cp.ContactPointSet) {
			if other, ok := shape.UserData.(ecs.Entity); ok && other == pursues.Player {
				overlap.Player = true
			}
		})
	})
}

// pruneBodies drops bodies whose entity died or lost its collider.
func (o *OverlapSystem) pruneBodies(w *ecs.World) {
	for e, info := range o.bodies {
		if w.IsAlive(e) && ecs.Has(w, e, component.ColliderComponent) {
			continue
		}
		o.removeBody(e, info)
	}
}

func (o *OverlapSystem) syncBodies(w *ecs.World) {
	entities := w.Query(component.ColliderComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		collider, _ := ecs.Get(w, e, component.ColliderComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)

		info := o.bodies[e]
		if info != nil && info.radius != collider.Radius {
			o.removeBody(e, info)
			info = nil
		}
		if info == nil {
			if collider.Radius <= 0 {
				continue
			}
			info = o.addBody(e, collider.Radius)
		}

		info.body.SetPosition(cp.Vector{X: transform.Position.X, Y: transform.Position.Y})
	}
}

func (o *OverlapSystem) addBody(e ecs.Entity, radius float64) *overlapBody {
	body := o.space.AddBody(cp.NewKinematicBody())
	shape := o.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.UserData = e

	info := &overlapBody{body: body, shape: shape, radius: radius}
	o.bodies[e] = info
	o.log.Debug("collider added", zap.Stringer("entity", e), zap.Float64("radius", radius))
	return info
}

func (o *OverlapSystem) removeBody(e ecs.Entity, info *overlapBody) {
	o.space.RemoveShape(info.shape)
	o.space.RemoveBody(info.body)
	delete(o.bodies, e)
}
