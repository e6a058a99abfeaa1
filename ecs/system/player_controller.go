package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
	"github.com/milk9111/divechase/logging"
)

// PlayerControllerSystem drives every player's movement state machine.
type PlayerControllerSystem struct {
	log *zap.Logger
}

func NewPlayerControllerSystem(log *zap.Logger) *PlayerControllerSystem {
	return &PlayerControllerSystem{log: logging.OrNop(log).Named("player")}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	clock, ok := ecs.Singleton(w, component.ClockComponent)
	if !ok {
		return
	}
	bounds, hasBounds := ecs.Singleton(w, component.LevelBoundsComponent)

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.PlayerMotionComponent.Kind(),
		component.TransformComponent.Kind(),
		component.InputComponent.Kind(),
	)
	for _, e := range entities {
		tuning, _ := ecs.Get(w, e, component.PlayerComponent)
		motion, _ := ecs.Get(w, e, component.PlayerMotionComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		input, _ := ecs.Get(w, e, component.InputComponent)

		ctx := &playerContext{
			entity:    e,
			tuning:    tuning,
			motion:    motion,
			transform: transform,
			input:     input,
			clock:     *clock,
		}
		if hasBounds {
			ctx.bounds = &bounds.Bounds
		}
		ctx.changeState = func(to component.PlayerState) {
			p.changeState(w, ctx, to)
		}

		if interrupt, ok := ecs.Get(w, e, component.PlayerStateInterruptComponent); ok {
			ctx.changeState(interrupt.State)
			ecs.Remove(w, e, component.PlayerStateInterruptComponent)
		}

		p.step(ctx)
	}
}

// step runs one frame for a single player. The heading update runs in every
// state; only the positional update is dispatched on state.
func (p *PlayerControllerSystem) step(ctx *playerContext) {
	checkForDive(ctx)
	updateDirectionAndSpeed(ctx)
	facePointer(ctx)

	if state, ok := playerStates[ctx.motion.State]; ok {
		state.Update(ctx)
	}

	if ctx.bounds != nil {
		ctx.transform.Position = ctx.bounds.Clamp(ctx.transform.Position)
	}
	ctx.transform.Rotation = ctx.motion.Heading
}

func (p *PlayerControllerSystem) changeState(w *ecs.World, ctx *playerContext, to component.PlayerState) {
	from := ctx.motion.State
	ctx.motion.State = to
	if state, ok := playerStates[to]; ok {
		state.Enter(ctx)
	}
	p.log.Debug("state change",
		zap.Stringer("entity", ctx.entity),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Float64("now", ctx.clock.Now),
	)
	w.Events().Push(ecs.Event{
		Kind:   ecs.EventStateChanged,
		Entity: ctx.entity,
		From:   from.String(),
		To:     to.String(),
	})
}

// checkForDive starts a dive while the action is held, unless a dive or its
// recovery is already running.
func checkForDive(ctx *playerContext) {
	if ctx.input == nil || !ctx.input.Dive {
		return
	}
	switch ctx.motion.State {
	case component.PlayerDiving, component.PlayerRecovering:
		return
	}
	ctx.changeState(component.PlayerDiving)
}

// updateDirectionAndSpeed records the speed the pointer distance asks for.
// Movement does not consume TargetSpeed.
func updateDirectionAndSpeed(ctx *playerContext) {
	offset := ctx.transform.Position.Sub(ctx.input.Pointer)
	ctx.motion.TargetAngle = offset.Angle()

	magnitude := 0.0
	if ctx.bounds != nil {
		if diag := ctx.bounds.Diagonal(); diag > 0 {
			magnitude = offset.Len() / diag
		}
	}

	switch {
	case magnitude > ctx.tuning.MagnitudeFast:
		ctx.motion.TargetSpeed = ctx.tuning.MaxSpeed
	case magnitude > ctx.tuning.MagnitudeSlow:
		ctx.motion.TargetSpeed = ctx.tuning.SlowSpeed
	default:
		ctx.motion.TargetSpeed = 0
	}
}

// facePointer turns the heading so the player's back faces the pointer.
func facePointer(ctx *playerContext) {
	dir := ctx.input.Pointer.Sub(ctx.transform.Position).Normalized()
	target := ctx.motion.Heading
	if !dir.IsZero() {
		target = dir.Angle() + 180
	}
	t := ctx.tuning.FastRotateSpeed * 10 * ctx.clock.Dt
	ctx.motion.Heading = common.LerpAngle(ctx.motion.Heading, target, t)
}

// IsDiving reports whether player is mid-dive. Missing or dead entities are
// never diving.
func IsDiving(w *ecs.World, player ecs.Entity) bool {
	motion, ok := ecs.Get(w, player, component.PlayerMotionComponent)
	return ok && motion.State == component.PlayerDiving
}
