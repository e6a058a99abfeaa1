package system

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
	"github.com/milk9111/divechase/logging"
)

// TargetControllerSystem drives each target's flee state machine. It must
// run after the player controller and the overlap system in the same frame.
type TargetControllerSystem struct {
	log *zap.Logger
	rng *rand.Rand
}

// NewTargetControllerSystem creates the system. rng supplies the hop jitter;
// a nil rng is seeded randomly.
func NewTargetControllerSystem(log *zap.Logger, rng *rand.Rand) *TargetControllerSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &TargetControllerSystem{
		log: logging.OrNop(log).Named("target"),
		rng: rng,
	}
}

func (s *TargetControllerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	clock, ok := ecs.Singleton(w, component.ClockComponent)
	if !ok {
		return
	}
	bounds, hasBounds := ecs.Singleton(w, component.LevelBoundsComponent)

	entities := w.Query(
		component.TargetTagComponent.Kind(),
		component.TargetComponent.Kind(),
		component.TargetMotionComponent.Kind(),
		component.TransformComponent.Kind(),
		component.PursuesComponent.Kind(),
	)
	for _, e := range entities {
		tuning, _ := ecs.Get(w, e, component.TargetComponent)
		motion, _ := ecs.Get(w, e, component.TargetMotionComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		pursues, _ := ecs.Get(w, e, component.PursuesComponent)

		playerTransform, ok := ecs.Get(w, pursues.Player, component.TransformComponent)
		if !ok {
			continue
		}

		if motion.State != component.TargetCaught {
			if overlap, ok := ecs.Get(w, e, component.OverlapComponent); ok && overlap.Player && IsDiving(w, pursues.Player) {
				s.capture(w, e, pursues.Player, tuning, motion, transform, playerTransform)
			}
		}

		s.step(w, e, clock, tuning, motion, transform, pursues.Player, playerTransform)

		if hasBounds {
			transform.Position = bounds.Clamp(transform.Position)
		}
	}
}

func (s *TargetControllerSystem) step(
	w *ecs.World,
	e ecs.Entity,
	clock *component.Clock,
	tuning *component.Target,
	motion *component.TargetMotion,
	transform *component.Transform,
	player ecs.Entity,
	playerTransform *component.Transform,
) {
	switch motion.State {
	case component.TargetIdle:
		if transform.Position.Dist(playerTransform.Position) <= tuning.ScaredDistance {
			s.changeState(w, e, motion, component.TargetHopStart, clock.Now)
			motion.HopStart = clock.Now
			motion.HopStartPos = transform.Position
		}
	case component.TargetHopStart:
		if clock.Now-motion.HopStart >= tuning.HopStartDelay {
			s.changeState(w, e, motion, component.TargetHop, clock.Now)
		}
	case component.TargetHop:
		away := transform.Position.Sub(playerTransform.Position).Normalized()
		jitter := common.V(s.rng.Float64()*2-1, s.rng.Float64()*2-1).Normalized()
		dir := away.Add(jitter).Normalized()
		transform.Position = transform.Position.Add(dir.Scale(tuning.HopSpeed * clock.Dt))

		if transform.Position.Dist(motion.HopStartPos) >= tuning.HopDistance {
			motion.HopEndPos = transform.Position
			s.changeState(w, e, motion, component.TargetIdle, clock.Now)
		}
	case component.TargetCaught:
		attachTo(w, e, player, tuning.CaughtOffset, transform, playerTransform)
	}
}

func (s *TargetControllerSystem) capture(
	w *ecs.World,
	e, player ecs.Entity,
	tuning *component.Target,
	motion *component.TargetMotion,
	transform, playerTransform *component.Transform,
) {
	from := motion.State
	motion.State = component.TargetCaught
	attachTo(w, e, player, tuning.CaughtOffset, transform, playerTransform)

	s.log.Info("target caught",
		zap.Stringer("entity", e),
		zap.Stringer("player", player),
		zap.Stringer("from", from),
	)
	w.Events().Push(ecs.Event{
		Kind:   ecs.EventCaptured,
		Entity: e,
		Other:  player,
		From:   from.String(),
		To:     component.TargetCaught.String(),
	})
}

func (s *TargetControllerSystem) changeState(w *ecs.World, e ecs.Entity, motion *component.TargetMotion, to component.TargetState, now float64) {
	from := motion.State
	motion.State = to
	s.log.Debug("state change",
		zap.Stringer("entity", e),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Float64("now", now),
	)
	w.Events().Push(ecs.Event{
		Kind:   ecs.EventStateChanged,
		Entity: e,
		From:   from.String(),
		To:     to.String(),
	})
}

// attachTo (re)pins e to parent at offset and snaps it there. Safe to call
// every frame.
func attachTo(w *ecs.World, e, parent ecs.Entity, offset common.Vec2, transform, parentTransform *component.Transform) {
	att, ok := ecs.Get(w, e, component.AttachmentComponent)
	if !ok {
		att = &component.Attachment{}
		_ = ecs.Add(w, e, component.AttachmentComponent, att)
	}
	att.Parent = parent
	att.Offset = offset
	resolveAttachment(att, transform, parentTransform)
}
