package main

import (
	"errors"
	"math"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
	"github.com/milk9111/divechase/ecs/entity"
	"github.com/milk9111/divechase/ecs/system"
	"github.com/milk9111/divechase/prefabs"
)

// diveAlignment is how far, in degrees, the player's back may point away
// from the bot's quarry before the bot dives.
const diveAlignment = 20

type simConfig struct {
	Frames int
	Dt     float64
	Rng    *rand.Rand
	// Observe, when set, is called after every frame.
	Observe func(frame int, w *ecs.World, scene *entity.Scene)
}

type simResult struct {
	Frames  int
	Seconds float64
	Caught  int
	Targets int
	Dives   int
}

func run(log *zap.Logger, specs prefabs.SceneSpec, cfg simConfig) (simResult, error) {
	if cfg.Frames <= 0 || cfg.Dt <= 0 {
		return simResult{}, errors.New("chasesim: frames and dt must be positive")
	}

	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, specs)
	if err != nil {
		return simResult{}, err
	}
	scheduler := ecs.NewScheduler(
		system.NewPlayerControllerSystem(log),
		system.NewOverlapSystem(log),
		system.NewTargetControllerSystem(log, cfg.Rng),
		system.NewAttachmentSystem(),
	)
	clock, _ := ecs.Singleton(w, component.ClockComponent)

	res := simResult{Targets: len(scene.Targets)}
	for res.Frames < cfg.Frames && res.Caught < res.Targets {
		steer(w, scene)
		clock.Advance(cfg.Dt)
		scheduler.Update(w)
		res.Frames++

		for _, ev := range w.Events().Drain() {
			switch {
			case ev.Kind == ecs.EventCaptured:
				res.Caught++
			case ev.Kind == ecs.EventStateChanged && ev.Entity == scene.Player && ev.To == component.PlayerDiving.String():
				res.Dives++
			}
		}
		if cfg.Observe != nil {
			cfg.Observe(res.Frames, w, scene)
		}
	}
	res.Seconds = clock.Now
	return res, nil
}

// steer points at the nearest free target and dives once the player's back
// faces it from within dive range.
func steer(w *ecs.World, scene *entity.Scene) {
	input, ok := ecs.Get(w, scene.Player, component.InputComponent)
	if !ok {
		return
	}
	player, _ := ecs.Get(w, scene.Player, component.TransformComponent)
	motion, _ := ecs.Get(w, scene.Player, component.PlayerMotionComponent)
	tuning, _ := ecs.Get(w, scene.Player, component.PlayerComponent)

	quarry, found := nearestFreeTarget(w, scene, player.Position)
	input.Dive = false
	if !found {
		input.Pointer = player.Position
		return
	}
	input.Pointer = quarry

	offset := quarry.Sub(player.Position)
	if offset.Len() > tuning.DiveDistance {
		return
	}
	back := motion.Heading + 180
	if math.Abs(common.LerpAngle(back, offset.Angle(), 1)-back) <= diveAlignment {
		input.Dive = true
	}
}

func nearestFreeTarget(w *ecs.World, scene *entity.Scene, from common.Vec2) (common.Vec2, bool) {
	best, found := common.Vec2{}, false
	bestDist := math.Inf(1)
	for _, e := range scene.Targets {
		motion, ok := ecs.Get(w, e, component.TargetMotionComponent)
		if !ok || motion.State == component.TargetCaught {
			continue
		}
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		if d := transform.Position.Dist(from); d < bestDist {
			best, bestDist, found = transform.Position, d, true
		}
	}
	return best, found
}
