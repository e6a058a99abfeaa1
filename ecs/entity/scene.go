package entity

import (
	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/prefabs"
)

type Scene struct {
	Level   ecs.Entity
	Player  ecs.Entity
	Targets []ecs.Entity
}

// BuildScene spawns the level, one player and a target per level spawn
// point. Every spec is validated before anything is created.
func BuildScene(w *ecs.World, specs prefabs.SceneSpec) (*Scene, error) {
	if err := specs.Validate(); err != nil {
		return nil, err
	}

	level, err := NewLevel(w, specs.Level)
	if err != nil {
		return nil, err
	}
	player, err := NewPlayer(w, specs.Player, specs.Level.PlayerSpawn)
	if err != nil {
		return nil, err
	}

	scene := &Scene{Level: level, Player: player}
	for _, at := range specs.Level.Targets {
		target, err := NewTarget(w, specs.Target, player, at)
		if err != nil {
			return nil, err
		}
		scene.Targets = append(scene.Targets, target)
	}
	return scene, nil
}
