package component

import (
	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
)

// Target holds a target's tunables. HopTime and MaxMoveAttempts are carried
// for prefab compatibility; the controller does not read them.
type Target struct {
	HopTime         float64
	HopSpeed        float64
	ScaredDistance  float64
	MaxMoveAttempts int
	HopStartDelay   float64
	HopDistance     float64
	CaughtOffset    common.Vec2
}

func DefaultTarget() Target {
	return Target{
		HopTime:         0.2,
		HopSpeed:        6.5,
		ScaredDistance:  3,
		MaxMoveAttempts: 50,
		HopStartDelay:   0.1,
		HopDistance:     1.5,
		CaughtOffset:    common.V(0, -0.5),
	}
}

var TargetComponent = ecs.NewComponent[Target]()

// TargetMotion is the target controller's runtime state.
type TargetMotion struct {
	State       TargetState
	HopStart    float64
	HopStartPos common.Vec2
	HopEndPos   common.Vec2
}

var TargetMotionComponent = ecs.NewComponent[TargetMotion]()

// Pursues links a target to the player it reacts to. The handle is not
// owning; the player may die first.
type Pursues struct {
	Player ecs.Entity
}

var PursuesComponent = ecs.NewComponent[Pursues]()
