package component

import (
	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
)

// Player holds the player's tunables.
type Player struct {
	MaxSpeed         float64
	SlowSpeed        float64
	IncSpeed         float64
	MagnitudeFast    float64
	MagnitudeSlow    float64
	FastRotateSpeed  float64
	FastRotateMax    float64
	DiveTime         float64
	DiveRecoveryTime float64
	DiveDistance     float64
}

// DefaultPlayer returns the stock tuning.
func DefaultPlayer() Player {
	const maxSpeed = 0.10
	return Player{
		MaxSpeed:         maxSpeed,
		SlowSpeed:        maxSpeed * 0.66,
		IncSpeed:         0.0025,
		MagnitudeFast:    0.6,
		MagnitudeSlow:    0.06,
		FastRotateSpeed:  0.2,
		FastRotateMax:    10,
		DiveTime:         0.3,
		DiveRecoveryTime: 0.5,
		DiveDistance:     3,
	}
}

var PlayerComponent = ecs.NewComponent[Player]()

// PlayerMotion is the player controller's runtime state.
type PlayerMotion struct {
	State   PlayerState
	Heading float64

	Speed       float64
	TargetSpeed float64
	TargetAngle float64

	DiveStartPos  common.Vec2
	DiveEndPos    common.Vec2
	DiveStartTime float64
}

var PlayerMotionComponent = ecs.NewComponent[PlayerMotion]()
