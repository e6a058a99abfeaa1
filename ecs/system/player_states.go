package system

import (
	"github.com/milk9111/divechase/common"
	"github.com/milk9111/divechase/ecs"
	"github.com/milk9111/divechase/ecs/component"
)

// playerContext gives a state access to one player's data for a frame.
type playerContext struct {
	entity      ecs.Entity
	tuning      *component.Player
	motion      *component.PlayerMotion
	transform   *component.Transform
	input       *component.Input
	clock       component.Clock
	bounds      *common.Bounds
	changeState func(to component.PlayerState)
}

// timeEpsilon absorbs rounding in frame-accumulated clocks so a phase ends
// on the frame its duration elapses.
const timeEpsilon = 1e-9

type playerState interface {
	Enter(ctx *playerContext)
	Update(ctx *playerContext)
}

// One shared instance per state.
var playerStates = map[component.PlayerState]playerState{
	component.PlayerMoveSlow:   playerMoveState{fast: false},
	component.PlayerMoveFast:   playerMoveState{fast: true},
	component.PlayerDiving:     playerDiveState{},
	component.PlayerRecovering: playerRecoverState{},
}

type playerMoveState struct {
	fast bool
}

type playerDiveState struct{}

type playerRecoverState struct{}

func (playerMoveState) Enter(ctx *playerContext) {}
func (s playerMoveState) Update(ctx *playerContext) {
	speed := ctx.tuning.SlowSpeed
	if s.fast {
		speed = ctx.tuning.MaxSpeed
	}
	step := speed * 60 * ctx.clock.Dt
	ctx.transform.Position = common.MoveTowards(ctx.transform.Position, ctx.input.Pointer, step)
}

// Enter snapshots the dive. The dive runs backward along the current facing.
func (playerDiveState) Enter(ctx *playerContext) {
	ctx.motion.Speed = 0
	ctx.motion.DiveStartPos = ctx.transform.Position
	back := common.Heading(ctx.motion.Heading).Scale(ctx.tuning.DiveDistance)
	ctx.motion.DiveEndPos = ctx.motion.DiveStartPos.Sub(back)
	ctx.motion.DiveStartTime = ctx.clock.Now
}
func (playerDiveState) Update(ctx *playerContext) {
	progress := 1.0
	if ctx.tuning.DiveTime > 0 {
		progress = (ctx.clock.Now - ctx.motion.DiveStartTime) / ctx.tuning.DiveTime
	}
	ctx.transform.Position = common.LerpVec(ctx.motion.DiveStartPos, ctx.motion.DiveEndPos, progress)
	if progress >= 1-timeEpsilon {
		ctx.changeState(component.PlayerRecovering)
	}
}

// Enter reuses DiveStartTime as the recovery start.
func (playerRecoverState) Enter(ctx *playerContext) {
	ctx.motion.Speed = 0
	ctx.motion.DiveStartTime = ctx.clock.Now
}
func (playerRecoverState) Update(ctx *playerContext) {
	if ctx.clock.Now-ctx.motion.DiveStartTime >= ctx.tuning.DiveRecoveryTime-timeEpsilon {
		ctx.changeState(component.PlayerMoveSlow)
	}
}
