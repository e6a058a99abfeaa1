package component

import "github.com/milk9111/divechase/ecs"

// PlayerState is the player's movement state.
type PlayerState int

const (
	PlayerMoveSlow PlayerState = iota
	// PlayerMoveFast is never entered by the controller itself; it is only
	// reachable through a PlayerStateInterrupt.
	PlayerMoveFast
	PlayerDiving
	PlayerRecovering
)

func (s PlayerState) String() string {
	switch s {
	case PlayerMoveSlow:
		return "move_slow"
	case PlayerMoveFast:
		return "move_fast"
	case PlayerDiving:
		return "diving"
	case PlayerRecovering:
		return "recovering"
	default:
		return "unknown"
	}
}

// PlayerStateInterrupt is a one-shot request to force the player controller
// into State at the start of its next update. The controller removes it once
// consumed.
type PlayerStateInterrupt struct {
	State PlayerState
}

var PlayerStateInterruptComponent = ecs.NewComponent[PlayerStateInterrupt]()
