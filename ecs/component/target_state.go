package component

// TargetState is the target's flee state. TargetCaught is terminal.
type TargetState int

const (
	TargetIdle TargetState = iota
	TargetHopStart
	TargetHop
	TargetCaught
)

func (s TargetState) String() string {
	switch s {
	case TargetIdle:
		return "idle"
	case TargetHopStart:
		return "hop_start"
	case TargetHop:
		return "hop"
	case TargetCaught:
		return "caught"
	default:
		return "unknown"
	}
}
