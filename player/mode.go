package player

// Mode is the movement mode of the player. Exactly one mode is active on every frame.
type Mode uint8

const (
	ModeGrounded Mode = iota
	ModeAirborne
	ModeSliding
	ModeWallRunning
)

func (m Mode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeAirborne:
		return "airborne"
	case ModeSliding:
		return "sliding"
	case ModeWallRunning:
		return "wall_running"
	default:
		return "unknown"
	}
}
