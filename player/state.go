package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/utils"
)

// State is the complete movement state of a player. The movement core owns it exclusively; other
// systems receive copies through the query methods on Player.
type State struct {
	Pos mgl32.Vec3
	Vel mgl32.Vec3

	Mode     Mode
	OnGround bool

	SlideCooldown   utils.Countdown
	DashCooldown    utils.Countdown
	GunDropCooldown utils.Countdown
	GrappleCooldown utils.Countdown
	JumpBuffer      utils.Countdown
	Coyote          utils.Countdown
	JumpSpeedBoost  utils.Countdown
	WallRunElapsed  utils.Stopwatch

	// WallNormal and WallSide are only set while wall running. WallSide is 1 for a wall on the right
	// and -1 for a wall on the left.
	WallNormal mgl32.Vec3
	WallSide   int8

	// SlideDirection and SlideSpeed are only valid while sliding.
	SlideDirection mgl32.Vec3
	SlideSpeed     float32

	CameraHeight float32
	CameraRoll   float32

	Grappling bool
	Anchor    mgl32.Vec3
}

func (s *State) clearWallRun() {
	s.WallNormal = mgl32.Vec3{}
	s.WallSide = 0
	s.WallRunElapsed.Reset()
}

func (s *State) clearSlide() {
	s.SlideDirection = mgl32.Vec3{}
	s.SlideSpeed = 0
}

// sanitize discards payloads left behind by modes that are not active.
func (s *State) sanitize() {
	if s.Mode != ModeWallRunning && (s.WallSide != 0 || s.WallNormal != (mgl32.Vec3{})) {
		s.clearWallRun()
	}
	if s.Mode != ModeSliding && (s.SlideSpeed != 0 || s.SlideDirection != (mgl32.Vec3{})) {
		s.clearSlide()
	}
}
