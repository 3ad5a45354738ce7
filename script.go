package parkour

import (
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player"
	"github.com/oomph-ac/parkour/session"
)

// Step is a single instruction of a Script: hold the input for a duration while looking in a direction.
// Pressed inputs are only sent on the first frame of the step.
type Step struct {
	Duration   float32
	Input      player.InputState
	Yaw, Pitch float32
}

// Script is an input source playing a fixed list of steps. It keeps its own camera, so weapon recoil
// moves the camera on top of the scripted angles.
type Script struct {
	steps []Step

	current int
	elapsed float32
	started bool

	kickPitch, kickYaw float32
}

// NewScript returns a script playing the steps passed in order.
func NewScript(steps ...Step) *Script {
	return &Script{steps: steps}
}

// NextFrame returns the input for the next dt seconds of the script.
func (s *Script) NextFrame(dt float32) (session.Frame, bool) {
	for s.current < len(s.steps) && s.elapsed >= s.steps[s.current].Duration {
		s.current++
		s.elapsed = 0
		s.started = false
	}
	if s.current >= len(s.steps) {
		return session.Frame{}, false
	}
	st := s.steps[s.current]

	in := st.Input
	if s.started {
		in.DashPressed = false
		in.GrapplePressed = false
		in.GrappleReleasePressed = false
		in.DropGunPressed = false
		in.FirePressed = false
	}
	s.started = true
	s.elapsed += dt

	pitch := game.ClampFloat(st.Pitch+s.kickPitch, -89, 89)
	return session.Frame{
		Delta:  dt,
		Input:  in,
		Camera: player.CameraFromAngles(st.Yaw+s.kickYaw, pitch),
	}, true
}

// Kick moves the camera of the script by the recoil of a shot.
func (s *Script) Kick(pitch, yaw float32) {
	s.kickPitch += pitch
	s.kickYaw += yaw
}

// Done returns true once every step was played.
func (s *Script) Done() bool {
	return s.current >= len(s.steps)
}

// CourseScript returns a script that runs the training course: it sprints towards the wall run
// section, jumps, slides, dashes and shoots at the target range.
func CourseScript() *Script {
	run := player.InputState{Forward: true, Sprint: true}
	with := func(f func(in *player.InputState)) player.InputState {
		in := run
		f(&in)
		return in
	}
	return NewScript(
		Step{Duration: 0.5, Yaw: 90},
		Step{Duration: 1, Input: run, Yaw: 90},
		Step{Duration: 0.1, Input: with(func(in *player.InputState) { in.Slide = true }), Yaw: 90},
		Step{Duration: 0.6, Input: run, Yaw: 90},
		Step{Duration: 0.2, Input: with(func(in *player.InputState) { in.Jump = true }), Yaw: 90},
		Step{Duration: 0.8, Input: run, Yaw: 90},
		Step{Duration: 0.1, Input: with(func(in *player.InputState) { in.DashPressed = true }), Yaw: 90},
		Step{Duration: 1.5, Input: run, Yaw: 90},
		Step{Duration: 0.5, Yaw: 90, Pitch: 5},
		Step{Duration: 0.2, Input: player.InputState{FirePressed: true}, Yaw: 90, Pitch: 5},
		Step{Duration: 0.2, Input: player.InputState{FirePressed: true}, Yaw: 95, Pitch: 8},
		Step{Duration: 0.2, Input: player.InputState{FirePressed: true}, Yaw: 85, Pitch: 3},
		Step{Duration: 0.2, Input: player.InputState{DropGunPressed: true}, Yaw: 90},
		Step{Duration: 1.2, Yaw: 90},
	)
}
