package player

import "github.com/oomph-ac/parkour/game"

func (ctx *frameContext) updateCameraFeedback() {
	p := ctx.p
	s := &p.state

	if s.Mode == ModeSliding {
		s.CameraHeight = game.Lerp(s.CameraHeight, p.settings.Slide.CameraHeight, ctx.dt*game.SlideCameraEase)
	} else {
		s.CameraHeight = game.Lerp(s.CameraHeight, p.settings.Player.CameraHeight, ctx.dt*game.StandCameraEase)
	}

	if s.Mode == ModeWallRunning {
		target := p.settings.WallRun.CameraTilt * float32(s.WallSide)
		s.CameraRoll = game.Lerp(s.CameraRoll, target, ctx.dt*game.WallTiltEaseIn)
	} else {
		s.CameraRoll = game.Lerp(s.CameraRoll, 0, ctx.dt*game.WallTiltEaseOut)
	}
}
