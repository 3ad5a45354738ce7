package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/event"
)

func (ctx *frameContext) attemptSlideStart() bool {
	p := ctx.p
	s := &p.state
	st := p.settings.Slide
	if !st.Enabled || s.Mode != ModeGrounded || !ctx.slidePressed || !p.sprinting || !s.SlideCooldown.Elapsed() {
		return false
	}

	s.Vel[0], s.Vel[2] = 0, 0
	s.SlideDirection = ctx.cam.HorizontalForward()
	s.SlideSpeed = st.StartVelocity
	s.SlideCooldown.Reset(st.Cooldown)
	p.setMode(ModeSliding)
	p.sprinting = false
	p.emit(&event.SlideStartEvent{Speed: s.SlideSpeed, Direction: s.SlideDirection})
	return true
}

// updateSlide ends the slide when the player jumps or leaves the ground. In both cases the slide
// momentum is carried over into the player's velocity.
func (ctx *frameContext) updateSlide() {
	p := ctx.p
	s := &p.state
	switch {
	case s.JumpBuffer.Active():
		p.endSlide("jump", ModeGrounded, true)
	case !s.OnGround:
		p.endSlide("airborne", ModeAirborne, true)
	}
}

// simulateSlide moves a sliding player along the slide direction, steering it downhill on slopes.
func (ctx *frameContext) simulateSlide() {
	p := ctx.p
	s := &p.state
	st := p.settings.Slide

	center := s.Pos.Add(game.CenterOffset)
	if hit := p.probe(center, down, game.SlideGroundProbe+game.CollisionBuffer); hit.Hit {
		n := hit.Normal
		if downhill, ok := game.SafeNormalize(mgl32.Vec3{-n.X(), 0, -n.Z()}); ok {
			if dir, ok := game.SafeNormalize(game.LerpVec3(s.SlideDirection, downhill, ctx.dt*game.SlideTurnRate)); ok {
				s.SlideDirection = dir
			}
		}
		s.SlideSpeed += st.GravityForce * (1 - n.Y()) * ctx.dt
	}

	step := s.SlideDirection.Mul(s.SlideSpeed * ctx.dt)
	if length := step.Len(); length > 0 {
		if hit := p.probeBody(s.SlideDirection, length+game.SlideProbeMargin); hit.Hit {
			s.SlideSpeed = 0
			p.endSlide("blocked", ModeGrounded, false)
			return
		}
		s.Pos = s.Pos.Add(step)
	}

	s.SlideSpeed = math32.Max(s.SlideSpeed-st.Friction*ctx.dt, 0)
	if s.SlideSpeed == 0 {
		p.endSlide("stopped", ModeGrounded, false)
	}
}

func (p *Player) endSlide(reason string, next Mode, carryMomentum bool) {
	s := &p.state
	speed := s.SlideSpeed
	if carryMomentum {
		p.setHorizontal(s.SlideDirection.Mul(speed))
	}
	s.clearSlide()
	p.setMode(next)
	p.emit(&event.SlideEndEvent{Reason: reason, Speed: speed})
}
