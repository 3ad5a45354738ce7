package player

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/event"
)

// attemptJump executes a buffered jump if the player is on the ground or still within coyote time.
func (ctx *frameContext) attemptJump() bool {
	p := ctx.p
	s := &p.state
	if !s.JumpBuffer.Active() {
		return false
	}
	grounded := s.Mode == ModeGrounded
	if !grounded && !s.Coyote.Active() {
		return false
	}

	velocity := p.jumpVelocity()
	s.Vel[1] = velocity
	p.setMode(ModeAirborne)
	s.OnGround = false
	p.ConsumeJump()
	p.jumpCutAvailable = true

	boosted := ctx.attemptJumpBoost()
	p.emit(&event.JumpEvent{Velocity: velocity, Coyote: !grounded, Boosted: boosted})
	return true
}

func (p *Player) jumpVelocity() float32 {
	return math32.Sqrt(2 * game.BaseGravity * p.settings.Player.Gravity * p.settings.Player.JumpHeight)
}

// ConsumeJump discards the buffered jump and any remaining coyote time.
func (p *Player) ConsumeJump() {
	p.state.JumpBuffer.Clear()
	p.state.Coyote.Clear()
}

// attemptJumpBoost starts the jump speed boost. When preserving speed the boost is added on top of
// the current velocity, otherwise the horizontal speed is raised to the boosted max speed and a boost
// that is still running is not restarted.
func (ctx *frameContext) attemptJumpBoost() bool {
	p := ctx.p
	s := &p.state
	st := p.settings.Jump
	if st.SpeedBoost <= 1 || st.BoostDuration <= 0 {
		return false
	}
	if !st.PreserveSpeed && s.JumpSpeedBoost.Active() {
		return false
	}
	s.JumpSpeedBoost.Reset(st.BoostDuration)

	dir := ctx.cam.HorizontalForward()
	if st.Directional {
		if ctx.hasWish {
			dir = ctx.wish
		}
	} else if v, ok := game.SafeNormalize(game.Horizontal(s.Vel)); ok {
		dir = v
	}

	maxSpeed := p.settings.Movement.MaxSpeed
	if st.PreserveSpeed {
		p.setHorizontal(game.Horizontal(s.Vel).Add(dir.Mul(maxSpeed * (st.SpeedBoost - 1))))
		return true
	}
	if target := maxSpeed * st.SpeedBoost; game.HorizontalSpeed(s.Vel) < target {
		p.setHorizontal(dir.Mul(target))
	}
	return true
}

// attemptJumpCut shortens the jump once if the jump key is released while still rising.
func (ctx *frameContext) attemptJumpCut() {
	p := ctx.p
	s := &p.state
	if !p.settings.Jump.CutEnabled || !p.jumpCutAvailable || ctx.in.Jump || s.Vel.Y() <= 0 {
		return
	}
	s.Vel[1] *= p.settings.Jump.CutMultiplier
	p.jumpCutAvailable = false
	p.notify("jump cut (vel.y=%.4f)", s.Vel.Y())
}
