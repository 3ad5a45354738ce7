package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

func (ctx *frameContext) simulateLocomotion() {
	p := ctx.p
	s := &p.state
	st := p.settings

	p.correctPosition()

	grounded := s.Mode == ModeGrounded
	if ctx.hasWish {
		accel := st.Movement.Acceleration
		if !grounded {
			accel = st.Air.Acceleration * st.Air.ControlMultiplier
		}
		s.Vel = s.Vel.Add(ctx.wish.Mul(accel * ctx.dt))
	} else if grounded {
		p.applyFriction(st.Movement.Friction * ctx.dt)
	}
	if !grounded {
		ctx.applyAirResistance()
	}
	p.capSpeed()

	if ctx.attemptJump() {
		p.notify("jump executed (vel=%v)", s.Vel)
	}
	ctx.attemptJumpCut()
	ctx.applyGrapplePull()

	if s.Mode == ModeGrounded && s.Vel.Y() > 0 {
		p.setMode(ModeAirborne)
	}
	if s.Mode == ModeAirborne {
		s.Vel[1] -= p.gravity() * ctx.dt
	} else {
		s.Vel[1] = 0
	}

	p.moveHorizontal(s.Vel.Mul(ctx.dt))
	if s.Mode == ModeAirborne {
		p.moveVertical(s.Vel.Y() * ctx.dt)
	}
}

// applyAirResistance slows the player down in the air. Drag is proportional to the velocity, and
// without any input air friction is applied on top of it.
func (ctx *frameContext) applyAirResistance() {
	p := ctx.p
	s := &p.state

	drag := game.ClampFloat(1-p.settings.Air.Drag*ctx.dt, 0, 1)
	s.Vel[0] *= drag
	s.Vel[2] *= drag
	if !ctx.hasWish {
		p.applyFriction(p.settings.Air.Friction * ctx.dt)
	}
}

// applyFriction removes amount from the horizontal speed of the player, stopping at exactly zero.
func (p *Player) applyFriction(amount float32) {
	s := &p.state
	speed := game.HorizontalSpeed(s.Vel)
	if speed <= amount {
		s.Vel[0], s.Vel[2] = 0, 0
		return
	}
	scale := (speed - amount) / speed
	s.Vel[0] *= scale
	s.Vel[2] *= scale
}

// EffectiveMaxSpeed returns the horizontal speed cap of the player for the current frame, including
// the sprint multiplier and any active dash or jump boost.
func (p *Player) EffectiveMaxSpeed() float32 {
	s := &p.state
	st := p.settings

	target := st.Movement.MaxSpeed
	if p.sprinting {
		target *= st.Player.SprintMultiplier
	}

	multiplier := float32(1)
	if s.DashCooldown.Active() && s.DashCooldown.Remaining() > st.Dash.Cooldown-game.DashBoostWindow {
		multiplier = math32.Max(multiplier, game.DashBoostMultiplier)
	}
	if s.JumpSpeedBoost.Active() {
		multiplier = math32.Max(multiplier, st.Jump.SpeedBoost)
	}
	return target * multiplier
}

func (p *Player) capSpeed() {
	s := &p.state
	speed, limit := game.HorizontalSpeed(s.Vel), p.EffectiveMaxSpeed()
	if speed <= limit || speed == 0 {
		return
	}
	scale := limit / speed
	s.Vel[0] *= scale
	s.Vel[2] *= scale
}

func (p *Player) gravity() float32 {
	g := game.BaseGravity * p.settings.Player.Gravity
	if p.state.Grappling {
		g *= p.settings.Grapple.GravityReduction
	}
	return g
}

func (p *Player) setHorizontal(v mgl32.Vec3) {
	p.state.Vel[0], p.state.Vel[2] = v.X(), v.Z()
}
