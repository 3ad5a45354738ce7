package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/event"
)

// TryDash applies a dash impulse along the camera direction. It returns false without touching the
// velocity of the player if dashing is disabled or still on cooldown.
func (p *Player) TryDash() bool {
	s := &p.state
	st := p.settings.Dash
	if !st.Enabled || s.DashCooldown.Active() {
		return false
	}

	dir := p.lastCam.Forward
	impulse := p.lastCam.HorizontalForward().Mul(st.Force * game.DashHorizontalFactor)
	vertical := st.Force * game.DashVerticalFactor

	grounded := s.OnGround
	if grounded {
		if dir.Y() > 0 {
			impulse[1] = dir.Y() * vertical * game.DashGroundLift
		}
	} else {
		impulse[1] = dir.Y() * vertical * game.DashAirLift
	}

	s.Vel = s.Vel.Add(impulse)
	if !grounded {
		s.Vel[1] = game.ClampFloat(s.Vel[1], -game.DashVerticalClamp, game.DashVerticalClamp)
	}
	s.DashCooldown.Reset(st.Cooldown)
	p.emit(&event.DashEvent{Impulse: impulse, Grounded: grounded})
	p.notify("dash applied (impulse=%v vel=%v)", impulse, s.Vel)
	return true
}

// TryGunDrop starts the gun drop cooldown, returning false if the cooldown has not elapsed yet. The
// caller is expected to spawn the dropped gun itself.
func (p *Player) TryGunDrop() bool {
	s := &p.state
	if s.GunDropCooldown.Active() {
		return false
	}
	s.GunDropCooldown.Reset(p.settings.Weapon.GunDropCooldown)
	p.emit(&event.GunDropEvent{Velocity: s.Vel})
	return true
}

// FireGrapple casts a ray along the camera and attaches the grapple to the first surface hit within
// range. It returns false if the grapple is disabled, already attached, on cooldown or hit nothing.
func (p *Player) FireGrapple() bool {
	s := &p.state
	st := p.settings.Grapple
	if !st.Enabled || s.Grappling || s.GrappleCooldown.Active() {
		return false
	}

	eye := p.EyePosition()
	hit := p.probe(eye, p.lastCam.Forward, st.Range)
	if !hit.Hit {
		return false
	}
	s.Grappling = true
	s.Anchor = hit.Position
	s.GrappleCooldown.Reset(st.Cooldown)
	p.emit(&event.GrappleAttachEvent{Anchor: hit.Position, Distance: hit.Distance})
	return true
}

// ReleaseGrapple detaches the grapple. It does nothing if the grapple is not attached.
func (p *Player) ReleaseGrapple() {
	if p.state.Grappling {
		p.releaseGrapple("released")
	}
}

func (p *Player) releaseGrapple(reason string) {
	p.state.Grappling = false
	p.state.Anchor = mgl32.Vec3{}
	p.emit(&event.GrappleReleaseEvent{Reason: reason})
}

// applyGrapplePull pulls the player towards the grapple anchor.
func (ctx *frameContext) applyGrapplePull() {
	p := ctx.p
	s := &p.state
	st := p.settings.Grapple
	if !s.Grappling {
		return
	}

	toAnchor := s.Anchor.Sub(s.Pos.Add(game.CenterOffset))
	dist := toAnchor.Len()
	if !game.FiniteVec3(toAnchor) || !game.IsFinite(dist) || dist < game.GrappleMinAnchorRange {
		p.releaseGrapple("invalid")
		return
	}
	dir := toAnchor.Mul(1 / dist)

	s.Vel = s.Vel.Add(dir.Mul(st.PullForce * ctx.dt))
	if dir.Y() > 0 {
		g := game.BaseGravity * p.settings.Player.Gravity
		s.Vel[1] += (1-st.GravityReduction)*g*ctx.dt + math32.Abs(dir.Y())*st.PullForce*game.GrappleUpwardPull*ctx.dt
	}
	if cable := st.Range * game.GrappleLengthRatio; dist > cable {
		s.Vel = s.Vel.Add(dir.Mul((dist - cable) * game.GrappleCorrection * ctx.dt))
	}
}
