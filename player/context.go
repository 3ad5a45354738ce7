package player

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/event"
)

// frameContext holds the values derived from the input of a single frame.
type frameContext struct {
	p *Player

	dt  float32
	in  InputState
	cam Camera

	wish    mgl32.Vec3
	hasWish bool

	jumpPressed  bool
	slidePressed bool
}

var ctxPool = sync.Pool{
	New: func() any {
		return &frameContext{}
	},
}

func newCtx(p *Player, dt float32, in InputState) *frameContext {
	ctx := ctxPool.Get().(*frameContext)
	ctx.p = p
	ctx.dt = dt
	ctx.in = in
	ctx.cam = p.lastCam
	ctx.jumpPressed = in.Jump && !p.jumpHeld
	ctx.slidePressed = in.Slide && !p.slideHeld
	ctx.computeWishDir()

	p.sprinting = in.Sprint && p.state.Mode != ModeSliding
	return ctx
}

func putCtx(ctx *frameContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *frameContext) reset() {
	ctx.p = nil
	ctx.dt = 0
	ctx.in = InputState{}
	ctx.cam = Camera{}
	ctx.wish = mgl32.Vec3{}
	ctx.hasWish = false
	ctx.jumpPressed = false
	ctx.slidePressed = false
}

func (ctx *frameContext) computeWishDir() {
	strafe, forward := ctx.in.axes()
	if strafe == 0 && forward == 0 {
		return
	}
	wish := ctx.cam.HorizontalRight().Mul(strafe).Add(ctx.cam.HorizontalForward().Mul(forward))
	ctx.wish, ctx.hasWish = game.SafeNormalize(wish)
}

// tickTimers counts every timer of the player down by the frame delta, then buffers a fresh jump press.
func (ctx *frameContext) tickTimers() {
	s := &ctx.p.state
	s.SlideCooldown.Tick(ctx.dt)
	s.DashCooldown.Tick(ctx.dt)
	s.GunDropCooldown.Tick(ctx.dt)
	s.GrappleCooldown.Tick(ctx.dt)
	s.JumpBuffer.Tick(ctx.dt)
	s.Coyote.Tick(ctx.dt)
	s.JumpSpeedBoost.Tick(ctx.dt)
	if s.Mode == ModeWallRunning {
		s.WallRunElapsed.Tick(ctx.dt)
	}

	if ctx.jumpPressed {
		s.JumpBuffer.Reset(ctx.p.settings.Jump.BufferTime)
	}
}

// updateGround probes for ground under the player. Grounded players are snapped onto the surface and
// airborne players falling onto one land.
func (ctx *frameContext) updateGround() {
	p := ctx.p
	s := &p.state

	reach := game.CenterOffset.Y() + game.GroundTolerance
	hit := p.probeGround(reach)
	s.OnGround = hit.Hit && hit.Distance <= reach && s.Vel.Y() <= 0
	if !s.OnGround {
		if s.Mode == ModeGrounded {
			p.setMode(ModeAirborne)
		}
		return
	}

	s.Coyote.Reset(p.settings.Jump.CoyoteTime)
	switch s.Mode {
	case ModeAirborne:
		p.land(hit.Position.Y())
	case ModeGrounded, ModeSliding:
		s.Pos[1] = hit.Position.Y()
	}
}

// resolveTransitions moves the player between modes. Wall running is resolved before sliding, so the
// two can never start on the same frame.
func (ctx *frameContext) resolveTransitions() {
	s := &ctx.p.state
	switch s.Mode {
	case ModeWallRunning:
		ctx.updateWallRun()
	case ModeAirborne:
		ctx.attemptWallRunStart()
	}
	if s.Mode == ModeWallRunning {
		return
	}

	switch s.Mode {
	case ModeSliding:
		ctx.updateSlide()
	case ModeGrounded:
		ctx.attemptSlideStart()
	}
}

func (ctx *frameContext) applyImpulses() {
	p := ctx.p
	if ctx.in.DashPressed {
		p.TryDash()
	}
	if ctx.in.GrappleReleasePressed {
		p.ReleaseGrapple()
	} else if ctx.in.GrapplePressed {
		p.FireGrapple()
	}
}

func (p *Player) land(y float32) {
	s := &p.state
	fallSpeed := -s.Vel.Y()
	s.Pos[1] = y
	s.Vel[1] = 0
	s.OnGround = true
	p.jumpCutAvailable = false
	p.setMode(ModeGrounded)
	p.emit(&event.LandEvent{FallSpeed: fallSpeed})
	p.notify("landed at y=%.4f (fallSpeed=%.4f)", y, fallSpeed)
}
