package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/event"
)

func (p *Player) findWall(dir mgl32.Vec3, dist float32) (game.Hit, bool) {
	for _, h := range game.WallProbeHeights {
		origin := p.state.Pos.Add(mgl32.Vec3{0, h, 0})
		hit := p.probe(origin, dir, dist+game.CollisionBuffer)
		if hit.Hit && math32.Abs(hit.Normal.Y()) < game.WallMaxNormalY {
			return hit, true
		}
	}
	return game.NoHit, false
}

// attemptWallRunStart starts a wall run if an airborne player running fast enough is holding forward
// and the strafe key towards a wall it is moving into.
func (ctx *frameContext) attemptWallRunStart() bool {
	p := ctx.p
	s := &p.state
	st := p.settings.WallRun
	if !st.Enabled || s.Mode != ModeAirborne || !ctx.in.Forward {
		return false
	}
	if game.HorizontalSpeed(s.Vel) < st.MinSpeed {
		return false
	}
	moveDir, ok := game.SafeNormalize(game.Horizontal(s.Vel))
	if !ok {
		return false
	}

	right := ctx.cam.HorizontalRight()
	for _, side := range [...]int8{1, -1} {
		if (side == 1 && !ctx.in.Right) || (side == -1 && !ctx.in.Left) {
			continue
		}
		dir := right.Mul(float32(side))
		if moveDir.Dot(dir) <= game.WallMinApproachDot {
			continue
		}
		if hit, ok := p.findWall(dir, game.WallDetectDistance); ok {
			s.WallNormal = hit.Normal
			s.WallSide = side
			s.WallRunElapsed.Reset()
			s.Vel[1] = 0
			p.setMode(ModeWallRunning)
			p.emit(&event.WallRunStartEvent{Side: side, Normal: hit.Normal})
			return true
		}
	}
	return false
}

// updateWallRun checks every exit condition of an active wall run. The first condition met ends the
// run: running out of time, touching the ground, jumping, releasing the keys, or losing the wall.
func (ctx *frameContext) updateWallRun() {
	p := ctx.p
	s := &p.state
	st := p.settings.WallRun

	switch {
	case s.WallRunElapsed.Elapsed() > st.MaxTime:
		p.endWallRun("timeout", ModeAirborne, mgl32.Vec3{})
	case s.OnGround:
		p.endWallRun("grounded", ModeGrounded, mgl32.Vec3{})
	case s.JumpBuffer.Active():
		p.wallJump("jump")
		p.ConsumeJump()
	case !ctx.in.Forward || (s.WallSide == 1 && !ctx.in.Right) || (s.WallSide == -1 && !ctx.in.Left):
		p.wallJump("keys_released")
	case !ctx.revalidateWall():
		tangent := wallTangent(s.WallNormal)
		if tangent.Dot(game.Horizontal(s.Vel)) < 0 {
			tangent = tangent.Mul(-1)
		}
		kick := tangent.Mul(st.Speed * st.EndMomentumKick)
		kick[1] = st.JumpForce * game.WallEndVertical
		s.Vel = kick
		p.endWallRun("wall_lost", ModeAirborne, kick)
	}
}

func (ctx *frameContext) revalidateWall() bool {
	p := ctx.p
	dir := ctx.cam.HorizontalRight().Mul(float32(p.state.WallSide))
	for _, dist := range game.WallRecheckDistances {
		if hit, ok := p.findWall(dir, dist); ok {
			p.state.WallNormal = hit.Normal
			return true
		}
	}
	return false
}

// wallJump kicks the player away from the wall and ends the wall run.
func (p *Player) wallJump(reason string) {
	s := &p.state
	force := p.settings.WallRun.JumpForce
	kick := game.Horizontal(s.WallNormal).Mul(force * game.WallJumpHorizontal)
	kick[1] = force * game.WallJumpVertical
	s.Vel = kick
	p.endWallRun(reason, ModeAirborne, kick)
}

func (p *Player) endWallRun(reason string, next Mode, kick mgl32.Vec3) {
	s := &p.state
	elapsed := s.WallRunElapsed.Elapsed()
	s.clearWallRun()
	p.setMode(next)
	p.emit(&event.WallRunEndEvent{Reason: reason, Elapsed: elapsed, Kick: kick})
}

// simulateWallRun moves the player along the wall. Gravity does not apply; the player may drift up or
// down by looking up or down.
func (ctx *frameContext) simulateWallRun() {
	p := ctx.p
	s := &p.state
	st := p.settings.WallRun
	n := game.Horizontal(s.WallNormal)

	s.Vel[1] = 0
	var rise float32
	if fwdY := ctx.cam.Forward.Y(); math32.Abs(fwdY) > game.WallMinPitchY {
		rise = fwdY * st.Speed * game.WallVerticalFactor * ctx.dt
	}

	var along mgl32.Vec3
	if dir, ok := game.SafeNormalize(game.Horizontal(game.ProjectOnPlane(ctx.cam.HorizontalForward(), n))); ok {
		along = dir.Mul(st.Speed)
	} else {
		along = wallTangent(n).Mul(st.Speed * game.WallTangentFallback)
	}
	stick := game.WallStickForce * ctx.dt
	p.setHorizontal(along.Sub(n.Mul(stick)))

	// Movement along the wall is applied directly, but it must still not pass through obstacles.
	if step := along.Mul(ctx.dt); step.Len() > 0 {
		if !p.probeBody(step.Normalize(), step.Len()+p.halfWidth).Hit {
			s.Pos = s.Pos.Add(step)
		}
	}
	// The stick impulse never pulls the player closer than its half width to the wall.
	if hit := p.probe(s.Pos.Add(game.CenterOffset), n.Mul(-1), p.halfWidth+1); hit.Hit {
		gap := math32.Max(hit.Distance-p.halfWidth-game.CollisionBuffer, 0)
		s.Pos = s.Pos.Sub(n.Mul(math32.Min(stick*ctx.dt, gap)))
	}

	switch {
	case rise > 0:
		head := s.Pos.Add(mgl32.Vec3{0, game.HeadHeight, 0})
		if !p.probe(head, up, rise+game.CollisionBuffer).Hit {
			s.Pos[1] += rise
		}
	case rise < 0:
		s.Pos[1] += rise
		if hit := p.probeGround(game.CenterOffset.Y()); hit.Hit {
			s.Pos[1] = math32.Max(s.Pos[1], hit.Position.Y())
		}
	}
}

func wallTangent(n mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{-n.Z(), 0, n.X()}
}
