package player

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/event"
)

var (
	up   = mgl32.Vec3{0, 1, 0}
	down = mgl32.Vec3{0, -1, 0}

	// bodyProbeHeights are the offsets from the body center that horizontal probes start from: the
	// center, the chest and the knees.
	bodyProbeHeights = [...]float32{0, 0.5, -0.5}

	// correctionDirections are tried in order when the player is found inside geometry.
	correctionDirections = [...]mgl32.Vec3{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 0, 1},
		{0, 0, -1},
		{0, 1, 0},
	}
)

func (p *Player) probe(origin, dir mgl32.Vec3, dist float32) game.Hit {
	if p.world == nil {
		return game.NoHit
	}
	return p.world.Probe(origin, dir, dist)
}

// probeGround returns the closest ground hit under the player's footprint.
func (p *Player) probeGround(reach float32) game.Hit {
	inset := p.halfWidth * 0.75
	offsets := [...]mgl32.Vec3{
		{},
		{inset, 0, 0},
		{-inset, 0, 0},
		{0, 0, inset},
		{0, 0, -inset},
	}

	center := p.state.Pos.Add(game.CenterOffset)
	best := game.NoHit
	for _, off := range offsets {
		hit := p.probe(center.Add(off), down, reach+game.CollisionBuffer)
		if hit.Hit && (!best.Hit || hit.Distance < best.Distance) {
			best = hit
		}
	}
	return best
}

func (p *Player) probeBody(dir mgl32.Vec3, reach float32) game.Hit {
	side := mgl32.Vec3{-dir.Z(), 0, dir.X()}.Mul(p.halfWidth * 0.75)
	center := p.state.Pos.Add(game.CenterOffset)

	best := game.NoHit
	for _, h := range bodyProbeHeights {
		origin := center.Add(mgl32.Vec3{0, h, 0})
		for _, off := range [...]mgl32.Vec3{{}, side, side.Mul(-1)} {
			hit := p.probe(origin.Add(off), dir, reach+game.CollisionBuffer)
			if hit.Hit && (!best.Hit || hit.Distance < best.Distance) {
				best = hit
			}
		}
	}
	return best
}

// moveHorizontal moves the player by m on the horizontal plane, in steps no longer than the max
// movement step. A blocked step slides along the surface that was hit, and if the slide is blocked
// too the horizontal velocity of the player is removed.
func (p *Player) moveHorizontal(m mgl32.Vec3) {
	m = game.Horizontal(m)
	length := m.Len()
	if length <= 1e-6 || !game.IsFinite(length) {
		return
	}

	maxStep := p.settings.Movement.MaxStep
	if maxStep <= 0 {
		maxStep = length
	}
	steps := int(math32.Ceil(length / maxStep))
	step := m.Mul(1 / float32(steps))
	for i := 0; i < steps; i++ {
		if !p.stepHorizontal(step) {
			p.notify("horizontal movement blocked after %d/%d steps", i, steps)
			return
		}
	}
}

func (p *Player) stepHorizontal(step mgl32.Vec3) bool {
	s := &p.state
	length := step.Len()
	dir := step.Mul(1 / length)

	hit := p.probeBody(dir, length+p.halfWidth)
	if !hit.Hit {
		s.Pos = s.Pos.Add(step)
		return true
	}

	if n, ok := game.SafeNormalize(game.Horizontal(hit.Normal)); ok {
		slide := game.ProjectOnPlane(step, n)
		slide[1] = 0
		if slideLen := slide.Len(); slideLen > game.MinSlideLength {
			slideDir := slide.Mul(1 / slideLen)
			if !p.probeBody(slideDir, slideLen+p.halfWidth).Hit {
				s.Pos = s.Pos.Add(slide)
				return true
			}
		}
	}

	s.Vel[0], s.Vel[2] = 0, 0
	return false
}

// moveVertical moves the player by dy, stopping at ceilings and landing on floors.
func (p *Player) moveVertical(dy float32) {
	s := &p.state
	switch {
	case dy > 0:
		head := s.Pos.Add(mgl32.Vec3{0, game.HeadHeight, 0})
		if hit := p.probe(head, up, dy+game.CollisionBuffer); hit.Hit {
			p.notify("ceiling hit at distance %.4f", hit.Distance)
			s.Vel[1] = 0
			return
		}
		s.Pos[1] += dy
	case dy < 0:
		reach := game.CenterOffset.Y() - dy
		if hit := p.probeGround(reach); hit.Hit && hit.Distance <= reach {
			p.land(hit.Position.Y())
			return
		}
		s.Pos[1] += dy
	}
}

func (p *Player) boxAt(pos mgl32.Vec3) cube.BBox {
	return p.bb.Translate(pos).Grow(-0.01)
}

// correctPosition pushes the player out of geometry it ended up inside of. Each direction is tried in
// order and the first that frees the player is used.
func (p *Player) correctPosition() {
	if p.world == nil || !p.world.Intersects(p.boxAt(p.state.Pos)) {
		return
	}

	for _, dir := range correctionDirections {
		push := dir.Mul(game.CorrectionNudge)
		if candidate := p.state.Pos.Add(push); !p.world.Intersects(p.boxAt(candidate)) {
			p.state.Pos = candidate
			p.emit(&event.CorrectionEvent{Applied: true, Push: push, Position: candidate})
			p.notify("corrected position by %v", push)
			return
		}
	}

	p.emit(&event.CorrectionEvent{Applied: false, Position: p.state.Pos})
	p.log.Warnf("unable to push player out of geometry at %v", p.state.Pos)
}
