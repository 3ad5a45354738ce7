package weapon

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

// droppedGunBox is the collision box of a dropped gun, centered on its position.
var droppedGunBox = cube.Box(-0.15, -0.15, -0.15, 0.15, 0.15, 0.15)

// DroppedGun is a gun the player threw away. It falls under gravity until it comes to rest on the
// ground or falls out of the world.
type DroppedGun struct {
	Pos mgl32.Vec3
	Vel mgl32.Vec3

	Resting bool
}

// newDroppedGun creates a dropped gun inheriting part of the horizontal velocity of the player, popped
// upwards by popForce.
func newDroppedGun(pos, playerVel mgl32.Vec3, popForce float32) *DroppedGun {
	vel := game.Horizontal(playerVel).Mul(0.9)
	vel[1] = popForce
	return &DroppedGun{Pos: pos, Vel: vel}
}

// tick moves the gun by dt, returning false once it fell out of the world.
func (d *DroppedGun) tick(g Geometry, gravity, dt float32) bool {
	if d.Pos.Y() <= game.VoidDepth {
		return false
	}
	if d.Resting {
		return true
	}

	d.Vel[1] -= gravity * dt
	res := g.Clip(droppedGunBox.Translate(d.Pos), d.Vel.Mul(dt))
	d.Pos = d.Pos.Add(res.Movement)
	if res.CollideX {
		d.Vel[0] = 0
	}
	if res.CollideZ {
		d.Vel[2] = 0
	}
	if res.CollideY {
		d.Vel[1] = 0
	}
	if res.OnGround {
		d.Vel = mgl32.Vec3{}
		d.Resting = true
	}
	return d.Pos.Y() > game.VoidDepth
}
