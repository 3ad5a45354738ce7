package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/utils"
)

// ClipResult is the outcome of moving a box through the world with Clip.
type ClipResult struct {
	// Movement is the movement that could actually be applied.
	Movement mgl32.Vec3

	CollideX, CollideY, CollideZ bool
	// OnGround is true if the box was moving down and landed on a solid.
	OnGround bool
}

// Clip moves bb by vel, clipping the movement against every solid it would pass through. Movement is
// resolved on the Y axis first, then X, then Z.
func (w *World) Clip(bb cube.BBox, vel mgl32.Vec3) ClipResult {
	list := utils.GetBoxList()
	defer utils.PutBoxList(list)
	*list = w.NearbyBoxes(bb.Extend(vel).Grow(0.01), *list)
	boxes := *list

	y := vel[1]
	for _, b := range boxes {
		y = clipAxis(b, bb, y, 1)
	}
	bb = bb.Translate(mgl32.Vec3{0, y, 0})

	x := vel[0]
	for _, b := range boxes {
		x = clipAxis(b, bb, x, 0)
	}
	bb = bb.Translate(mgl32.Vec3{x, 0, 0})

	z := vel[2]
	for _, b := range boxes {
		z = clipAxis(b, bb, z, 2)
	}

	return ClipResult{
		Movement: mgl32.Vec3{x, y, z},
		CollideX: x != vel[0],
		CollideY: y != vel[1],
		CollideZ: z != vel[2],
		OnGround: vel[1] < 0 && y != vel[1],
	}
}

// clipAxis returns the largest part of delta along axis that moving can travel without entering
// stationary.
func clipAxis(stationary, moving cube.BBox, delta float32, axis int) float32 {
	for i := range 3 {
		if i == axis {
			continue
		}
		if moving.Max()[i] <= stationary.Min()[i] || moving.Min()[i] >= stationary.Max()[i] {
			return delta
		}
	}

	if delta > 0 && moving.Max()[axis] <= stationary.Min()[axis] {
		if gap := stationary.Min()[axis] - moving.Max()[axis]; gap < delta {
			return gap
		}
	} else if delta < 0 && moving.Min()[axis] >= stationary.Max()[axis] {
		if gap := stationary.Max()[axis] - moving.Min()[axis]; gap > delta {
			return gap
		}
	}
	return delta
}
