package player

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

// WorldProvider is the geometry query service the movement core runs against. The core never asks it
// to move anything, it only casts rays and tests boxes.
type WorldProvider interface {
	// Probe casts a ray from origin along dir and returns the closest hit within maxDist. It must return
	// no hit for a zero direction, a non-positive distance, or when the geometry is unavailable.
	Probe(origin, dir mgl32.Vec3, maxDist float32) game.Hit
	// Intersects returns true if bb overlaps solid geometry.
	Intersects(bb cube.BBox) bool
}
