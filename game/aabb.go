package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box from the given dimensions, with its origin at the center
// of the bottom face.
func AABBFromDimensions(width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, 0, -h,
		h, height, h,
	)
}

// BoxNormalAt returns the outward normal of the face of bb closest to pos. pos is expected to lie on
// or very near the surface of the box, such as the position of a ray intercept.
func BoxNormalAt(bb cube.BBox, pos mgl32.Vec3) mgl32.Vec3 {
	min, max := bb.Min(), bb.Max()
	faces := [6]struct {
		dist   float32
		normal mgl32.Vec3
	}{
		{math32.Abs(pos[0] - min[0]), mgl32.Vec3{-1, 0, 0}},
		{math32.Abs(pos[0] - max[0]), mgl32.Vec3{1, 0, 0}},
		{math32.Abs(pos[1] - min[1]), mgl32.Vec3{0, -1, 0}},
		{math32.Abs(pos[1] - max[1]), mgl32.Vec3{0, 1, 0}},
		{math32.Abs(pos[2] - min[2]), mgl32.Vec3{0, 0, -1}},
		{math32.Abs(pos[2] - max[2]), mgl32.Vec3{0, 0, 1}},
	}

	best := 0
	for i := 1; i < len(faces); i++ {
		if faces[i].dist < faces[best].dist {
			best = i
		}
	}
	return faces[best].normal
}

// AABBVectorDistance calculates the distance between an AABB and a vector.
func AABBVectorDistance(a cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(a.Min().X()-v.X(), math32.Max(0, v.X()-a.Max().X()))
	y := math32.Max(a.Min().Y()-v.Y(), math32.Max(0, v.Y()-a.Max().Y()))
	z := math32.Max(a.Min().Z()-v.Z(), math32.Max(0, v.Z()-a.Max().Z()))

	return math32.Sqrt(x*x + y*y + z*z)
}
