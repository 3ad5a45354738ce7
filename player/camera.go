package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

// Camera is the view basis the movement core reads each frame. Forward may point anywhere; Right is
// expected to be horizontal.
type Camera struct {
	Forward mgl32.Vec3 `msgpack:"fw"`
	Right   mgl32.Vec3 `msgpack:"rt"`
	Up      mgl32.Vec3 `msgpack:"up"`
	// Pitch is the pitch of the camera in degrees, positive when looking up.
	Pitch float32 `msgpack:"p"`
}

// CameraFromAngles builds a camera basis from a yaw and pitch in degrees. A yaw of zero faces +Z.
func CameraFromAngles(yaw, pitch float32) Camera {
	fwd := game.DirectionVector(yaw, pitch)
	right := game.RightVector(yaw)
	return Camera{
		Forward: fwd,
		Right:   right,
		Up:      right.Cross(fwd).Mul(-1),
		Pitch:   pitch,
	}
}

func (c Camera) valid() bool {
	if !game.FiniteVec3(c.Forward) || !game.FiniteVec3(c.Right) || !game.FiniteVec3(c.Up) || !game.IsFinite(c.Pitch) {
		return false
	}
	return c.Forward.Len() > 1e-6
}

// normalized returns the camera with a unit forward and a horizontal unit right vector.
func (c Camera) normalized() Camera {
	c.Forward, _ = game.SafeNormalize(c.Forward)
	right, ok := game.SafeNormalize(game.Horizontal(c.Right))
	if !ok {
		right, ok = game.SafeNormalize(mgl32.Vec3{c.Forward.Z(), 0, -c.Forward.X()})
		if !ok {
			right = mgl32.Vec3{1, 0, 0}
		}
	}
	c.Right = right
	return c
}

// HorizontalForward returns the forward vector projected onto the horizontal plane. When looking
// straight up or down the forward direction is derived from the right vector.
func (c Camera) HorizontalForward() mgl32.Vec3 {
	if fwd, ok := game.SafeNormalize(game.Horizontal(c.Forward)); ok {
		return fwd
	}
	return mgl32.Vec3{-c.Right.Z(), 0, c.Right.X()}
}

// HorizontalRight returns the right vector projected onto the horizontal plane.
func (c Camera) HorizontalRight() mgl32.Vec3 {
	if right, ok := game.SafeNormalize(game.Horizontal(c.Right)); ok {
		return right
	}
	return mgl32.Vec3{1, 0, 0}
}
