package game

import "github.com/go-gl/mathgl/mgl32"

const (
	// BaseGravity is the gravitational acceleration before the player's gravity multiplier is applied.
	BaseGravity = float32(9.8)

	// CollisionBuffer is added to every probe distance requested by the movement code.
	CollisionBuffer = float32(0.1)
	// HeadHeight is the height above the player's feet the ceiling probe starts from.
	HeadHeight = float32(1.8)
	// GroundTolerance is how far below the feet a surface still counts as ground.
	GroundTolerance = float32(0.1)
	// MinSlideLength is the shortest tangent movement worth re-checking after a collision.
	MinSlideLength = float32(0.01)

	// CorrectionNudge is how far the positional correction pass pushes a stuck player.
	CorrectionNudge = float32(0.5)

	DashBoostMultiplier  = float32(3.0)
	DashBoostWindow      = float32(0.5)
	DashHorizontalFactor = float32(1.5)
	DashVerticalFactor   = float32(0.6)
	DashGroundLift       = float32(0.5)
	DashAirLift          = float32(0.7)
	DashVerticalClamp    = float32(30)

	SlideTurnRate    = float32(2)
	SlideProbeMargin = float32(0.5)
	SlideGroundProbe = float32(2)
	SlideCameraEase  = float32(8)
	StandCameraEase  = float32(6)

	WallDetectDistance  = float32(2)
	WallMaxNormalY      = float32(0.5)
	WallMinApproachDot  = float32(0.1)
	WallStickForce      = float32(20)
	WallVerticalFactor  = float32(0.3)
	WallMinPitchY       = float32(0.1)
	WallJumpHorizontal  = float32(1.5)
	WallJumpVertical    = float32(1.2)
	WallEndVertical     = float32(0.3)
	WallTiltEaseIn      = float32(5)
	WallTiltEaseOut     = float32(8)
	WallTangentFallback = float32(0.5)

	GrappleLengthRatio    = float32(0.8)
	GrappleCorrection     = float32(2)
	GrappleUpwardPull     = float32(0.3)
	GrappleMinAnchorRange = float32(0.05)

	// MaxFrameDelta bounds the time step of a single frame so a hitch cannot tunnel the player.
	MaxFrameDelta = float32(0.1)

	// VoidDepth is the height below which dropped props are discarded.
	VoidDepth = float32(-10)
)

var (
	// CenterOffset is the offset from the player's feet to the approximate body center probes start from.
	CenterOffset = mgl32.Vec3{0, 0.9, 0}

	// WallProbeHeights are the feet-relative heights used for wall detection and re-validation.
	WallProbeHeights = [...]float32{0.5, 1.0, 1.5}
	// WallRecheckDistances are the lateral distances used when re-validating an active wall run.
	WallRecheckDistances = [...]float32{2.5, 3.0}
)
