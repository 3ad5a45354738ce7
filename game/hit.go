package game

import "github.com/go-gl/mathgl/mgl32"

// Hit is the result of a collision probe. A zero Hit means nothing was hit.
type Hit struct {
	// Distance is the distance from the probe origin to the hit position.
	Distance float32
	// Normal is the outward surface normal at the hit position.
	Normal mgl32.Vec3
	// Position is the world position the probe hit.
	Position mgl32.Vec3
	// Hit is true if the probe hit anything within range.
	Hit bool
}

// NoHit is returned by probes that found nothing, or could not run at all.
var NoHit = Hit{}
