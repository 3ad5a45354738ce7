package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

// Solid is a single piece of static map geometry.
type Solid struct {
	Name string
	Box  cube.BBox
}

// World is a static map made of axis aligned boxes. It answers the ray and shape queries the movement
// core needs and never moves anything itself.
type World struct {
	name   string
	solids []Solid

	spawn        mgl32.Vec3
	targetVolume cube.BBox
}

// New returns a world with the solids passed.
func New(name string, solids []Solid, spawn mgl32.Vec3, targetVolume cube.BBox) *World {
	return &World{
		name:         name,
		solids:       solids,
		spawn:        spawn,
		targetVolume: targetVolume,
	}
}

// Name returns the name of the map.
func (w *World) Name() string {
	if w == nil {
		return ""
	}
	return w.name
}

// Spawn returns the position players are placed at when a session starts.
func (w *World) Spawn() mgl32.Vec3 {
	if w == nil {
		return mgl32.Vec3{}
	}
	return w.spawn
}

// TargetVolume returns the volume targets are spawned in.
func (w *World) TargetVolume() cube.BBox {
	if w == nil {
		return cube.BBox{}
	}
	return w.targetVolume
}

// Solids returns the geometry of the world.
func (w *World) Solids() []Solid {
	if w == nil {
		return nil
	}
	return w.solids
}

// Probe casts a ray from origin along dir and returns the closest hit within maxDist. A zero direction,
// a non-positive distance or a nil world never hit anything.
func (w *World) Probe(origin, dir mgl32.Vec3, maxDist float32) game.Hit {
	if w == nil || maxDist <= 0 || !game.IsFinite(maxDist) || !game.FiniteVec3(origin) {
		return game.NoHit
	}
	dir, ok := game.SafeNormalize(dir)
	if !ok {
		return game.NoHit
	}

	end := origin.Add(dir.Mul(maxDist))
	result := game.NoHit
	for _, s := range w.solids {
		res, ok := trace.BBoxIntercept(s.Box, origin, end)
		if !ok {
			continue
		}
		pos := res.Position()
		dist := pos.Sub(origin).Len()
		if dist > maxDist || (result.Hit && dist >= result.Distance) {
			continue
		}
		result = game.Hit{
			Distance: dist,
			Normal:   game.BoxNormalAt(s.Box, pos),
			Position: pos,
			Hit:      true,
		}
	}
	return result
}

// Intersects returns true if bb overlaps any solid in the world.
func (w *World) Intersects(bb cube.BBox) bool {
	if w == nil {
		return false
	}
	for _, s := range w.solids {
		if s.Box.IntersectsWith(bb) {
			return true
		}
	}
	return false
}

// NearbyBoxes appends the boxes of every solid that intersects bb to boxes and returns the result.
func (w *World) NearbyBoxes(bb cube.BBox, boxes []cube.BBox) []cube.BBox {
	if w == nil {
		return boxes
	}
	for _, s := range w.solids {
		if s.Box.IntersectsWith(bb) {
			boxes = append(boxes, s.Box)
		}
	}
	return boxes
}
