package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

func testWorld() *World {
	return New("test", []Solid{
		{Name: "floor", Box: cube.Box(-10, -1, -10, 10, 0, 10)},
		{Name: "wall", Box: cube.Box(2, 0, -10, 3, 5, 10)},
	}, mgl32.Vec3{}, cube.Box(0, 1, 0, 1, 2, 1))
}

func TestProbeHitsClosestSolid(t *testing.T) {
	w := testWorld()
	hit := w.Probe(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 10)
	if !hit.Hit {
		t.Fatalf("expected the wall to be hit")
	}
	if !game.Float32ApproxEq(hit.Distance, 2) {
		t.Fatalf("expected hit distance 2, got %v", hit.Distance)
	}
	if hit.Normal != (mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("expected normal facing -x, got %v", hit.Normal)
	}

	down := w.Probe(mgl32.Vec3{0, 0.9, 0}, mgl32.Vec3{0, -1, 0}, 1)
	if !down.Hit || down.Normal != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("expected the floor to be hit facing up, got %+v", down)
	}
}

func TestProbeOutOfRange(t *testing.T) {
	w := testWorld()
	if hit := w.Probe(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 1.5); hit.Hit {
		t.Fatalf("expected no hit within 1.5 units, got %+v", hit)
	}
}

func TestProbeDegenerateInput(t *testing.T) {
	w := testWorld()
	if hit := w.Probe(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, 10); hit.Hit {
		t.Fatalf("zero direction should never hit")
	}
	if hit := w.Probe(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 0); hit.Hit {
		t.Fatalf("zero distance should never hit")
	}
	if hit := w.Probe(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, -1); hit.Hit {
		t.Fatalf("negative distance should never hit")
	}

	var missing *World
	if hit := missing.Probe(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 10); hit.Hit {
		t.Fatalf("a missing world should report the path as clear")
	}
	if missing.Intersects(cube.Box(0, 0, 0, 1, 1, 1)) {
		t.Fatalf("a missing world should not intersect anything")
	}
}

func TestIntersects(t *testing.T) {
	w := testWorld()
	if w.Intersects(game.AABBFromDimensions(0.8, 1.8)) {
		t.Fatalf("a box resting on the floor should not intersect it")
	}
	if !w.Intersects(game.AABBFromDimensions(0.8, 1.8).Translate(mgl32.Vec3{2.5, 0, 0})) {
		t.Fatalf("a box inside the wall should intersect it")
	}
}

func TestClipLandsOnFloor(t *testing.T) {
	w := testWorld()
	bb := cube.Box(-0.1, 0.5, -0.1, 0.1, 0.7, 0.1)
	res := w.Clip(bb, mgl32.Vec3{0.2, -2, 0})
	if !res.OnGround || !res.CollideY {
		t.Fatalf("expected the box to land, got %+v", res)
	}
	if !game.Float32ApproxEq(res.Movement.Y(), -0.5) {
		t.Fatalf("expected to fall 0.5 units, got %v", res.Movement.Y())
	}
	if res.Movement.X() != 0.2 {
		t.Fatalf("horizontal movement should not be clipped, got %v", res.Movement.X())
	}
}

func TestClipStopsAtWall(t *testing.T) {
	w := testWorld()
	bb := cube.Box(1.5, 1, -0.1, 1.7, 1.2, 0.1)
	res := w.Clip(bb, mgl32.Vec3{1, 0, 0})
	if !res.CollideX {
		t.Fatalf("expected an x collision, got %+v", res)
	}
	if !game.Float32ApproxEq(res.Movement.X(), 0.3) {
		t.Fatalf("expected to move 0.3 units, got %v", res.Movement.X())
	}
}

func TestDefaultMap(t *testing.T) {
	w := Default()
	if w.Name() != "training" {
		t.Fatalf("unexpected map name %q", w.Name())
	}
	spawn := w.Spawn()
	hit := w.Probe(spawn.Add(game.CenterOffset), mgl32.Vec3{0, -1, 0}, 5)
	if !hit.Hit {
		t.Fatalf("expected ground below the spawn point")
	}
	if w.Intersects(game.AABBFromDimensions(0.8, 1.8).Translate(spawn)) {
		t.Fatalf("spawn point is inside geometry")
	}
}

func TestDecodeRejectsBadMaps(t *testing.T) {
	tests := map[string]string{
		"no name":   "solids:\n  - {name: a, min: [0, 0, 0], max: [1, 1, 1]}\n",
		"no solids": "name: empty\n",
		"flat":      "name: flat\nsolids:\n  - {name: a, min: [0, 0, 0], max: [1, 0, 1]}\n",
		"malformed": "name: [\n",
	}
	for name, data := range tests {
		if _, err := Decode([]byte(data)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	data := "name: box\nspawn: [0, 1, 0]\nsolids:\n  - {name: floor, min: [-1, -1, -1], max: [1, 0, 1]}\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("unable to write map: %v", err)
	}
	w, err := Load(path)
	if err != nil {
		t.Fatalf("unable to load map: %v", err)
	}
	if len(w.Solids()) != 1 || w.Spawn() != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("unexpected map contents: %+v", w)
	}
}
