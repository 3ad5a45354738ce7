package weapon

import (
	"io"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/event"
	"github.com/oomph-ac/parkour/settings"
	"github.com/oomph-ac/parkour/target"
	"github.com/oomph-ac/parkour/world"
	"github.com/sirupsen/logrus"
)

const testDelta = float32(1) / 60

var floor = world.Solid{Name: "floor", Box: cube.Box(-10, -1, -10, 10, 0, 10)}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestWeapon returns a weapon aiming at a single target placed at (5, 1, 0).
func newTestWeapon(t *testing.T, s settings.Settings, solids ...world.Solid) (*Weapon, *target.Pool) {
	t.Helper()
	log := testLogger()
	w := world.New("weapon_test", solids, mgl32.Vec3{}, cube.Box(5, 1, 0, 5, 1, 0))

	pool := target.NewPool(log, w.Name(), w.TargetVolume(), s)
	if err := pool.Spawn(1); err != nil {
		t.Fatalf("unable to spawn target: %v", err)
	}
	return New(log, w, pool, s), pool
}

func TestShootDestroysTarget(t *testing.T) {
	wp, pool := newTestWeapon(t, settings.DefaultSettings(), floor)
	var shots []*event.ShotEvent
	wp.Handle(event.SinkFunc(func(e event.Event) {
		if ev, ok := e.(*event.ShotEvent); ok {
			shots = append(shots, ev)
		}
	}))

	res, _, _, ok := wp.Shoot(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, Stance{})
	if !ok {
		t.Fatalf("expected the shot to be fired")
	}
	if !res.Hit || res.Distance < 4.499 || res.Distance > 4.501 {
		t.Fatalf("expected a hit at distance 4.5, got %+v", res)
	}
	if pool.Len() != 0 {
		t.Fatalf("expected the target to be destroyed")
	}
	if len(shots) != 1 || !shots[0].Hit || shots[0].TargetID != res.Target.ID.String() {
		t.Fatalf("expected a single hit event, got %+v", shots)
	}
}

func TestShootBlockedByGeometry(t *testing.T) {
	wall := world.Solid{Name: "wall", Box: cube.Box(2, 0, -10, 3, 5, 10)}
	wp, pool := newTestWeapon(t, settings.DefaultSettings(), floor, wall)

	res, _, _, ok := wp.Shoot(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, Stance{})
	if !ok {
		t.Fatalf("expected the shot to be fired")
	}
	if res.Hit || pool.Len() != 1 {
		t.Fatalf("expected the wall to stop the shot")
	}
}

func TestShootMiss(t *testing.T) {
	wp, pool := newTestWeapon(t, settings.DefaultSettings(), floor)
	res, _, _, ok := wp.Shoot(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{-1, 0, 0}, Stance{})
	if !ok || res.Hit || pool.Len() != 1 {
		t.Fatalf("expected a fired shot that missed, got %+v", res)
	}
}

func TestShootingDisabled(t *testing.T) {
	s := settings.DefaultSettings()
	s.Weapon.ShootingEnabled = false
	wp, pool := newTestWeapon(t, s, floor)

	if _, _, _, ok := wp.Shoot(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, Stance{}); ok {
		t.Fatalf("expected no shot to be fired while shooting is disabled")
	}
	if pool.Len() != 1 {
		t.Fatalf("expected the target to survive")
	}
}

func TestDropAndRespawn(t *testing.T) {
	wp, _ := newTestWeapon(t, settings.DefaultSettings(), floor)
	if !wp.Drop(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{}) {
		t.Fatalf("expected the held gun to be dropped")
	}
	if wp.Equipped() || wp.CanShoot() {
		t.Fatalf("expected no gun to be held after dropping it")
	}
	if wp.Drop(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{}) {
		t.Fatalf("expected dropping without a gun to fail")
	}
	if _, _, _, ok := wp.Shoot(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, Stance{}); ok {
		t.Fatalf("expected no shot without a gun")
	}

	for i := 0; i < 30; i++ {
		wp.Update(testDelta)
	}
	if wp.Equipped() {
		t.Fatalf("expected the gun not to respawn early")
	}
	for i := 0; i < 40; i++ {
		wp.Update(testDelta)
	}
	if !wp.Equipped() {
		t.Fatalf("expected the gun to respawn")
	}
}

func TestDroppedGunLandsOnFloor(t *testing.T) {
	wp, _ := newTestWeapon(t, settings.DefaultSettings(), floor)
	wp.Drop(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{6, 3, 0})

	guns := wp.Dropped()
	if len(guns) != 1 {
		t.Fatalf("expected a single dropped gun, got %d", len(guns))
	}
	if !game.Float32ApproxEq(guns[0].Vel.X(), 5.4) || !game.Float32ApproxEq(guns[0].Vel.Y(), 2) {
		t.Fatalf("expected the gun to inherit horizontal velocity and pop up, got %v", guns[0].Vel)
	}

	for i := 0; i < 120; i++ {
		wp.Update(testDelta)
	}
	guns = wp.Dropped()
	if len(guns) != 1 || !guns[0].Resting {
		t.Fatalf("expected the gun to come to rest, got %+v", guns)
	}
	if y := guns[0].Pos.Y(); y < 0.14 || y > 0.16 {
		t.Fatalf("expected the gun to rest on the floor, got y=%v", y)
	}
	if guns[0].Pos.X() <= 0 {
		t.Fatalf("expected the gun to travel forward, got %v", guns[0].Pos)
	}
}

func TestDroppedGunFallsIntoVoid(t *testing.T) {
	wp, _ := newTestWeapon(t, settings.DefaultSettings())
	wp.Drop(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{})
	for i := 0; i < 180; i++ {
		wp.Update(testDelta)
	}
	if n := len(wp.Dropped()); n != 0 {
		t.Fatalf("expected the gun to be discarded below the void depth, %d left", n)
	}
}
