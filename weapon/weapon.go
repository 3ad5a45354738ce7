package weapon

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/event"
	"github.com/oomph-ac/parkour/settings"
	"github.com/oomph-ac/parkour/target"
	"github.com/oomph-ac/parkour/utils"
	"github.com/oomph-ac/parkour/world"
	"github.com/sirupsen/logrus"
)

// Geometry is the static world the weapon shoots and drops guns into.
type Geometry interface {
	Probe(origin, dir mgl32.Vec3, maxDist float32) game.Hit
	Clip(bb cube.BBox, vel mgl32.Vec3) world.ClipResult
}

// ShotResult is the outcome of a single shot.
type ShotResult struct {
	Hit      bool
	Target   target.Target
	Distance float32
}

// Weapon is the gun held by the player.
type Weapon struct {
	log      *logrus.Logger
	sink     event.Sink
	settings settings.Settings

	geometry Geometry
	targets  *target.Pool

	equipped bool
	respawn  utils.Countdown
	dropped  []*DroppedGun

	recoil *Recoil
}

// New creates an equipped weapon shooting at the targets of the pool passed.
func New(log *logrus.Logger, g Geometry, targets *target.Pool, s settings.Settings) *Weapon {
	return &Weapon{
		log:      log,
		sink:     event.NopSink{},
		settings: s,
		geometry: g,
		targets:  targets,
		equipped: true,
		recoil:   NewRecoil(s.Weapon.Recoil, 1),
	}
}

// Handle sets the sink receiving the events of the weapon.
func (w *Weapon) Handle(sink event.Sink) {
	if sink == nil {
		sink = event.NopSink{}
	}
	w.sink = sink
}

// Equipped returns true if the player is holding a gun.
func (w *Weapon) Equipped() bool {
	return w.equipped
}

// CanShoot returns true if shooting is enabled and a gun is held.
func (w *Weapon) CanShoot() bool {
	return w.settings.Weapon.ShootingEnabled && w.equipped
}

// Shoot fires a shot from origin along dir. The first target within bullet range is destroyed unless
// world geometry is in the way. It returns false if no shot could be fired. The camera kick of the
// shot is returned as a pitch and yaw change in degrees.
func (w *Weapon) Shoot(origin, dir mgl32.Vec3, st Stance) (res ShotResult, kickPitch, kickYaw float32, ok bool) {
	if !w.CanShoot() {
		return ShotResult{}, 0, 0, false
	}
	kickPitch, kickYaw = w.recoil.Kick(st)

	rng := w.settings.Weapon.BulletRange
	if t, dist, hit := w.targets.Raycast(origin, dir, rng); hit {
		if wall := w.geometry.Probe(origin, dir, dist); wall.Hit && wall.Distance < dist {
			w.log.Debugf("shot at target %s blocked by geometry at %.2f", t.ID, wall.Distance)
		} else {
			w.targets.Destroy(t.ID)
			res = ShotResult{Hit: true, Target: t, Distance: dist}
		}
	}

	e := &event.ShotEvent{Hit: res.Hit, Distance: res.Distance}
	if res.Hit {
		e.TargetID = res.Target.ID.String()
	}
	w.sink.HandleEvent(e)
	return res, kickPitch, kickYaw, true
}

// Drop throws the held gun away from pos, inheriting the velocity of the player. A new gun is handed
// to the player once the respawn time has passed. It returns false if no gun is held.
func (w *Weapon) Drop(pos, playerVel mgl32.Vec3) bool {
	if !w.equipped {
		return false
	}
	w.equipped = false
	w.dropped = append(w.dropped, newDroppedGun(pos, playerVel, w.settings.Weapon.GunPopForce))
	w.respawn.Reset(w.settings.Weapon.GunRespawnTime)
	w.recoil.Reset()
	return true
}

// Update advances the dropped guns, the gun respawn and the recoil by dt seconds. It returns the
// pitch and yaw change the recoil applies to the camera on this frame.
func (w *Weapon) Update(dt float32) (pitch, yaw float32) {
	kept := w.dropped[:0]
	for _, d := range w.dropped {
		if d.tick(w.geometry, w.settings.Weapon.GunGravity, dt) {
			kept = append(kept, d)
		}
	}
	for i := len(kept); i < len(w.dropped); i++ {
		w.dropped[i] = nil
	}
	w.dropped = kept

	if !w.equipped {
		w.respawn.Tick(dt)
		if w.respawn.Elapsed() {
			w.equipped = true
			w.recoil.Reset()
		}
	}
	return w.recoil.Update(dt)
}

// Dropped returns copies of the guns that are currently lying around.
func (w *Weapon) Dropped() []DroppedGun {
	guns := make([]DroppedGun, 0, len(w.dropped))
	for _, d := range w.dropped {
		guns = append(guns, *d)
	}
	return guns
}
