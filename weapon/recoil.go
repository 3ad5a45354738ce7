package weapon

import (
	"math/rand"

	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/settings"
)

// Stance describes what the player was doing when a shot was fired.
type Stance struct {
	Sliding bool
	// Speed is the speed the player was moving at.
	Speed float32
}

// movingSpeed is the speed above which a player counts as moving for recoil purposes.
const movingSpeed = 1.0

// Recoil tracks the camera kick of the weapon. Each shot kicks the camera immediately, the remaining
// offset is then applied and recovered over the recoil duration.
type Recoil struct {
	cfg settings.Recoil
	rng *rand.Rand

	// offset is the remaining pitch and yaw kick in degrees.
	pitch, yaw float32
	timer      float32
}

// NewRecoil returns a recoil tracker using the configuration passed.
func NewRecoil(cfg settings.Recoil, seed int64) *Recoil {
	return &Recoil{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// multiplier returns the recoil multiplier for the stance passed.
func (r *Recoil) multiplier(st Stance) float32 {
	switch {
	case st.Sliding:
		return r.cfg.Crouching
	case st.Speed > movingSpeed:
		return r.cfg.Moving
	default:
		return r.cfg.Standing
	}
}

// Kick starts the recoil of a shot and returns the immediate pitch and yaw change of the camera in
// degrees. A positive pitch change looks up.
func (r *Recoil) Kick(st Stance) (pitch, yaw float32) {
	if !r.cfg.Enabled {
		return 0, 0
	}
	m := r.multiplier(st)

	var vertical, horizontal float32
	if r.cfg.PatternEnabled {
		vertical = r.cfg.Vertical * m
		horizontal = r.cfg.Horizontal * m
		if r.rng.Float32() <= 0.5 {
			horizontal = -horizontal
		}
	} else {
		vertical = (r.cfg.Vertical + r.rng.Float32() - 0.5) * m
		horizontal = (r.rng.Float32()*2 - 1) * r.cfg.Horizontal * m
	}

	r.pitch, r.yaw = vertical, horizontal
	r.timer = r.cfg.Duration
	return vertical * 0.3, horizontal * 0.3
}

// Update recovers the recoil by dt seconds and returns the pitch and yaw change to apply to the camera
// on this frame.
func (r *Recoil) Update(dt float32) (pitch, yaw float32) {
	if r.timer <= 0 || dt <= 0 {
		return 0, 0
	}
	r.timer -= dt

	recovery := float32(1)
	if r.cfg.Duration > 0 {
		recovery = game.ClampFloat(1-r.timer/r.cfg.Duration, 0, 1)
	}
	t := recovery * r.cfg.RecoverySpeed * dt
	pitch = game.Lerp(r.pitch, 0, t) * dt * 60
	yaw = game.Lerp(r.yaw, 0, t) * dt * 60

	r.pitch = game.Lerp(r.pitch, 0, r.cfg.RecoverySpeed*dt)
	r.yaw = game.Lerp(r.yaw, 0, r.cfg.RecoverySpeed*dt)
	if r.timer <= 0 {
		r.Reset()
	}
	return pitch, yaw
}

// Active returns true while the recoil is still being recovered.
func (r *Recoil) Active() bool {
	return r.timer > 0
}

// Reset drops any remaining recoil.
func (r *Recoil) Reset() {
	r.pitch, r.yaw, r.timer = 0, 0, 0
}
