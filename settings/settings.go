package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml"
	"github.com/zeebo/xxh3"
)

// Settings contains every tunable of the movement core and the systems around it. The core reads the
// settings once when a player is created and treats them as read-only for the session.
type Settings struct {
	Player struct {
		// Gravity is the multiplier applied to the base gravity of 9.8.
		Gravity          float32 `toml:"gravity"`
		JumpHeight       float32 `toml:"jump_height"`
		SprintMultiplier float32 `toml:"sprint_multiplier"`
		Height           float32 `toml:"height"`
		Width            float32 `toml:"width"`
		CameraHeight     float32 `toml:"camera_height"`
		StartPos         Vec3    `toml:"start_pos"`
	} `toml:"player"`
	Movement struct {
		Acceleration float32 `toml:"acceleration"`
		Friction     float32 `toml:"friction"`
		MaxSpeed     float32 `toml:"max_speed"`
		// MaxStep is the longest horizontal distance moved before collisions are checked again.
		MaxStep float32 `toml:"max_step"`
	} `toml:"movement"`
	Jump struct {
		CoyoteTime    float32 `toml:"coyote_time"`
		BufferTime    float32 `toml:"buffer_time"`
		CutEnabled    bool    `toml:"cut_enabled"`
		CutMultiplier float32 `toml:"cut_multiplier"`
		SpeedBoost    float32 `toml:"speed_boost"`
		BoostDuration float32 `toml:"boost_duration"`
		// PreserveSpeed adds the boost on top of the current velocity instead of raising it to the boost speed.
		PreserveSpeed bool `toml:"preserve_speed"`
		// Directional boosts along the input direction instead of the current velocity.
		Directional bool `toml:"directional"`
	} `toml:"jump"`
	Air struct {
		Acceleration      float32 `toml:"acceleration"`
		ControlMultiplier float32 `toml:"control_multiplier"`
		Friction          float32 `toml:"friction"`
		Drag              float32 `toml:"drag"`
	} `toml:"air"`
	Slide struct {
		Enabled       bool    `toml:"enabled"`
		Friction      float32 `toml:"friction"`
		StartVelocity float32 `toml:"start_velocity"`
		Cooldown      float32 `toml:"cooldown"`
		CameraHeight  float32 `toml:"camera_height"`
		GravityForce  float32 `toml:"gravity_force"`
	} `toml:"slide"`
	Dash struct {
		Enabled  bool    `toml:"enabled"`
		Cooldown float32 `toml:"cooldown"`
		Force    float32 `toml:"force"`
	} `toml:"dash"`
	WallRun struct {
		Enabled         bool    `toml:"enabled"`
		Speed           float32 `toml:"speed"`
		MinSpeed        float32 `toml:"min_speed"`
		MaxTime         float32 `toml:"max_time"`
		JumpForce       float32 `toml:"jump_force"`
		CameraTilt      float32 `toml:"camera_tilt"`
		EndMomentumKick float32 `toml:"end_momentum_kick"`
	} `toml:"wall_run"`
	Grapple struct {
		Enabled          bool    `toml:"enabled"`
		Range            float32 `toml:"range"`
		Cooldown         float32 `toml:"cooldown"`
		PullForce        float32 `toml:"pull_force"`
		GravityReduction float32 `toml:"gravity_reduction"`
	} `toml:"grapple"`
	Weapon struct {
		ShootingEnabled bool    `toml:"shooting_enabled"`
		BulletRange     float32 `toml:"bullet_range"`
		GunGravity      float32 `toml:"gun_gravity"`
		GunPopForce     float32 `toml:"gun_pop_force"`
		GunRespawnTime  float32 `toml:"gun_respawn_time"`
		GunDropCooldown float32 `toml:"gun_drop_cooldown"`
		Recoil          Recoil  `toml:"recoil"`
	} `toml:"weapon"`
	Targets struct {
		Count   int     `toml:"count"`
		Minimum int     `toml:"minimum"`
		Size    float32 `toml:"size"`
	} `toml:"targets"`
	Game struct {
		CasualEnabled   bool    `toml:"casual_enabled"`
		TimedEnabled    bool    `toml:"timed_enabled"`
		TimerDuration   float32 `toml:"timer_duration"`
		ScoreMultiplier float32 `toml:"score_multiplier"`
		PointsPerTarget int     `toml:"points_per_target"`
		FOV             float32 `toml:"fov"`
	} `toml:"game"`
}

// Vec3 is a position stored in the settings file.
type Vec3 struct {
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
	Z float32 `toml:"z"`
}

// Vec3 returns the position as a vector.
func (v Vec3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Recoil holds the camera kick applied when a shot is fired.
type Recoil struct {
	Enabled        bool    `toml:"enabled"`
	Vertical       float32 `toml:"vertical"`
	Horizontal     float32 `toml:"horizontal"`
	RecoverySpeed  float32 `toml:"recovery_speed"`
	Duration       float32 `toml:"duration"`
	PatternEnabled bool    `toml:"pattern_enabled"`
	Standing       float32 `toml:"standing_multiplier"`
	Crouching      float32 `toml:"crouching_multiplier"`
	Moving         float32 `toml:"moving_multiplier"`
}

// DefaultSettings returns the default tuning of the game.
func DefaultSettings() Settings {
	s := Settings{}
	s.Player.Gravity = 0.5
	s.Player.JumpHeight = 2
	s.Player.SprintMultiplier = 1.8
	s.Player.Height = 1.8
	s.Player.Width = 0.8
	s.Player.CameraHeight = 1.7
	s.Player.StartPos = Vec3{X: 15, Y: 11, Z: 0}

	s.Movement.Acceleration = 20
	s.Movement.Friction = 15
	s.Movement.MaxSpeed = 7
	s.Movement.MaxStep = 0.5

	s.Jump.CoyoteTime = 0.15
	s.Jump.BufferTime = 0.12
	s.Jump.CutEnabled = true
	s.Jump.CutMultiplier = 0.5
	s.Jump.SpeedBoost = 1.3
	s.Jump.BoostDuration = 0.4
	s.Jump.PreserveSpeed = false
	s.Jump.Directional = true

	s.Air.Acceleration = 20
	s.Air.ControlMultiplier = 0.3
	s.Air.Friction = 2
	s.Air.Drag = 0.1

	s.Slide.Enabled = true
	s.Slide.Friction = 6
	s.Slide.StartVelocity = 40
	s.Slide.Cooldown = 2
	s.Slide.CameraHeight = 1
	s.Slide.GravityForce = 20

	s.Dash.Enabled = true
	s.Dash.Cooldown = 1
	s.Dash.Force = 50

	s.WallRun.Enabled = true
	s.WallRun.Speed = 18
	s.WallRun.MinSpeed = 6
	s.WallRun.MaxTime = 8
	s.WallRun.JumpForce = 20
	s.WallRun.CameraTilt = 15
	s.WallRun.EndMomentumKick = 0.8

	s.Grapple.Enabled = true
	s.Grapple.Range = 50
	s.Grapple.Cooldown = 1
	s.Grapple.PullForce = 30
	s.Grapple.GravityReduction = 0.5

	s.Weapon.ShootingEnabled = true
	s.Weapon.BulletRange = 9999
	s.Weapon.GunGravity = 12
	s.Weapon.GunPopForce = 2
	s.Weapon.GunRespawnTime = 1
	s.Weapon.GunDropCooldown = 1
	s.Weapon.Recoil = Recoil{
		Enabled:       true,
		Vertical:      0.3,
		Horizontal:    0,
		RecoverySpeed: 8,
		Duration:      0.15,
		Standing:      1,
		Crouching:     0.7,
		Moving:        1.3,
	}

	s.Targets.Count = 10
	s.Targets.Minimum = 10
	s.Targets.Size = 0.5

	s.Game.CasualEnabled = true
	s.Game.TimedEnabled = true
	s.Game.TimerDuration = 60
	s.Game.ScoreMultiplier = 1
	s.Game.PointsPerTarget = 100
	s.Game.FOV = 90
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Keys missing from the file keep their default values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	} else if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}
	return Decode(data)
}

// Decode decodes TOML encoded settings on top of the defaults.
func Decode(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	return s, nil
}

// Fingerprint returns a hash of the encoded settings. Two sessions with the same fingerprint ran with
// identical tuning.
func (s Settings) Fingerprint() uint64 {
	data, err := toml.Marshal(s)
	if err != nil {
		return 0
	}
	return xxh3.Hash(data)
}
