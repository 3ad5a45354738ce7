package settings

import (
	"strings"

	"github.com/oomph-ac/parkour/oerror"
)

const (
	MinTargetCount = 1
	MaxTargetCount = 50
)

// Validate checks the settings for values the game cannot run with. Values that are legal but unusual
// are returned as warnings instead.
func (s Settings) Validate() (warnings []string, err error) {
	var issues []string
	check := func(ok bool, msg string) {
		if !ok {
			issues = append(issues, msg)
		}
	}

	check(s.Player.Gravity >= 0, "player.gravity cannot be negative")
	check(s.Player.JumpHeight >= 0, "player.jump_height cannot be negative")
	check(s.Player.SprintMultiplier >= 1, "player.sprint_multiplier must be at least 1")
	check(s.Player.Width > 0 && s.Player.Height > 0, "player.width and player.height must be positive")
	check(s.Movement.MaxSpeed > 0, "movement.max_speed must be positive")
	check(s.Movement.Acceleration >= 0, "movement.acceleration cannot be negative")
	check(s.Movement.Friction >= 0, "movement.friction cannot be negative")
	check(s.Movement.MaxStep > 0, "movement.max_step must be positive")
	check(s.Jump.CutMultiplier >= 0 && s.Jump.CutMultiplier <= 1, "jump.cut_multiplier must be between 0 and 1")
	check(s.Jump.SpeedBoost >= 1, "jump.speed_boost must be at least 1")
	check(s.Air.ControlMultiplier >= 0, "air.control_multiplier cannot be negative")
	check(s.Slide.Friction >= 0, "slide.friction cannot be negative")
	check(s.Dash.Cooldown >= 0, "dash.cooldown cannot be negative")
	check(s.WallRun.MinSpeed >= 0, "wall_run.min_speed cannot be negative")
	check(s.Grapple.GravityReduction >= 0 && s.Grapple.GravityReduction <= 1, "grapple.gravity_reduction must be between 0 and 1")
	check(!s.Grapple.Enabled || s.Grapple.Range > 0, "grapple.range must be positive when the grapple is enabled")
	check(s.Weapon.Recoil.Vertical >= 0, "weapon.recoil.vertical cannot be negative")
	check(s.Targets.Count >= MinTargetCount && s.Targets.Count <= MaxTargetCount, "targets.count must be between 1 and 50")
	check(s.Targets.Minimum >= 0 && s.Targets.Minimum <= MaxTargetCount, "targets.minimum must be between 0 and 50")
	check(s.Game.TimerDuration > 0, "game.timer_duration must be positive")

	if s.Game.FOV < 60 || s.Game.FOV > 120 {
		warnings = append(warnings, "game.fov outside recommended range (60-120)")
	}
	if s.Movement.MaxStep > s.Player.Width {
		warnings = append(warnings, "movement.max_step is wider than the player, thin walls may be skipped")
	}
	if !s.Game.CasualEnabled && !s.Game.TimedEnabled {
		warnings = append(warnings, "both game modes are disabled")
	}

	if len(issues) > 0 {
		return warnings, oerror.New("invalid settings: %s", strings.Join(issues, "; "))
	}
	return warnings, nil
}
