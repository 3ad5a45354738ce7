package parkour

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/oerror"
	"github.com/oomph-ac/parkour/player"
	"github.com/oomph-ac/parkour/player/event"
	"github.com/oomph-ac/parkour/session"
	"github.com/oomph-ac/parkour/settings"
	"github.com/oomph-ac/parkour/target"
	"github.com/oomph-ac/parkour/utils"
	"github.com/oomph-ac/parkour/weapon"
	"github.com/oomph-ac/parkour/world"
	"github.com/sirupsen/logrus"
)

// tickTimeSamples is the amount of frames the average tick time is computed over.
const tickTimeSamples = 120

// Game ties a player to the map it plays on, its weapon, the targets and the game session.
type Game struct {
	log      *logrus.Logger
	settings settings.Settings

	world   *world.World
	player  *player.Player
	targets *target.Pool
	weapon  *weapon.Weapon
	session *session.Session

	stats     *Stats
	tickTimes *utils.CircularQueue[time.Duration]
	recorder  *session.Recorder
}

// FrameResult is what happened during a single frame besides the movement of the player.
type FrameResult struct {
	// Fired is true if a shot was fired on this frame.
	Fired bool
	Shot  weapon.ShotResult

	// KickPitch and KickYaw are the camera changes in degrees the weapon recoil applies on this frame.
	KickPitch, KickYaw float32

	// GameEnded is true on the frame a timed game ran out of time.
	GameEnded bool
	// Dropped is true if the frame panicked and was dropped.
	Dropped bool
}

// New creates a game on the world passed. Settings that cannot be played with return an error, unusual
// settings are logged as warnings.
func New(log *logrus.Logger, w *world.World, s settings.Settings) (*Game, error) {
	if w == nil {
		return nil, oerror.New("game needs a world")
	}
	warnings, err := s.Validate()
	if err != nil {
		return nil, err
	}
	for _, warning := range warnings {
		log.Warnf("settings: %s", warning)
	}

	g := &Game{
		log:      log,
		settings: s,
		world:    w,
		stats:    &Stats{},

		tickTimes: utils.NewCircularQueue[time.Duration](tickTimeSamples),
	}
	g.player = player.New(log, w, s, s.Player.StartPos.Vec3())
	g.targets = target.NewPool(log, w.Name(), w.TargetVolume(), s)
	g.weapon = weapon.New(log, w, g.targets, s)
	g.session = session.New(log, g.player, g.targets, s)
	g.Handle(nil)
	return g, nil
}

// Handle sets the sink receiving the events of every system in the game. The game statistics always
// receive the events as well.
func (g *Game) Handle(sink event.Sink) {
	sinks := event.MultiSink{g.stats}
	if sink != nil {
		sinks = append(sinks, sink)
	}
	g.player.Handle(sinks)
	g.targets.Handle(sinks)
	g.weapon.Handle(sinks)
	g.session.Handle(sinks)
}

// Record writes the input of every following frame to r. Passing nil stops recording without closing
// the previous recorder.
func (g *Game) Record(r *session.Recorder) {
	g.recorder = r
}

func (g *Game) Player() *player.Player {
	return g.player
}

func (g *Game) Weapon() *weapon.Weapon {
	return g.weapon
}

func (g *Game) Targets() *target.Pool {
	return g.targets
}

func (g *Game) Session() *session.Session {
	return g.session
}

func (g *Game) World() *world.World {
	return g.world
}

func (g *Game) Stats() *Stats {
	return g.stats
}

func (g *Game) Settings() settings.Settings {
	return g.settings
}

// Start starts a new game in the mode passed.
func (g *Game) Start(mode session.Mode) error {
	return g.session.Start(mode)
}

// Tick runs a single frame. The player only moves while a game is being played. A frame that panics is
// reported, logged and dropped, leaving the game usable for the next frame.
func (g *Game) Tick(f session.Frame) (res FrameResult) {
	defer func() {
		if v := recover(); v != nil {
			g.log.Errorf("Tick() panic: %v", v)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("mode", g.session.Mode().String())
				scope.SetTag("player_mode", g.player.Mode().String())
			})
			hub.Recover(oerror.New("%v", v))
			hub.Flush(time.Second * 5)

			g.stats.DroppedFrames.Inc()
			res = FrameResult{Dropped: true}
		}
	}()

	if g.recorder != nil {
		g.recorder.Record(f)
	}
	g.stats.Frames.Inc()
	if !g.session.Mode().Playing() {
		return res
	}

	g.player.Tick(f.Delta, f.Input, f.Camera)

	dt := f.Delta
	if !game.IsFinite(dt) || dt <= 0 {
		return res
	}
	dt = min(dt, game.MaxFrameDelta)

	if f.Input.DropGunPressed && g.weapon.Equipped() && g.player.TryGunDrop() {
		g.weapon.Drop(g.player.EyePosition(), g.player.Velocity())
	}
	if f.Input.FirePressed {
		res.Shot, res.KickPitch, res.KickYaw, res.Fired = g.weapon.Shoot(g.player.EyePosition(), g.player.Camera().Forward, weapon.Stance{
			Sliding: g.player.Sliding(),
			Speed:   game.HorizontalSpeed(g.player.Velocity()),
		})
		if res.Fired {
			g.session.RegisterShot(res.Shot.Hit)
			g.stats.Shots.Inc()
			if res.Shot.Hit {
				g.stats.Hits.Inc()
			}
		}
	}

	pitch, yaw := g.weapon.Update(dt)
	res.KickPitch += pitch
	res.KickYaw += yaw
	res.GameEnded = g.session.Update(dt)
	return res
}
