package session

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/parkour/oerror"
	"github.com/oomph-ac/parkour/player/event"
	"github.com/oomph-ac/parkour/settings"
	"github.com/oomph-ac/parkour/target"
	"github.com/oomph-ac/parkour/utils"
	"github.com/sirupsen/logrus"
)

// Mode is the game mode a session is in.
type Mode uint8

const (
	ModeMenu Mode = iota
	ModeCasual
	ModeTimed
	// ModeResults is entered when a timed game ends, and left by returning to the menu.
	ModeResults
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeCasual:
		return "casual"
	case ModeTimed:
		return "timed"
	case ModeResults:
		return "results"
	}
	return "unknown"
}

// Playing returns true if the mode is one the player can move and shoot in.
func (m Mode) Playing() bool {
	return m == ModeCasual || m == ModeTimed
}

// Teleporter is implemented by the player of a session.
type Teleporter interface {
	Teleport(pos mgl32.Vec3)
}

// Result is the summary of a finished game.
type Result struct {
	Mode      Mode
	SessionID uuid.UUID
	Score     int
	Shots     int
	Hits      int
	// Accuracy is the percentage of shots that hit a target.
	Accuracy float32
	Duration float32
	// Fingerprint is the fingerprint of the settings the game was played with.
	Fingerprint uint64
}

// Session holds the game state around a player: the current mode, its timer and score.
type Session struct {
	log      *logrus.Logger
	sink     event.Sink
	settings settings.Settings

	player  Teleporter
	targets *target.Pool

	id      uuid.UUID
	mode    Mode
	timer   utils.Countdown
	elapsed utils.Stopwatch

	score int
	shots int
	hits  int

	result    Result
	hasResult bool
}

// New creates a session in the menu.
func New(log *logrus.Logger, p Teleporter, targets *target.Pool, s settings.Settings) *Session {
	return &Session{
		log:      log,
		sink:     event.NopSink{},
		settings: s,
		player:   p,
		targets:  targets,
	}
}

// Handle sets the sink receiving the events of the session.
func (s *Session) Handle(sink event.Sink) {
	if sink == nil {
		sink = event.NopSink{}
	}
	s.sink = sink
}

// Mode returns the current game mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// ID returns the ID of the current or last game.
func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Shots() int {
	return s.shots
}

func (s *Session) Hits() int {
	return s.hits
}

// Remaining returns the time left in a timed game.
func (s *Session) Remaining() float32 {
	if s.mode != ModeTimed {
		return 0
	}
	return s.timer.Remaining()
}

// Accuracy returns the percentage of shots fired in the current game that hit a target.
func (s *Session) Accuracy() float32 {
	if s.shots == 0 {
		return 0
	}
	return float32(s.hits) / float32(s.shots) * 100
}

// Result returns the result of the last finished game.
func (s *Session) Result() (Result, bool) {
	return s.result, s.hasResult
}

// Start starts a new game in the mode passed. The score is reset, targets are spawned and the player
// is moved to its start position.
func (s *Session) Start(mode Mode) error {
	switch mode {
	case ModeCasual:
		if !s.settings.Game.CasualEnabled {
			return oerror.New("casual mode is disabled")
		}
	case ModeTimed:
		if !s.settings.Game.TimedEnabled {
			return oerror.New("timed mode is disabled")
		}
	default:
		return oerror.New("cannot start a game in %s mode", mode)
	}
	if s.mode.Playing() {
		return oerror.New("a %s game is already running", s.mode)
	}

	s.targets.Clear()
	if err := s.targets.Spawn(s.settings.Targets.Count); err != nil {
		return err
	}

	s.id = uuid.New()
	s.mode = mode
	s.score, s.shots, s.hits = 0, 0, 0
	s.elapsed.Reset()
	s.timer.Clear()
	if mode == ModeTimed {
		s.timer.Reset(s.settings.Game.TimerDuration)
	}
	s.hasResult = false
	s.player.Teleport(s.settings.Player.StartPos.Vec3())

	s.sink.HandleEvent(&event.GameModeStartedEvent{Mode: mode.String(), SessionID: s.id.String()})
	s.log.Infof("started %s game %s", mode, s.id)
	return nil
}

// RegisterShot records a shot fired during a game. Shots outside of a game are ignored.
func (s *Session) RegisterShot(hit bool) {
	if !s.mode.Playing() {
		return
	}
	s.shots++
	if hit {
		s.hits++
		s.score += int(float32(s.settings.Game.PointsPerTarget) * s.settings.Game.ScoreMultiplier)
	}
}

// Update advances the game by dt seconds, ending a timed game once its timer runs out. It returns true
// on the frame a game ended.
func (s *Session) Update(dt float32) bool {
	if !s.mode.Playing() {
		return false
	}
	s.elapsed.Tick(dt)
	s.targets.Respawn()
	if s.mode != ModeTimed {
		return false
	}

	s.timer.Tick(dt)
	if s.timer.Elapsed() {
		s.End()
		return true
	}
	return false
}

// End ends the running game and returns its result. Casual games return to the menu, timed games show
// their results until ReturnToMenu is called.
func (s *Session) End() (Result, bool) {
	if !s.mode.Playing() {
		return Result{}, false
	}
	s.targets.Clear()

	s.result = Result{
		Mode:        s.mode,
		SessionID:   s.id,
		Score:       s.score,
		Shots:       s.shots,
		Hits:        s.hits,
		Accuracy:    s.Accuracy(),
		Duration:    s.elapsed.Elapsed(),
		Fingerprint: s.settings.Fingerprint(),
	}
	s.hasResult = true

	s.sink.HandleEvent(&event.GameModeFinishedEvent{
		Mode:      s.mode.String(),
		SessionID: s.id.String(),
		Score:     s.score,
		Shots:     s.shots,
		Hits:      s.hits,
		Accuracy:  s.result.Accuracy,
	})
	s.log.Infof("%s game %s ended: score=%d accuracy=%.1f%%", s.mode, s.id, s.score, s.result.Accuracy)

	if s.mode == ModeTimed {
		s.mode = ModeResults
	} else {
		s.mode = ModeMenu
	}
	return s.result, true
}

// ReturnToMenu ends any running game and moves the player back to its start position.
func (s *Session) ReturnToMenu() {
	s.End()
	s.mode = ModeMenu
	s.player.Teleport(s.settings.Player.StartPos.Vec3())
}
