package session

import (
	"io"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/player/event"
	"github.com/oomph-ac/parkour/settings"
	"github.com/oomph-ac/parkour/target"
	"github.com/sirupsen/logrus"
)

const testDelta = float32(1) / 60

type mockPlayer struct {
	teleports []mgl32.Vec3
}

func (m *mockPlayer) Teleport(pos mgl32.Vec3) {
	m.teleports = append(m.teleports, pos)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestSession(s settings.Settings) (*Session, *mockPlayer, *target.Pool) {
	log := testLogger()
	pool := target.NewPool(log, "session_test", cube.Box(10, 1, -5, 10, 5, 5), s)
	p := &mockPlayer{}
	return New(log, p, pool, s), p, pool
}

func TestStartTimedResetsGame(t *testing.T) {
	s := settings.DefaultSettings()
	sess, p, pool := newTestSession(s)
	var started []*event.GameModeStartedEvent
	sess.Handle(event.SinkFunc(func(e event.Event) {
		if ev, ok := e.(*event.GameModeStartedEvent); ok {
			started = append(started, ev)
		}
	}))

	if err := sess.Start(ModeTimed); err != nil {
		t.Fatalf("unable to start timed game: %v", err)
	}
	if sess.Mode() != ModeTimed || sess.Remaining() != s.Game.TimerDuration {
		t.Fatalf("expected a fresh timed game, got mode %s with %v remaining", sess.Mode(), sess.Remaining())
	}
	if pool.Len() != s.Targets.Count {
		t.Fatalf("expected %d targets, got %d", s.Targets.Count, pool.Len())
	}
	if len(p.teleports) != 1 || p.teleports[0] != (mgl32.Vec3{15, 11, 0}) {
		t.Fatalf("expected the player to be moved to the start position, got %v", p.teleports)
	}
	if len(started) != 1 || started[0].Mode != "timed" || started[0].SessionID != sess.ID().String() {
		t.Fatalf("expected a started event for the game, got %+v", started)
	}
	if err := sess.Start(ModeCasual); err == nil {
		t.Fatalf("expected starting a second game to fail")
	}
}

func TestScoringAndAccuracy(t *testing.T) {
	s := settings.DefaultSettings()
	s.Game.ScoreMultiplier = 1.5
	sess, _, _ := newTestSession(s)

	sess.RegisterShot(true)
	if sess.Shots() != 0 {
		t.Fatalf("expected shots in the menu to be ignored")
	}

	if err := sess.Start(ModeCasual); err != nil {
		t.Fatalf("unable to start casual game: %v", err)
	}
	sess.RegisterShot(true)
	sess.RegisterShot(false)
	sess.RegisterShot(true)
	sess.RegisterShot(false)

	if sess.Score() != 300 {
		t.Fatalf("expected a score of 300, got %d", sess.Score())
	}
	if sess.Accuracy() != 50 {
		t.Fatalf("expected 50%% accuracy, got %v", sess.Accuracy())
	}

	res, ok := sess.End()
	if !ok || res.Score != 300 || res.Shots != 4 || res.Hits != 2 || res.Mode != ModeCasual {
		t.Fatalf("unexpected result %+v", res)
	}
	if sess.Mode() != ModeMenu {
		t.Fatalf("expected a casual game to return to the menu, got %s", sess.Mode())
	}
}

func TestTimedGameEnds(t *testing.T) {
	s := settings.DefaultSettings()
	s.Game.TimerDuration = 1
	sess, p, pool := newTestSession(s)
	var finished []*event.GameModeFinishedEvent
	sess.Handle(event.SinkFunc(func(e event.Event) {
		if ev, ok := e.(*event.GameModeFinishedEvent); ok {
			finished = append(finished, ev)
		}
	}))

	if err := sess.Start(ModeTimed); err != nil {
		t.Fatalf("unable to start timed game: %v", err)
	}
	sess.RegisterShot(true)

	var ended int
	for i := 0; i < 70; i++ {
		if sess.Update(testDelta) {
			ended++
		}
	}
	if ended != 1 {
		t.Fatalf("expected the game to end exactly once, ended %d times", ended)
	}
	if sess.Mode() != ModeResults {
		t.Fatalf("expected the results to be shown, got %s", sess.Mode())
	}
	if pool.Len() != 0 {
		t.Fatalf("expected targets to be cleared at the end of the game")
	}
	res, ok := sess.Result()
	if !ok || res.Accuracy != 100 || res.Score != 100 || res.Fingerprint != s.Fingerprint() {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(finished) != 1 || finished[0].Score != 100 {
		t.Fatalf("expected a single finished event, got %+v", finished)
	}

	sess.ReturnToMenu()
	if sess.Mode() != ModeMenu || len(p.teleports) != 2 {
		t.Fatalf("expected to return to the menu at the start position")
	}
}

func TestTargetsRespawnDuringGame(t *testing.T) {
	s := settings.DefaultSettings()
	sess, _, pool := newTestSession(s)
	if err := sess.Start(ModeCasual); err != nil {
		t.Fatalf("unable to start casual game: %v", err)
	}
	for _, tg := range pool.Targets()[:3] {
		pool.Destroy(tg.ID)
	}
	sess.Update(testDelta)
	if pool.Len() != s.Targets.Minimum {
		t.Fatalf("expected targets to be topped up to %d, got %d", s.Targets.Minimum, pool.Len())
	}
}

func TestDisabledModes(t *testing.T) {
	s := settings.DefaultSettings()
	s.Game.CasualEnabled = false
	s.Game.TimedEnabled = false
	sess, _, _ := newTestSession(s)

	for _, m := range []Mode{ModeCasual, ModeTimed, ModeMenu, ModeResults} {
		if err := sess.Start(m); err == nil {
			t.Fatalf("expected starting a %s game to fail", m)
		}
	}
	if _, ok := sess.End(); ok {
		t.Fatalf("expected ending without a game to fail")
	}
}
