package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/parkour"
	"github.com/oomph-ac/parkour/player/event"
	"github.com/oomph-ac/parkour/session"
	"github.com/oomph-ac/parkour/settings"
	"github.com/oomph-ac/parkour/world"
	"github.com/sirupsen/logrus"
)

var (
	settingsPath = flag.String("settings", "settings.toml", "settings file, created with the defaults if missing")
	mapPath      = flag.String("map", "", "map file, the built-in training map is used if empty")
	mode         = flag.String("mode", "timed", "game mode: casual or timed")
	laps         = flag.Int("laps", 3, "amount of times the bot runs the course")
	tickRate     = flag.Int("tps", 60, "frames per second")
	recordPath   = flag.String("record", "", "write the input of the run to this file")
	replayPath   = flag.String("replay", "", "replay a recording instead of running the bot")
	eventsPath   = flag.String("events", "", "write telemetry as JSON lines to this file")
	debug        = flag.Bool("debug", false, "log the movement simulation")
)

// The following program runs the movement core headless: a scripted bot runs the training course while
// telemetry is logged.
func main() {
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.DebugLevel

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(time.Second * 5)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	s := loadSettings(log)
	w := loadWorld(log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	watcher, err := settings.NewWatcher(*settingsPath)
	if err != nil {
		log.Warnf("settings will not be reloaded: %v", err)
	} else {
		defer watcher.Close()
	}

	var sinks event.MultiSink
	if *eventsPath != "" {
		f, err := os.Create(*eventsPath)
		if err != nil {
			log.Fatalf("unable to create telemetry file: %v", err)
		}
		defer f.Close()
		js := event.NewJSONSink(f, log)
		defer js.Close()
		sinks = append(sinks, js)
	}
	sinks = append(sinks, event.NewLogSink(log, logrus.DebugLevel))

	for lap := 0; lap < *laps; lap++ {
		if watcher != nil {
			s = drainUpdates(log, watcher, s)
		}
		g, err := parkour.New(log, w, s)
		if err != nil {
			log.Fatalf("unable to create game: %v", err)
		}
		g.Handle(sinks)
		g.Player().SetDebug(*debug)

		statsCtx, stopStats := context.WithCancel(ctx)
		go g.Stats().Report(statsCtx, log, time.Second*5)

		err = runLap(ctx, log, g, s)
		stopStats()
		if err != nil {
			log.Errorf("lap %d stopped: %v", lap+1, err)
			return
		}
		log.WithFields(g.Stats().Fields()).Infof("lap %d done", lap+1)
		if *replayPath != "" {
			return
		}
	}
}

func runLap(ctx context.Context, log *logrus.Logger, g *parkour.Game, s settings.Settings) error {
	m := session.ModeTimed
	if *mode == "casual" {
		m = session.ModeCasual
	}
	if err := g.Start(m); err != nil {
		return err
	}
	defer g.Session().ReturnToMenu()

	var src parkour.InputSource = parkour.CourseScript()
	if *replayPath != "" {
		rec, err := session.LoadRecording(*replayPath)
		if err != nil {
			return err
		}
		replay, err := session.NewReplay(rec, s)
		if err != nil {
			return err
		}
		log.Infof("replaying %d frames recorded on %s", replay.Len(), rec.Map)
		src = replay
	} else if *recordPath != "" {
		f, err := os.Create(*recordPath)
		if err != nil {
			return err
		}
		defer f.Close()
		rec, err := session.NewRecorder(log, f, s, g.World().Name())
		if err != nil {
			return err
		}
		g.Record(rec)
		defer func() {
			if err := rec.Close(); err != nil {
				log.Errorf("unable to finish recording: %v", err)
			}
		}()
	}

	if err := g.Run(ctx, src, *tickRate); err != nil {
		return err
	}
	if res, ok := g.Session().End(); ok {
		log.Infof("score: %d, accuracy: %.1f%%", res.Score, res.Accuracy)
	}
	return nil
}

func loadSettings(log *logrus.Logger) settings.Settings {
	if _, err := os.Stat(*settingsPath); os.IsNotExist(err) {
		if err := settings.SaveDefault(*settingsPath); err != nil {
			log.Fatalf("unable to save default settings: %v", err)
		}
		log.Infof("created default settings at %s", *settingsPath)
	}
	s, err := settings.Load(*settingsPath)
	if err != nil {
		log.Fatalf("unable to load settings: %v", err)
	}
	return s
}

func loadWorld(log *logrus.Logger) *world.World {
	if *mapPath == "" {
		return world.Default()
	}
	w, err := world.Load(*mapPath)
	if err != nil {
		log.Fatalf("unable to load map: %v", err)
	}
	return w
}

// drainUpdates returns the most recent settings reloaded by the watcher. Settings only change between
// laps, never while a game is running.
func drainUpdates(log *logrus.Logger, w *settings.Watcher, current settings.Settings) settings.Settings {
	for {
		select {
		case s, ok := <-w.Updates:
			if !ok {
				return current
			}
			log.Info("settings reloaded")
			current = s
		case err, ok := <-w.Errors:
			if !ok {
				return current
			}
			log.Warnf("unable to reload settings: %v", err)
		default:
			return current
		}
	}
}
