package parkour

import (
	"context"
	"time"

	"github.com/oomph-ac/parkour/player/event"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Stats counts what happened in a game. The counters are updated from the frame loop and may be read
// from any goroutine.
type Stats struct {
	Frames        atomic.Uint64
	DroppedFrames atomic.Uint64
	// AvgTickMicros is the average time in microseconds the last frames took to run.
	AvgTickMicros atomic.Uint64

	Shots atomic.Uint64
	Hits  atomic.Uint64

	Jumps       atomic.Uint64
	Dashes      atomic.Uint64
	Slides      atomic.Uint64
	WallRuns    atomic.Uint64
	Grapples    atomic.Uint64
	Corrections atomic.Uint64
	Rejected    atomic.Uint64
}

// HandleEvent counts the movement events the player emits.
func (s *Stats) HandleEvent(e event.Event) {
	switch e.(type) {
	case *event.JumpEvent:
		s.Jumps.Inc()
	case *event.DashEvent:
		s.Dashes.Inc()
	case *event.SlideStartEvent:
		s.Slides.Inc()
	case *event.WallRunStartEvent:
		s.WallRuns.Inc()
	case *event.GrappleAttachEvent:
		s.Grapples.Inc()
	case *event.CorrectionEvent:
		s.Corrections.Inc()
	case *event.InputRejectedEvent:
		s.Rejected.Inc()
	}
}

// Fields returns the current value of every counter.
func (s *Stats) Fields() logrus.Fields {
	return logrus.Fields{
		"frames":      s.Frames.Load(),
		"dropped":     s.DroppedFrames.Load(),
		"avg_tick_us": s.AvgTickMicros.Load(),
		"shots":       s.Shots.Load(),
		"hits":        s.Hits.Load(),
		"jumps":       s.Jumps.Load(),
		"dashes":      s.Dashes.Load(),
		"slides":      s.Slides.Load(),
		"wall_runs":   s.WallRuns.Load(),
		"grapples":    s.Grapples.Load(),
		"corrections": s.Corrections.Load(),
		"rejected":    s.Rejected.Load(),
	}
}

// Report logs the counters every interval until ctx is cancelled.
func (s *Stats) Report(ctx context.Context, log *logrus.Logger, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			log.WithFields(s.Fields()).Info("stats")
		}
	}
}
