package parkour

import (
	"context"
	"time"

	"github.com/oomph-ac/parkour/oerror"
	"github.com/oomph-ac/parkour/session"
)

// InputSource produces the input of each frame. NextFrame is passed the time step the runner wants to
// use, and returns false once it has no more input.
type InputSource interface {
	NextFrame(dt float32) (session.Frame, bool)
}

// CameraKicker is implemented by input sources that own a camera the weapon recoil should move.
type CameraKicker interface {
	Kick(pitch, yaw float32)
}

// Run ticks the game tickRate times per second with input from src until src runs out of input or ctx
// is cancelled.
func (g *Game) Run(ctx context.Context, src InputSource, tickRate int) error {
	if tickRate <= 0 {
		return oerror.New("tick rate must be positive, got %d", tickRate)
	}
	interval := time.Second / time.Duration(tickRate)
	dt := float32(interval.Seconds())

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if !g.step(src, dt) {
				return nil
			}
		}
	}
}

// RunAll ticks the game as fast as possible until src runs out of input, returning the amount of frames
// ran. It is used to replay recordings and in tests.
func (g *Game) RunAll(src InputSource, dt float32) int {
	var frames int
	for g.step(src, dt) {
		frames++
	}
	return frames
}

// step runs a single frame with input from src.
func (g *Game) step(src InputSource, dt float32) bool {
	f, ok := src.NextFrame(dt)
	if !ok {
		return false
	}
	start := time.Now()
	res := g.Tick(f)
	g.recordTickTime(time.Since(start))
	if k, ok := src.(CameraKicker); ok && (res.KickPitch != 0 || res.KickYaw != 0) {
		k.Kick(res.KickPitch, res.KickYaw)
	}
	return true
}

// recordTickTime adds the duration of a frame to the rolling tick time average.
func (g *Game) recordTickTime(d time.Duration) {
	_ = g.tickTimes.Append(d)

	var total time.Duration
	for t := range g.tickTimes.Iter() {
		total += t
	}
	g.stats.AvgTickMicros.Store(uint64(total.Microseconds()) / uint64(g.tickTimes.Len()))
}
