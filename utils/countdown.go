package utils

// Countdown is a timer that counts down to zero and saturates there. A countdown that has reached
// zero is considered elapsed.
type Countdown struct {
	remaining float32
}

// NewCountdown returns a countdown that starts with d seconds remaining.
func NewCountdown(d float32) Countdown {
	c := Countdown{}
	c.Reset(d)
	return c
}

// Reset restarts the countdown with d seconds remaining. Negative durations clear the countdown.
func (c *Countdown) Reset(d float32) {
	if d < 0 || d != d {
		d = 0
	}
	c.remaining = d
}

// Clear sets the countdown to zero.
func (c *Countdown) Clear() {
	c.remaining = 0
}

// Tick subtracts dt from the countdown without going below zero.
func (c *Countdown) Tick(dt float32) {
	if dt <= 0 {
		return
	}
	c.remaining -= dt
	if c.remaining < 0 {
		c.remaining = 0
	}
}

// Remaining returns the time left on the countdown.
func (c Countdown) Remaining() float32 {
	return c.remaining
}

// Active returns true while there is time left on the countdown.
func (c Countdown) Active() bool {
	return c.remaining > 0
}

// Elapsed returns true once the countdown has reached zero.
func (c Countdown) Elapsed() bool {
	return c.remaining <= 0
}

// Stopwatch counts elapsed time upwards until it is reset.
type Stopwatch struct {
	elapsed float32
}

// Tick adds dt to the stopwatch.
func (s *Stopwatch) Tick(dt float32) {
	if dt > 0 {
		s.elapsed += dt
	}
}

// Reset sets the stopwatch back to zero.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
}

// Elapsed returns the time counted since the last reset.
func (s Stopwatch) Elapsed() float32 {
	return s.elapsed
}
