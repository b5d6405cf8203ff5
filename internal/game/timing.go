package game

import "time"

// Limiter caps the frame rate by sleeping out the rest of each frame.
type Limiter struct {
	frame time.Duration
}

// NewLimiter returns a limiter for fps frames per second. fps <= 0 means no
// limit.
func NewLimiter(fps int) Limiter {
	if fps <= 0 {
		return Limiter{}
	}
	return Limiter{frame: time.Second / time.Duration(fps)}
}

// Frame returns the frame budget, zero when unlimited.
func (l Limiter) Frame() time.Duration {
	return l.frame
}

// Wait sleeps for what is left of the frame that started at start.
func (l Limiter) Wait(start, now time.Time, sleep func(time.Duration)) {
	if l.frame == 0 {
		return
	}
	if left := l.frame - now.Sub(start); left > 0 {
		sleep(left)
	}
}

// FPSCounter measures frames per second over one second windows.
type FPSCounter struct {
	since  time.Time
	frames int
}

// NewFPSCounter starts counting at now.
func NewFPSCounter(now time.Time) *FPSCounter {
	return &FPSCounter{since: now}
}

// Tick records a frame. Once a second has passed it returns the rate and
// starts a new window.
func (c *FPSCounter) Tick(now time.Time) (float64, bool) {
	c.frames++
	elapsed := now.Sub(c.since)
	if elapsed < time.Second {
		return 0, false
	}
	rate := float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.since = now
	return rate, true
}
