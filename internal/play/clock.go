package play

import "time"

// Clock measures song time. Time spent paused is not counted, so nothing
// expires while the game is paused.
type Clock struct {
	wall     func() time.Time
	start    time.Time
	pausedAt time.Time
	paused   bool
	pauses   time.Duration
}

// NewClock creates a clock reading from wall, or from time.Now if wall is nil.
func NewClock(wall func() time.Time) *Clock {
	if nil == wall {
		wall = time.Now
	}
	return &Clock{wall: wall}
}

// Start resets the clock so that song time zero is delay from now.
func (c *Clock) Start(delay time.Duration) {
	c.start = c.wall().Add(delay)
	c.paused = false
	c.pauses = 0
}

func (c *Clock) Now() time.Duration {
	now := c.wall()
	if c.paused {
		now = c.pausedAt
	}
	return now.Sub(c.start) - c.pauses
}

func (c *Clock) Paused() bool {
	return c.paused
}

// Pause freezes the clock. It reports false if the clock was already paused.
func (c *Clock) Pause() bool {
	if c.paused {
		return false
	}
	c.paused = true
	c.pausedAt = c.wall()
	return true
}

// Resume restarts a paused clock. It reports false if the clock was running.
func (c *Clock) Resume() bool {
	if !c.paused {
		return false
	}
	c.paused = false
	c.pauses += c.wall().Sub(c.pausedAt)
	return true
}

// TotalPause is the time spent paused so far, excluding a pause in progress.
func (c *Clock) TotalPause() time.Duration {
	return c.pauses
}
