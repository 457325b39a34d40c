package main

import "time"

// wallCalendar maps wall-clock time onto day numbers of a fixed
// length. Day numbers are derived from the Unix epoch, so they are
// stable across restarts without any persisted anchor.
type wallCalendar struct {
	dayLength time.Duration
	now       func() time.Time
}

func newWallCalendar(dayLengthSeconds int) *wallCalendar {
	return &wallCalendar{
		dayLength: time.Duration(dayLengthSeconds) * time.Second,
		now:       time.Now,
	}
}

func (c *wallCalendar) CurrentDay() int {
	return int(c.now().Unix() / int64(c.dayLength.Seconds()))
}

func (c *wallCalendar) SecondsUntilNextDay() float64 {
	elapsed := c.now().Unix() % int64(c.dayLength.Seconds())
	return float64(int64(c.dayLength.Seconds()) - elapsed)
}
