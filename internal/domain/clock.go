package domain

import "fmt"

// Clock is an hours/minutes/seconds decomposition of a signed number of
// seconds. The sign is carried once; Hours, Minutes and Seconds are always
// non-negative, so a negative total renders as e.g. "-2h30min0sec" rather
// than mixing signs across the parts.
type Clock struct {
	Negative bool
	Hours    int64
	Minutes  int64
	Seconds  int64
}

// ClockFromSeconds decomposes total into a Clock.
func ClockFromSeconds(total int64) Clock {
	c := Clock{}
	if total < 0 {
		c.Negative = true
		total = -total
	}
	c.Hours = total / 3600
	c.Minutes = (total % 3600) / 60
	c.Seconds = total % 60
	return c
}

// String formats the clock as XhYminZsec, with a single leading minus sign
// when negative.
func (c Clock) String() string {
	s := fmt.Sprintf("%dh%dmin%dsec", c.Hours, c.Minutes, c.Seconds)
	if c.Negative {
		return "-" + s
	}
	return s
}
