package util

import "time"

// Clock supplies the block marker for simulated listings when the caller
// does not give one.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Used in tests.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
