package service

import "time"

// SystemClock is the process wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
