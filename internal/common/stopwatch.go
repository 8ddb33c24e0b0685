package common

import (
	"time"
)

// This stopwatch keeps track of time. You can set a timeout for it,
// make it start counting time, and ask it if the timeout has been reached
type Stopwatch struct {
	Timeout   time.Duration
	startTime time.Time
	Running   bool
	clock     Clock
}

func NewStopwatch(timeout time.Duration, clock Clock) Stopwatch {
	return Stopwatch{Timeout: timeout, clock: clock}
}

func (s *Stopwatch) Start() {
	s.Running = true
	s.startTime = s.clock.Now()
}

func (s *Stopwatch) Stop() {
	s.Running = false
}

// Time elapsed since the last call to Start
func (s *Stopwatch) Elapsed() time.Duration {
	return s.clock.Now().Sub(s.startTime)
}

// Report if the timeout has been reached, together with the time
// elapsed since that happened.
// Note that if the duration is negative, the timeout still
// has not been reached
func (s *Stopwatch) Stopped() (bool, time.Duration) {
	over := s.Elapsed() - s.Timeout
	return over >= 0, over
}
