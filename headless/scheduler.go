package headless

import "time"

// tickScheduler hands the armed frame to the runner's ticker.
type tickScheduler struct {
	start   time.Time
	pending func(float64)
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{start: time.Now()}
}

func (s *tickScheduler) Now() float64 {
	return float64(time.Since(s.start).Nanoseconds()) / 1e6
}

func (s *tickScheduler) RequestFrame(fn func(now float64)) {
	s.pending = fn
}

func (s *tickScheduler) fire() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn(s.Now())
	return true
}
