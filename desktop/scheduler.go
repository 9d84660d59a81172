//go:build !js
// +build !js

package desktop

import "time"

// frameScheduler fulfils frame requests from ebiten's Draw, which runs
// once per display refresh.
type frameScheduler struct {
	start   time.Time
	pending func(float64)
}

func newFrameScheduler() *frameScheduler {
	return &frameScheduler{start: time.Now()}
}

// Now returns milliseconds since the scheduler was created.
func (s *frameScheduler) Now() float64 {
	return float64(time.Since(s.start).Nanoseconds()) / 1e6
}

// RequestFrame arms fn for the next refresh.
func (s *frameScheduler) RequestFrame(fn func(now float64)) {
	s.pending = fn
}

// fire runs the armed callback, if any.
func (s *frameScheduler) fire() {
	fn := s.pending
	if fn == nil {
		return
	}
	s.pending = nil
	fn(s.Now())
}
