//go:build js
// +build js

package web

import "github.com/gopherjs/gopherjs/js"

// FrameScheduler paces the loop with requestAnimationFrame.
type FrameScheduler struct {
	AnimationFrameID int
	closed           bool
}

// NewFrameScheduler returns a scheduler bound to the window.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Now returns performance.now(), the clock rAF timestamps use.
func (s *FrameScheduler) Now() float64 {
	return js.Global.Get("performance").Call("now").Float()
}

// RequestFrame runs fn on the next animation frame.
func (s *FrameScheduler) RequestFrame(fn func(now float64)) {
	if s.closed {
		return
	}
	s.AnimationFrameID = js.Global.Call("requestAnimationFrame", func(ts float64) {
		fn(ts)
	}).Int()
}

// Close cancels the pending frame and refuses further requests.
func (s *FrameScheduler) Close() {
	s.closed = true
	js.Global.Call("cancelAnimationFrame", s.AnimationFrameID)
}
