// Package input turns polled mouse and touch state into pointer events.
package input

import "github.com/simukka/blackhole/visual"

// TouchID identifies a touch for the lifetime of the contact.
type TouchID int

// Source is the device state read once per update.
type Source interface {
	CursorPosition() (x, y int)
	MouseJustPressed() bool
	MouseJustReleased() bool
	AppendJustPressedTouchIDs(ids []TouchID) []TouchID
	TouchJustReleased(id TouchID) bool
	TouchPosition(id TouchID) (x, y int)
}

// Target receives pointer events. *visual.RenderLoop implements it.
type Target interface {
	PointerDown(p visual.PointerSample)
	PointerMove(p visual.PointerSample)
	PointerUp()
	PointerLeave()
	UserGesture()
}

// Poller tracks the previous state so that moves are only reported when a
// position actually changes. Only the first touch is followed.
type Poller struct {
	lastX, lastY int
	inside       bool

	touchID        TouchID
	touching       bool
	touchX, touchY int
	touchIDs       []TouchID

	gestured bool
}

// Poll reads src and forwards the resulting events to t.
func (p *Poller) Poll(src Source, t Target, width, height int) {
	p.pollMouse(src, t, width, height)
	p.pollTouch(src, t)
}

func sampleAt(x, y int) visual.PointerSample {
	return visual.PointerSample{X: float64(x), Y: float64(y)}
}

func (p *Poller) pollMouse(src Source, t Target, width, height int) {
	x, y := src.CursorPosition()

	if src.MouseJustPressed() {
		t.PointerDown(sampleAt(x, y))
		p.gesture(t)
	}
	if x != p.lastX || y != p.lastY {
		t.PointerMove(sampleAt(x, y))
		p.lastX, p.lastY = x, y
	}
	if src.MouseJustReleased() {
		t.PointerUp()
	}

	inside := x >= 0 && y >= 0 && x < width && y < height
	if p.inside && !inside {
		t.PointerLeave()
	}
	p.inside = inside
}

func (p *Poller) pollTouch(src Source, t Target) {
	if p.touching {
		if src.TouchJustReleased(p.touchID) {
			p.touching = false
			t.PointerUp()
			return
		}
		x, y := src.TouchPosition(p.touchID)
		if x != p.touchX || y != p.touchY {
			p.touchX, p.touchY = x, y
			t.PointerMove(sampleAt(x, y))
		}
		return
	}

	p.touchIDs = src.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) == 0 {
		return
	}
	p.touchID = p.touchIDs[0]
	p.touching = true
	p.touchX, p.touchY = src.TouchPosition(p.touchID)
	t.PointerDown(sampleAt(p.touchX, p.touchY))
	p.gesture(t)
}

// gesture unlocks audio on the first press.
func (p *Poller) gesture(t Target) {
	if p.gestured {
		return
	}
	p.gestured = true
	t.UserGesture()
}
