//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/blackhole/visual"
)

func pointerAt(e *js.Object) visual.PointerSample {
	return visual.PointerSample{X: e.Get("clientX").Float(), Y: e.Get("clientY").Float()}
}

// firstTouch returns the first touch point of a touch event.
func firstTouch(e *js.Object) (visual.PointerSample, bool) {
	touches := e.Get("touches")
	if isMissing(touches) || touches.Length() == 0 {
		return visual.PointerSample{}, false
	}
	return pointerAt(touches.Index(0)), true
}

// SetupInputHandlers wires canvas pointer and touch events, window resize
// and the one-shot audio unlock gesture to loop.
func SetupInputHandlers(canvas *js.Object, loop *visual.RenderLoop) {
	canvas.Call("addEventListener", "mousedown", func(e *js.Object) {
		loop.PointerDown(pointerAt(e))
	})
	canvas.Call("addEventListener", "mousemove", func(e *js.Object) {
		loop.PointerMove(pointerAt(e))
	})
	canvas.Call("addEventListener", "mouseup", func(e *js.Object) {
		loop.PointerUp()
	})
	canvas.Call("addEventListener", "mouseleave", func(e *js.Object) {
		loop.PointerLeave()
	})

	// Touch gestures must not scroll or zoom the page.
	canvas.Call("addEventListener", "touchstart", func(e *js.Object) {
		e.Call("preventDefault")
		if p, ok := firstTouch(e); ok {
			loop.PointerDown(p)
		}
	})
	canvas.Call("addEventListener", "touchmove", func(e *js.Object) {
		e.Call("preventDefault")
		if p, ok := firstTouch(e); ok {
			loop.PointerMove(p)
		}
	})
	canvas.Call("addEventListener", "touchend", func(e *js.Object) {
		loop.PointerUp()
	})

	js.Global.Call("addEventListener", "resize", func() {
		w, h := FitToWindow(canvas)
		loop.Resize(w, h)
	})

	once := map[string]interface{}{"once": true}
	doc := js.Global.Get("document")
	doc.Call("addEventListener", "click", func() { loop.UserGesture() }, once)
	doc.Call("addEventListener", "touchstart", func() { loop.UserGesture() }, once)
}

// FitToWindow sizes canvas to the window and returns the new size.
func FitToWindow(canvas *js.Object) (int, int) {
	w := js.Global.Get("innerWidth").Int()
	h := js.Global.Get("innerHeight").Int()
	canvas.Set("width", w)
	canvas.Set("height", h)
	return w, h
}
