//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/blackhole/audio"
	"github.com/simukka/blackhole/shaders"
	"github.com/simukka/blackhole/visual"
	"github.com/simukka/blackhole/web"
	"go.uber.org/zap"
)

func main() {
	log := web.NewConsoleLogger("info")

	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "glcanvas")
	if canvas == nil || canvas == js.Undefined {
		log.Error("canvas element not found", zap.String("id", "glcanvas"))
		return
	}
	width, height := web.FitToWindow(canvas)

	backend, err := web.NewWebGL(canvas, log)
	if err != nil {
		log.Error("renderer unavailable", zap.Error(err))
		return
	}
	scheduler := web.NewFrameScheduler()

	loop, err := visual.NewRenderLoop(visual.Config{
		Backend:        backend,
		Scheduler:      scheduler,
		FragmentSource: shaders.Fragment,
		Audio:          audio.NewWebAudio(),
		Diagnostics:    web.NewInfoOverlay("info"),
		Width:          width,
		Height:         height,
		Logger:         log,
	})
	if err != nil {
		// Errors are already on the console with the GL info log.
		return
	}

	web.SetupInputHandlers(canvas, loop)

	js.Global.Call("addEventListener", "beforeunload", func() {
		scheduler.Close()
		loop.Close()
	})

	loop.Start()

	select {}
}
