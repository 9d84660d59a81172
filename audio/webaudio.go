//go:build js
// +build js

package audio

import (
	"errors"
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

// WebAudio plays tones through the Web Audio API.
type WebAudio struct {
	ctx  *js.Object
	gain *js.Object
}

// NewWebAudio returns an output that creates its AudioContext on Unlock.
func NewWebAudio() *WebAudio {
	return &WebAudio{}
}

// Unlock creates the AudioContext and a shared gain node.
func (w *WebAudio) Unlock() (err error) {
	defer recoverJS(&err)

	if w.ctx != nil {
		return nil
	}

	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return errors.New("web audio: AudioContext not supported")
	}

	w.ctx = audioCtx.New()
	w.gain = w.ctx.Call("createGain")
	w.gain.Get("gain").Set("value", 0)
	w.gain.Call("connect", w.ctx.Get("destination"))

	if w.ctx.Get("state").String() == "suspended" {
		w.ctx.Call("resume")
	}
	return nil
}

// Play starts a sine oscillator and schedules its stop after t.Duration.
func (w *WebAudio) Play(t Tone) (v Voice, err error) {
	defer recoverJS(&err)

	if w.ctx == nil {
		return nil, errors.New("web audio: not unlocked")
	}

	osc := w.ctx.Call("createOscillator")
	osc.Set("type", "sine")
	osc.Get("frequency").Set("value", t.Frequency)
	w.gain.Get("gain").Set("value", t.Volume)

	osc.Call("connect", w.gain)
	osc.Call("start")
	osc.Call("stop", w.ctx.Get("currentTime").Float()+t.Duration.Seconds())

	return &webVoice{osc: osc}, nil
}

type webVoice struct {
	osc *js.Object
}

// Stop ends the oscillator early. Stopping a finished oscillator can throw
// in older browsers, which is ignored.
func (v *webVoice) Stop() {
	var err error
	defer recoverJS(&err)
	v.osc.Call("stop")
}

func recoverJS(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("web audio: %v", r)
	}
}
