//go:build !js
// +build !js

package desktop

import (
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/simukka/blackhole/audio"
)

// Output implements audio.Output with ebiten's audio context.
type Output struct {
	ctx *ebaudio.Context
}

// NewOutput returns an output whose context is created on Unlock.
func NewOutput() *Output {
	return &Output{}
}

// Unlock creates the shared audio context. ebiten allows one per process.
func (o *Output) Unlock() error {
	if o.ctx != nil {
		return nil
	}
	if ctx := ebaudio.CurrentContext(); ctx != nil {
		o.ctx = ctx
		return nil
	}
	o.ctx = ebaudio.NewContext(audio.SampleRate)
	return nil
}

// Play queues a sine pulse buffer and starts it.
func (o *Output) Play(t audio.Tone) (audio.Voice, error) {
	p := o.ctx.NewPlayerFromBytes(audio.SinePCM(t, o.ctx.SampleRate()))
	p.SetVolume(t.Volume)
	p.Play()
	return audio.PlayerVoice{P: p}, nil
}
