package audio

import (
	"go.uber.org/zap"
)

// Output is a platform audio sink.
type Output interface {
	// Unlock prepares the device. It is called once, from the first user
	// gesture, as required by autoplay policies.
	Unlock() error

	// Play starts t immediately and returns without waiting for it to end.
	// The output stops the tone on its own after t.Duration.
	Play(t Tone) (Voice, error)
}

// Voice is a sounding tone.
type Voice interface {
	Stop()
}

// Synth emits frame rate pulses, at most one at a time.
type Synth struct {
	out     Output
	log     *zap.Logger
	enabled bool
	failed  bool
	active  Voice
	beeps   int
}

// NewSynth creates a synthesizer over out. A nil out keeps the synth silent.
func NewSynth(out Output, log *zap.Logger) *Synth {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synth{out: out, log: log}
}

// Enable unlocks audio. Only the first call has an effect; a failed unlock
// leaves the synth silent for the rest of the session.
func (s *Synth) Enable() {
	if s.enabled || s.failed {
		return
	}
	if s.out == nil {
		s.failed = true
		return
	}
	if err := s.out.Unlock(); err != nil {
		s.failed = true
		s.log.Debug("audio unavailable", zap.Error(err))
		return
	}
	s.enabled = true
	s.log.Debug("audio enabled")
}

// Enabled reports whether a user gesture has unlocked audio.
func (s *Synth) Enabled() bool {
	return s.enabled
}

// Beeps is the number of pulses started so far.
func (s *Synth) Beeps() int {
	return s.beeps
}

// PlayBeep emits the pulse for fps, preempting any tone still sounding.
// It reports the tone and whether it was started.
func (s *Synth) PlayBeep(fps int) (Tone, bool) {
	if !s.enabled {
		return Tone{}, false
	}

	s.Stop()

	t := ToneForFPS(fps)
	v, err := s.out.Play(t)
	if err != nil {
		s.log.Debug("beep failed", zap.Int("fps", fps), zap.Error(err))
		return t, false
	}
	s.active = v
	s.beeps++
	return t, true
}

// Stop silences the active tone, if any.
func (s *Synth) Stop() {
	if s.active != nil {
		s.active.Stop()
		s.active = nil
	}
}
