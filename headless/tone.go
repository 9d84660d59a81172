package headless

import (
	"github.com/simukka/blackhole/audio"
	"go.uber.org/zap"
)

// ToneLog implements audio.Output by logging each pulse.
type ToneLog struct {
	log   *zap.Logger
	Tones []audio.Tone
}

// NewToneLog returns an output logging through log.
func NewToneLog(log *zap.Logger) *ToneLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &ToneLog{log: log}
}

// Unlock always succeeds.
func (t *ToneLog) Unlock() error { return nil }

// Play records and logs the tone.
func (t *ToneLog) Play(tone audio.Tone) (audio.Voice, error) {
	t.Tones = append(t.Tones, tone)
	t.log.Info("beep",
		zap.Float64("frequency", tone.Frequency),
		zap.Float64("volume", tone.Volume),
		zap.Duration("duration", tone.Duration),
	)
	return silentVoice{}, nil
}

type silentVoice struct{}

func (silentVoice) Stop() {}
