package audio

import "time"

// Beep mapping constants
const (
	MinFPS = 30
	MaxFPS = 240

	BaseFrequency  = 300.0  // Hz at fps 0
	FrequencySpan  = 1200.0 // Hz added at MaxFPS
	BaseVolume     = 0.1
	VolumeSpan     = 0.4
	PulseDuration  = 50 * time.Millisecond
	SampleRate     = 44100
	bytesPerSample = 4 // 16-bit stereo
)

// Tone describes one sine pulse.
type Tone struct {
	Frequency float64 // Hz
	Volume    float64 // 0.0 - 1.0
	Duration  time.Duration
}

// ToneForFPS maps a measured frame rate to a pulse. Lower frame rates give
// lower and louder tones.
func ToneForFPS(fps int) Tone {
	clamped := fps
	if clamped < MinFPS {
		clamped = MinFPS
	}
	if clamped > MaxFPS {
		clamped = MaxFPS
	}
	ratio := float64(clamped) / MaxFPS

	return Tone{
		Frequency: BaseFrequency + ratio*FrequencySpan,
		Volume:    BaseVolume + (1-ratio)*VolumeSpan,
		Duration:  PulseDuration,
	}
}
