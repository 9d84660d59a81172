package audio

import "math"

// SinePCM renders t as interleaved 16-bit little-endian stereo at
// sampleRate. Volume is left to the player so the buffer is full scale.
func SinePCM(t Tone, sampleRate int) []byte {
	n := int(math.Round(float64(sampleRate) * t.Duration.Seconds()))
	data := make([]byte, n*bytesPerSample)

	step := 2 * math.Pi * t.Frequency / float64(sampleRate)
	for i := 0; i < n; i++ {
		s := int16(math.Sin(step*float64(i)) * 32767)
		offset := i * bytesPerSample
		writeUint16LE(data, offset, uint16(s))
		writeUint16LE(data, offset+2, uint16(s))
	}
	return data
}

func writeUint16LE(data []byte, offset int, value uint16) {
	data[offset] = byte(value)
	data[offset+1] = byte(value >> 8)
}
