// ABOUTME: Audio type definitions
// ABOUTME: Defines the engine PCM format and decoded sample buffers
package audio

import "time"

const (
	// SampleRate is the fixed engine sample rate in Hz.
	SampleRate = 48000

	// Channels is the fixed engine channel count (interleaved stereo).
	Channels = 2
)

// Buffer holds fully decoded PCM audio, interleaved s16 stereo at 48 kHz.
// A Buffer is never mutated after it is produced by a decoder.
type Buffer struct {
	PCM        []int16 // interleaved, len == Frames*Channels
	Frames     uint64
	Channels   int
	SampleRate int
}

// Empty reports whether the buffer holds no audio.
func (b *Buffer) Empty() bool {
	return b == nil || b.Frames == 0 || len(b.PCM) == 0
}

// Duration returns the playback length of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	if b.Empty() || b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames) * time.Second / time.Duration(b.SampleRate)
}

// ClampSample clamps a wide intermediate value to the s16 range.
func ClampSample(v int) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
