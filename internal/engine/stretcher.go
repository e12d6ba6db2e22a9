// ABOUTME: Time-stretch adapter contract
// ABOUTME: Narrow streaming interface to the tempo processor
package engine

import "github.com/sylwesterdigital/novaaudio-poc/pkg/audio/stretch"

// Stretcher is the streaming contract the engine needs from a tempo
// processor: push dry frames in, pull stretched frames out, adjust
// speed/volume, flush on position jumps. ReadFrames may return fewer
// frames than requested, or zero, when the processor has not buffered
// enough output yet.
type Stretcher interface {
	SetSpeed(speed float64)
	SetVolume(volume float64)
	WriteFrames(samples []int16, frames int)
	ReadFrames(out []int16, maxFrames int) int
	Flush()
}

// StretcherFactory builds a fresh tempo processor for a newly loaded
// buffer. Exactly one processor exists per load.
type StretcherFactory func(sampleRate, channels int) (Stretcher, error)

// stretchQuality is the fixed processor quality used for every load.
const stretchQuality = 1

func newDefaultStretcher(sampleRate, channels int) (Stretcher, error) {
	st, err := stretch.NewStream(sampleRate, channels)
	if err != nil {
		return nil, err
	}
	st.SetQuality(stretchQuality)
	return st, nil
}
